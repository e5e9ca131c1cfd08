package http

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/nazeeh4611/Simpolo-backend/internal/application"
	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
)

const (
	imagesField    = "images"
	maxUploadFiles = 10
	maxUploadBytes = 10 << 20 // 10MB per file
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// collectUploads reads the image payloads out of a multipart form, enforcing
// the count, per-file size and MIME restrictions. An empty form yields an
// empty slice, not an error; the services decide whether that is valid.
func collectUploads(form *multipart.Form) ([]application.UploadFile, error) {
	headers := form.File[imagesField]
	if len(headers) > maxUploadFiles {
		return nil, domain.NewValidationError("at most %d images per request", maxUploadFiles)
	}

	files := make([]application.UploadFile, 0, len(headers))
	for _, header := range headers {
		if header.Size > maxUploadBytes {
			return nil, domain.NewValidationError("image %q exceeds the 10MB limit", header.Filename)
		}
		contentType := header.Header.Get("Content-Type")
		if !allowedImageTypes[contentType] {
			return nil, domain.NewValidationError("only image files are allowed, got %q", contentType)
		}

		f, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("opening upload %q: %w", header.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading upload %q: %w", header.Filename, err)
		}

		files = append(files, application.UploadFile{
			Filename:    header.Filename,
			ContentType: contentType,
			Data:        data,
		})
	}
	return files, nil
}

// formValue returns the first value for key, or "".
func formValue(values map[string][]string, key string) string {
	if v, ok := values[key]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}

// optFormValue returns the first value for key, or nil when the field was not
// part of the request. Used for partial updates.
func optFormValue(values map[string][]string, key string) *string {
	if v, ok := values[key]; ok && len(v) > 0 {
		return &v[0]
	}
	return nil
}

// captionLookup gathers per-index caption fields (<prefix>_0, <prefix>_1, ...)
// for a batch of count payloads. Gallery uses the altText prefix, projects
// use caption.
func captionLookup(values map[string][]string, prefix string, count int, asAltText bool) application.CaptionLookup {
	captions := application.CaptionLookup{}
	for i := 0; i < count; i++ {
		v := formValue(values, fmt.Sprintf("%s_%d", prefix, i))
		if v == "" {
			continue
		}
		if asAltText {
			captions[i] = application.Caption{AltText: v}
		} else {
			captions[i] = application.Caption{Caption: v}
		}
	}
	return captions
}
