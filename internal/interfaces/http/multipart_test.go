package http

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formFile struct {
	name        string
	contentType string
	data        string
}

func buildForm(t *testing.T, files []formFile, fields map[string]string) *multipart.Form {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, imagesField, f.name))
		header.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.data))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form
}

func TestCollectUploads(t *testing.T) {
	form := buildForm(t, []formFile{
		{"floor.jpg", "image/jpeg", "jpeg-bytes"},
		{"wall.png", "image/png", "png-bytes"},
	}, nil)

	files, err := collectUploads(form)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "floor.jpg", files[0].Filename)
	assert.Equal(t, "image/jpeg", files[0].ContentType)
	assert.Equal(t, []byte("jpeg-bytes"), files[0].Data)
	assert.Equal(t, "wall.png", files[1].Filename)
}

func TestCollectUploads_EmptyForm(t *testing.T) {
	form := buildForm(t, nil, map[string]string{"title": "no images"})

	files, err := collectUploads(form)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestCollectUploads_TooManyFiles(t *testing.T) {
	var files []formFile
	for i := 0; i < maxUploadFiles+1; i++ {
		files = append(files, formFile{fmt.Sprintf("img-%d.jpg", i), "image/jpeg", "x"})
	}
	form := buildForm(t, files, nil)

	_, err := collectUploads(form)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestCollectUploads_RejectsNonImage(t *testing.T) {
	form := buildForm(t, []formFile{
		{"notes.pdf", "application/pdf", "%PDF-1.4"},
	}, nil)

	_, err := collectUploads(form)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "application/pdf")
}

func TestCaptionLookup(t *testing.T) {
	values := map[string][]string{
		"altText_0": {"Showroom floor"},
		"altText_2": {"Facade detail"},
		"other":     {"ignored"},
	}

	captions := captionLookup(values, "altText", 3, true)
	require.Len(t, captions, 2)
	assert.Equal(t, "Showroom floor", captions[0].AltText)
	assert.Equal(t, "", captions[0].Caption)
	assert.Equal(t, "Facade detail", captions[2].AltText)

	asCaptions := captionLookup(map[string][]string{"caption_1": {"Lobby"}}, "caption", 2, false)
	require.Len(t, asCaptions, 1)
	assert.Equal(t, "Lobby", asCaptions[1].Caption)
}

func TestOptFormValue(t *testing.T) {
	values := map[string][]string{"title": {"Marble"}, "empty": {}}

	if v := optFormValue(values, "title"); assert.NotNil(t, v) {
		assert.Equal(t, "Marble", *v)
	}
	assert.Nil(t, optFormValue(values, "missing"))
	assert.Nil(t, optFormValue(values, "empty"))
}
