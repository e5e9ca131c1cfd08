package application

import (
	"context"

	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
	"go.uber.org/zap"
)

// BlobStore is the object storage used for image payloads.
type BlobStore interface {
	Upload(ctx context.Context, folder, filename, contentType string, body []byte) (string, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// UploadFile is one binary payload received from a multipart request.
type UploadFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Caption carries the optional text fields for one attachment. Gallery items
// use AltText, projects use Caption.
type Caption struct {
	Caption string
	AltText string
}

// CaptionLookup maps a payload's position in its batch to its caption fields.
type CaptionLookup map[int]Caption

// AttachmentManager converts uploaded payloads into ordered attachment
// records. Uploads happen before any document write; a failed document save
// leaves the uploaded blobs orphaned rather than rolling them back.
type AttachmentManager struct {
	blobs BlobStore
	log   *zap.SugaredLogger
}

func NewAttachmentManager(blobs BlobStore, log *zap.SugaredLogger) *AttachmentManager {
	return &AttachmentManager{blobs: blobs, log: log}
}

// Upload stores one payload under folder and returns the attachment record
// with Order unset. The caller must not persist any document when an
// UploadError is returned.
func (m *AttachmentManager) Upload(ctx context.Context, file UploadFile, folder string) (domain.ImageAttachment, error) {
	key, err := m.blobs.Upload(ctx, folder, file.Filename, file.ContentType, file.Data)
	if err != nil {
		return domain.ImageAttachment{}, &domain.UploadError{Filename: file.Filename, Err: err}
	}
	return domain.ImageAttachment{
		URL: m.blobs.URL(key),
		Key: key,
	}, nil
}

// AttachMany uploads every payload and assigns each the order
// existingCount + its position in the batch. If any upload fails the whole
// batch fails with a BatchUploadError; blobs uploaded before the failure are
// not rolled back, only reported.
func (m *AttachmentManager) AttachMany(ctx context.Context, files []UploadFile, folder string, existingCount int, captions CaptionLookup) ([]domain.ImageAttachment, error) {
	attached := make([]domain.ImageAttachment, 0, len(files))
	for i, file := range files {
		img, err := m.Upload(ctx, file, folder)
		if err != nil {
			m.log.Errorw("attachment batch failed, earlier uploads left orphaned",
				"failedIndex", i, "uploaded", len(attached), "error", err)
			return nil, &domain.BatchUploadError{FailedIndex: i, Uploaded: attached, Err: err}
		}
		img.Order = existingCount + i
		if c, ok := captions[i]; ok {
			img.Caption = c.Caption
			img.AltText = c.AltText
		}
		attached = append(attached, img)
	}
	return attached, nil
}

// Detach removes the attachment at index: deletes its blob (best-effort),
// drops the element and re-normalizes the remaining orders to 0..n-1.
// Returns the new list; the caller persists the parent.
func (m *AttachmentManager) Detach(ctx context.Context, images []domain.ImageAttachment, index int) ([]domain.ImageAttachment, error) {
	if index < 0 || index >= len(images) {
		return nil, domain.ErrInvalidImageIndex
	}

	if err := m.blobs.Delete(ctx, images[index].Key); err != nil {
		// Leaving an orphaned blob beats leaving an undeletable image.
		m.log.Warnw("blob delete failed, removing attachment anyway", "key", images[index].Key, "error", err)
	}

	remaining := append(images[:index:index], images[index+1:]...)
	for i := range remaining {
		remaining[i].Order = i
	}
	return remaining, nil
}

// DetachAll deletes every attachment's blob (best-effort, one attempt each).
// Used when the parent document is about to be removed, so no
// re-normalization is needed.
func (m *AttachmentManager) DetachAll(ctx context.Context, images []domain.ImageAttachment) {
	for _, img := range images {
		if err := m.blobs.Delete(ctx, img.Key); err != nil {
			m.log.Warnw("blob delete failed during cascade", "key", img.Key, "error", err)
		}
	}
}
