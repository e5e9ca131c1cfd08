package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a document with the requested identity
	// does not exist, or the identity is not a well-formed reference.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned uniformly for unknown emails and
	// wrong passwords so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned when a request carries no valid bearer token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidImageIndex is returned when an image index is outside the
	// bounds of the parent's image list.
	ErrInvalidImageIndex = errors.New("invalid image index")
)

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UploadError reports a blob store rejection during a single upload.
// No document record may be created once an upload has failed.
type UploadError struct {
	Filename string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload of %q failed: %v", e.Filename, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// BatchUploadError reports a failed attachment batch. Blobs uploaded before
// the failure are NOT rolled back; Uploaded lists them so the failure can be
// logged with the orphaned keys.
type BatchUploadError struct {
	FailedIndex int
	Uploaded    []ImageAttachment
	Err         error
}

func (e *BatchUploadError) Error() string {
	return fmt.Sprintf("attachment batch failed at file %d: %v", e.FailedIndex, e.Err)
}

func (e *BatchUploadError) Unwrap() error {
	return e.Err
}
