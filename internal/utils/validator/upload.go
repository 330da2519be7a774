// internal/utils/validator/upload.go
package validator

import (
	"errors"
	"path/filepath"
	"strings"
)

// allowedExtension is the only upload type the service accepts.
const allowedExtension = ".pdf"

var (
	// ErrUnsupportedType reports a non-PDF upload.
	ErrUnsupportedType = errors.New("only PDF files are supported")
	// ErrTooLarge reports an upload above the size ceiling.
	ErrTooLarge = errors.New("file size exceeds maximum limit")
)

// UploadValidator enforces the upload acceptance policy: a .pdf
// filename and a bounded byte count. It is pure; callers decide how
// failures map to responses.
type UploadValidator struct {
	maxFileSize int64
}

// NewUploadValidator creates a validator with the given size ceiling
// in bytes.
func NewUploadValidator(maxFileSize int64) *UploadValidator {
	return &UploadValidator{maxFileSize: maxFileSize}
}

// CheckType accepts only filenames with a .pdf extension, compared
// case-insensitively. The file content is never inspected.
func (v *UploadValidator) CheckType(filename string) error {
	if strings.ToLower(filepath.Ext(filename)) != allowedExtension {
		return ErrUnsupportedType
	}
	return nil
}

// CheckSize enforces the ceiling on the received byte count.
func (v *UploadValidator) CheckSize(size int64) error {
	if size > v.maxFileSize {
		return ErrTooLarge
	}
	return nil
}

// Validate runs both checks on a complete upload, type before size.
func (v *UploadValidator) Validate(filename string, content []byte) error {
	if err := v.CheckType(filename); err != nil {
		return err
	}
	return v.CheckSize(int64(len(content)))
}

// MaxFileSize returns the configured ceiling in bytes.
func (v *UploadValidator) MaxFileSize() int64 {
	return v.maxFileSize
}
