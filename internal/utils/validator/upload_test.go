package validator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckType(t *testing.T) {
	v := NewUploadValidator(1024)

	tests := []struct {
		name     string
		filename string
		wantErr  error
	}{
		{"lowercase pdf", "doc.pdf", nil},
		{"uppercase pdf", "DOC.PDF", nil},
		{"mixed case pdf", "Doc.Pdf", nil},
		{"dotted name", "report.v2.pdf", nil},
		{"bare extension", ".pdf", nil},
		{"png", "image.png", ErrUnsupportedType},
		{"disguised executable", "doc.pdf.exe", ErrUnsupportedType},
		{"no extension", "document", ErrUnsupportedType},
		{"empty filename", "", ErrUnsupportedType},
		{"trailing space", "doc.pdf ", ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.CheckType(tt.filename)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckSize(t *testing.T) {
	v := NewUploadValidator(1024)

	assert.NoError(t, v.CheckSize(0))
	assert.NoError(t, v.CheckSize(1023))
	assert.NoError(t, v.CheckSize(1024))
	assert.ErrorIs(t, v.CheckSize(1025), ErrTooLarge)
}

func TestValidateChecksTypeFirst(t *testing.T) {
	// An oversized non-PDF fails on type, not size.
	v := NewUploadValidator(8)
	oversized := bytes.Repeat([]byte("x"), 16)

	assert.ErrorIs(t, v.Validate("image.png", oversized), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate("doc.pdf", oversized), ErrTooLarge)
	assert.NoError(t, v.Validate("doc.pdf", []byte("ok")))
}

func TestMaxFileSize(t *testing.T) {
	v := NewUploadValidator(52428800)
	assert.Equal(t, int64(52428800), v.MaxFileSize())
}
