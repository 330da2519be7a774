package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/amincahcepu/Remote-Docling/pkg/logger"
)

// tempPattern names scratch uploads. The engine keys its PDF handling
// off the .pdf suffix, so the suffix is part of the contract.
const tempPattern = "upload-*.pdf"

// TempFile is one scratch file backing a single conversion.
type TempFile struct {
	Path      string
	CreatedAt time.Time
}

// TempStore writes request-scoped scratch files for the conversion
// engine. Nothing it creates outlives the request that created it.
type TempStore struct {
	dir    string
	logger logger.Logger
}

// NewTempStore creates a store rooted at dir. An empty dir means the
// system temp directory.
func NewTempStore(dir string, log logger.Logger) *TempStore {
	return &TempStore{dir: dir, logger: log}
}

// Create writes content to a uniquely named scratch file.
func (s *TempStore) Create(content []byte) (*TempFile, error) {
	f, err := os.CreateTemp(s.dir, tempPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	tmp := &TempFile{Path: f.Name(), CreatedAt: time.Now()}
	if _, err := f.Write(content); err != nil {
		f.Close()
		s.discard(tmp)
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		s.discard(tmp)
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}
	return tmp, nil
}

// Remove deletes the scratch file. A file already gone is not an error.
func (s *TempStore) Remove(f *TempFile) error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove temp file: %w", err)
	}
	return nil
}

// WithFile writes content to a scratch file, runs body with its path,
// and removes the file on every exit path, panics included. Removal
// failure is logged and swallowed so it never replaces body's outcome.
func (s *TempStore) WithFile(content []byte, body func(path string) error) error {
	f, err := s.Create(content)
	if err != nil {
		return err
	}
	defer s.discard(f)

	return body(f.Path)
}

func (s *TempStore) discard(f *TempFile) {
	if err := s.Remove(f); err != nil {
		s.logger.Error("Temp file cleanup failed",
			logger.String("path", f.Path),
			logger.Error(err))
		return
	}
	s.logger.Debug("Temp file removed", logger.String("path", f.Path))
}
