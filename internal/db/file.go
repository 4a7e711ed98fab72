package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSlot keeps the document in a single JSON file.
type FileSlot struct {
	Path string
}

// NewFileSlot returns a slot backed by the file at path. The parent directory
// is created on first write.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{Path: path}
}

// Read returns the file content, or ErrSlotEmpty when the file is missing or blank.
func (s *FileSlot) Read(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrSlotEmpty
	}
	return data, nil
}

// Write replaces the file content through a temp file and a rename.
func (s *FileSlot) Write(ctx context.Context, payload []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmpPath := s.Path + ".tmp"
	if err := os.WriteFile(tmpPath, payload, 0o644); err != nil {
		return fmt.Errorf("write temp data file: %w", err)
	}
	if err := os.Rename(tmpPath, s.Path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
