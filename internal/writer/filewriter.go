package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter writes images to a filesystem path atomically, so readers
// polling the file never observe a partial image.
type FileWriter struct {
	Path string
}

// Emit writes buf to the configured path via temp file + rename.
func (w *FileWriter) Emit(buf []byte) error {
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".palettekit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}
	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}
	return nil
}
