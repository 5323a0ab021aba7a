// Package files reads and writes whole buffers as plain text.
package files

import (
	"fmt"
	"os"
	"path/filepath"
)

func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	return string(data), nil
}

// Write overwrites path with text. No temp file, no backup.
func Write(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Resolve appends ext when path has no extension of its own.
func Resolve(path, ext string) string {
	if path == "" || ext == "" || filepath.Ext(path) != "" {
		return path
	}
	return path + ext
}
