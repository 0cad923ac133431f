package common

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// FileManager provides high-level file operations with standardized error handling and logging
type FileManager struct {
	logger zerolog.Logger
}

// NewFileManager creates a new FileManager instance
func NewFileManager(logger zerolog.Logger) *FileManager {
	return &FileManager{
		logger: logger.With().Str("component", "FileManager").Logger(),
	}
}

// FileExists checks if a file or directory exists
func (fm *FileManager) FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// EnsureDirectory creates a directory and its parents if they don't exist
func (fm *FileManager) EnsureDirectory(path string, perm fs.FileMode) error {
	if fm.FileExists(path) {
		info, err := os.Stat(path)
		if err != nil {
			return WrapError(err, "failed to check directory: "+path)
		}
		if !info.IsDir() {
			return NewValidationError("path", path, "exists but is not a directory")
		}
		return nil
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return WrapError(err, "failed to create directory: "+path)
	}

	fm.logger.Debug().Str("path", path).Msg("Created directory")
	return nil
}

// ReadFile reads an entire file into memory
func (fm *FileManager) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapError(err, "failed to read file: "+path)
	}
	return data, nil
}

// WriteFile writes data to a file, creating parent directories first
func (fm *FileManager) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if err := fm.EnsureDirectory(filepath.Dir(path), 0o755); err != nil {
		return WrapError(err, "failed to create parent directories for: "+path)
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return WrapError(err, "failed to write file: "+path)
	}

	fm.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Wrote file")
	return nil
}
