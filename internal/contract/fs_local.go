package contract

import (
	"os"
	"path/filepath"
)

// OSFilesystem implements the Filesystem interface against the real
// operating system filesystem.
type OSFilesystem struct{}

var _ Filesystem = &OSFilesystem{} // Compile-time check

// NewOSFilesystem creates a new instance of the OS-backed filesystem.
func NewOSFilesystem() *OSFilesystem {
	return &OSFilesystem{}
}

// IsDir implements the Filesystem interface.
func (f *OSFilesystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ReadDir implements the Filesystem interface.
func (f *OSFilesystem) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, &DirectoryReadError{Path: path, Err: err}
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(path, entry.Name()))
	}
	return paths, nil
}

// Exists implements the Filesystem interface.
func (f *OSFilesystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
