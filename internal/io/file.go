package ioutils

import (
	"io"
	"os"
)

// EnsureDir creates a directory and all parent directories if they
// don't exist.
//
// Directories are created with mode 0755. An existing directory is
// not an error, which is what the cover downloader relies on when two
// covers share a parent directory.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// WriteFile writes data to a file, creating it with mode 0644 if
// necessary and truncating it if it already exists.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// CopyFile copies a file from source to destination.
//
// The destination is created with mode 0644 or truncated if it
// exists.
func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	return err
}

// MoveFile moves a file from source to destination.
//
// A plain rename is attempted first; when that fails (for example
// across filesystems) the file is copied and the source removed.
func MoveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := CopyFile(src, dst); err != nil {
		return err
	}

	return os.Remove(src)
}
