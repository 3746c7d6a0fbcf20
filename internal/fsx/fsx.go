// Package fsx contains io/fs extensions.
package fsx

import (
	"io/fs"
	"os"
	"syscall"
)

// OpenFile is a wrapper for os.Open that ensures that we're opening
// a regular file rather than a directory. If you are opening a
// directory, this func returns an *os.PathError error with Err set
// to syscall.EISDIR.
func OpenFile(pathname string) (fs.File, error) {
	return openWithFS(filesystem{}, pathname)
}

// openWithFS is like OpenFile but with explicit file system argument.
func openWithFS(fs fs.FS, pathname string) (fs.File, error) {
	file, err := fs.Open(pathname)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, &os.PathError{
			Op:   "openFile",
			Path: pathname,
			Err:  syscall.EISDIR,
		}
	}
	return file, nil
}

// filesystem is a private implementation of fs.FS.
type filesystem struct{}

// Open implements fs.FS.Open.
func (filesystem) Open(pathname string) (fs.File, error) {
	return os.Open(pathname)
}

// IsRegularFile returns whether pathname exists and is a regular file.
func IsRegularFile(pathname string) bool {
	info, err := os.Stat(pathname)
	return err == nil && info.Mode().IsRegular()
}

// DirectoryExists returns whether pathname exists and is a directory.
func DirectoryExists(pathname string) bool {
	info, err := os.Stat(pathname)
	return err == nil && info.IsDir()
}
