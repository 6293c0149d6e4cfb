/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides the read-side filesystem abstraction used by
// configuration loading and the CLI, so tests can substitute an
// in-memory implementation.
package fs

import (
	"io/fs"
	"os"
)

// FileSystem provides an abstraction over read-only filesystem
// operations.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(name string) ([]byte, error)

	// Stat returns file information for the named file.
	Stat(name string) (fs.FileInfo, error)

	// Exists returns true if the path exists.
	Exists(path string) bool

	// ReadDir reads the named directory and returns its entries.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Open opens the named file for reading. This satisfies fs.FS so
	// the filesystem can be walked with fs.WalkDir.
	Open(name string) (fs.File, error)
}

// OSFileSystem implements FileSystem using the standard os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a new filesystem that uses the standard os
// package.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile reads the entire contents of a file.
func (f *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Stat returns file information for the named file.
func (f *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Exists returns true if the path exists.
func (f *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadDir reads the named directory and returns its entries.
func (f *OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Open opens the named file for reading.
func (f *OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}
