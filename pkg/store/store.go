// Package store persists an ordered list of records as a single JSON array file.
//
// Every mutation rewrites the whole file. There is no locking: two processes
// doing read-modify-write on the same file can lose updates.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Common errors returned by this package.
var (
	ErrNotExist  = errors.New("store file does not exist")
	ErrMalformed = errors.New("store file is not a JSON array")
)

// DefaultPath is the store location used when nothing else is configured.
const DefaultPath = "db/contacts.json"

// EnvPath overrides DefaultPath.
const EnvPath = "CONTACTBOOK_STORE"

const (
	fileMode = 0600
	dirMode  = 0700
)

// ResolvePath returns path, or the value of CONTACTBOOK_STORE, or DefaultPath.
func ResolvePath(path string) string {
	if path != "" {
		return path
	}
	if envPath := os.Getenv(EnvPath); envPath != "" {
		return envPath
	}
	return DefaultPath
}

// File is a JSON array of T stored at Path.
type File[T any] struct {
	path string
}

// NewFile creates a store for the file at path (see ResolvePath for the default).
// The file itself is not touched until Load or Save.
func NewFile[T any](path string) *File[T] {
	return &File[T]{path: ResolvePath(path)}
}

// Path returns the location of the store file.
func (f *File[T]) Path() string {
	return f.path
}

// Load reads and parses the whole file.
func (f *File[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotExist, f.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, f.path, err)
	}
	// "null" decodes without error but is not an array.
	if records == nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, f.path)
	}

	return records, nil
}

// Save replaces the file contents with records, pretty-printed with two-space indentation.
func (f *File[T]) Save(ctx context.Context, records []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	if err := os.WriteFile(f.path, data, fileMode); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}

	return nil
}
