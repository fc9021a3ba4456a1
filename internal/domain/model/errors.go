package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("media item not found")
	ErrCorruptCatalog = errors.New("catalog document is not a JSON array of media items")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StorageError wraps a backend failure. Its message is for logs only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
