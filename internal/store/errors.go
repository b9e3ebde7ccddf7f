package store

import "errors"

// Sentinel errors returned by file storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when the requested document or
	// attachment file does not exist.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrEmptyPath is returned when a method is called without a path.
	ErrEmptyPath = errors.New("empty file path")

	// ErrInvalidFileName is returned when an attachment name cannot be turned
	// into a plain file name inside the target directory.
	ErrInvalidFileName = errors.New("invalid attachment file name")
)

// Low-level file operation errors. These wrap the underlying os error.
var (
	ErrReadingFile = errors.New("failed to read file")
	ErrWritingFile = errors.New("failed to write file")
)
