package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-pass-html/models"
)

// documentFileStorage is the local filesystem implementation of
// [DocumentFileStorage].
//
// Writes go to a temporary file in the destination directory which is then
// renamed over the target, so a reader never observes a half-written
// document.
type documentFileStorage struct {
}

// NewDocumentFileStorage constructs a new [DocumentFileStorage] instance.
func NewDocumentFileStorage() DocumentFileStorage {
	return &documentFileStorage{}
}

// LoadDocument reads the host document at path and returns its text.
//
// Returns [ErrDocumentNotFound] when the file does not exist.
func (d *documentFileStorage) LoadDocument(ctx context.Context, path string) (string, error) {
	data, err := d.read(ctx, path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// SaveDocument atomically replaces the file at path with document.
func (d *documentFileStorage) SaveDocument(ctx context.Context, path string, document []byte) error {
	if path == "" {
		return ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeAtomic(path, document, 0o644)
}

// LoadAttachment reads the file at path into an attachment named after the
// file's base name.
func (d *documentFileStorage) LoadAttachment(ctx context.Context, path string) (models.Attachment, error) {
	data, err := d.read(ctx, path)
	if err != nil {
		return models.Attachment{}, err
	}

	return models.Attachment{FileName: filepath.Base(path), Data: data}, nil
}

// SaveAttachment writes attachment into dir under its own file name and
// returns the full path written.
//
// Only the base name of attachment.FileName is used; names that reduce to
// nothing or point outside dir yield [ErrInvalidFileName].
func (d *documentFileStorage) SaveAttachment(ctx context.Context, dir string, attachment models.Attachment) (string, error) {
	if dir == "" {
		return "", ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, err := safeFileName(attachment.FileName)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err = writeAtomic(path, attachment.Data, 0o600); err != nil {
		return "", err
	}

	return path, nil
}

func (d *documentFileStorage) read(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	return data, nil
}

func safeFileName(name string) (string, error) {
	// attachments produced on other platforms may carry backslashes
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	switch base {
	case "", ".", "..", "/":
		return "", fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}

	return base, nil
}

func writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	tmpName := tmp.Name()

	// no-op after a successful rename
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	return nil
}
