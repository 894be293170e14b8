package service

import (
	"context"
	"io"
)

// PhotoUpload is one received file, before it is persisted.
type PhotoUpload struct {
	ServiceNumber    string
	OriginalFilename string
	ContentType      string
	Size             int64
	Content          io.Reader
}

// PhotoStorage is the file intake collaborator: it persists photo bytes to durable
// storage and hands back the reference path recorded on the personnel record.
type PhotoStorage interface {
	// Store writes the photo and returns its key. Storing again for the same service
	// number and extension overwrites the previous photo.
	Store(ctx context.Context, upload *PhotoUpload) (string, error)

	// Delete removes a stored photo. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// MaxSize is the largest accepted photo, in bytes.
	MaxSize() int64
}
