// Package storage holds the object storage drivers used for menu photos.
package storage

import (
	"context"
	"errors"
)

var ErrUploadFailed = errors.New("object upload failed")

// ObjectStore persists a blob under path and returns a reference clients can
// resolve directly (a public URL).
type ObjectStore interface {
	Put(ctx context.Context, path string, body []byte, contentType string) (string, error)
}
