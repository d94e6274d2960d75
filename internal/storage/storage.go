// Package storage persists uploaded product images and hands back the
// reference path stored on the product record.
package storage

import (
	"context"
	"io"
)

// ImageStore saves uploaded images under a generated-unique name.
type ImageStore interface {
	// Save writes the image content and returns the reference to store
	// on the product (a URL path for local storage, an object URL for S3).
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}
