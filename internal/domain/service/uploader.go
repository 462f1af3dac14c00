package service

import (
	"context"
	"io"
)

// Uploader stores an opaque blob and returns a URL where it can be fetched.
// No retry logic lives at this boundary.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}
