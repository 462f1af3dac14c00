// Package storage implements the Uploader contract on a Go CDK blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"nexstock/config"
	"nexstock/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers: GCS for production, the local filesystem for development.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type blobUploader struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// UploaderParams holds dependencies for the blob uploader, injected by Fx.
type UploaderParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobUploader opens the configured bucket and registers its shutdown
// with the Fx lifecycle.
func NewBlobUploader(params UploaderParams) (service.Uploader, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Storage.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return &blobUploader{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(params.Config.Storage.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload stores the blob under a random key (the original filename only
// contributes its extension) and returns the public URL.
func (u *blobUploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := uuid.New().String() + path.Ext(filename)

	writer, err := u.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize blob")
	}

	u.logger.Info("Image uploaded", slog.String("key", key), slog.String("contentType", contentType))

	return u.publicBaseURL + "/" + url.PathEscape(key), nil
}
