// Package media provides the blob-backed implementation of the image storage domain service.
package media

import (
	"context"
	"fmt"
	"io"
	"strings"

	"catlog/config"
	"catlog/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Driver registrations for the bucket URL schemes we accept.
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// imageExtensions maps the accepted content types to stored file extensions.
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// blobImageStore implements the service.ImageStore interface on top of a
// gocloud blob bucket. The bucket URL decides the actual backend (local
// disk, GCS, S3, Azure).
type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds the dependencies for constructing the image store.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
}

// NewBlobImageStore is the constructor for blobImageStore. The bucket stays
// open for the whole application lifetime and closes on shutdown.
func NewBlobImageStore(params Params) (service.ImageStore, error) {
	cfg := params.Config
	if cfg == nil || cfg.Media == nil {
		return nil, errors.New("media config must be provided")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open blob bucket %q", cfg.Media.BucketURL)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.Media.PublicBaseURL, "/"),
	}, nil
}

// SaveCatImage stores the image under a per-cat key and returns the public
// reference. Re-uploading with the same content type overwrites in place.
func (s *blobImageStore) SaveCatImage(ctx context.Context, catID uuid.UUID, contentType string, body io.Reader) (string, error) {
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", errors.Errorf("unsupported image content type %q", contentType)
	}

	key := fmt.Sprintf("cats/%s/profile.%s", catID, ext)

	// Closing a blob writer commits the object; canceling its context is
	// the documented way to abandon a partial write.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open image writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		cancel()
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write image")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit image")
	}

	return s.publicBaseURL + "/" + key, nil
}

// DeleteCatImage removes a previously stored image by its public reference.
// References this store never issued and already-deleted objects are ignored.
func (s *blobImageStore) DeleteCatImage(ctx context.Context, imageRef string) error {
	key := strings.TrimPrefix(imageRef, s.publicBaseURL+"/")
	if key == imageRef {
		// Not one of ours; nothing to delete.
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}
