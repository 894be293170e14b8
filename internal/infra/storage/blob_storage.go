// Package storage persists uploaded profile photos in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"roster/config"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/lifecycle"
	"roster/internal/domain/service"
	"roster/internal/errors"
	"roster/internal/util"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

// sniffed content type -> extension. The client filename only decides for image
// types missing here.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// BlobPhotoStorage implements service.PhotoStorage on top of a blob bucket.
type BlobPhotoStorage struct {
	bucket    *blob.Bucket
	keyPrefix string
	maxSize   int64
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.PhotoStorage, error) {
	cfg := params.Config.Storage

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open photo bucket %q", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Photo bucket opened",
		slog.String("bucketURL", cfg.BucketURL),
		slog.String("maxPhotoSize", util.FormatBytes(cfg.MaxPhotoSize)),
	)

	return NewBlobPhotoStorage(bucket, cfg.KeyPrefix, cfg.MaxPhotoSize), nil
}

// NewBlobPhotoStorage wraps an already opened bucket.
func NewBlobPhotoStorage(bucket *blob.Bucket, keyPrefix string, maxSize int64) *BlobPhotoStorage {
	return &BlobPhotoStorage{
		bucket:    bucket,
		keyPrefix: keyPrefix,
		maxSize:   maxSize,
	}
}

// MaxSize is the largest accepted photo, in bytes.
func (s *BlobPhotoStorage) MaxSize() int64 {
	return s.maxSize
}

// Store validates the upload and writes it under <prefix><segment><ext>, replacing
// any photo previously stored under the same key.
func (s *BlobPhotoStorage) Store(ctx context.Context, upload *service.PhotoUpload) (string, error) {
	if upload == nil || upload.Content == nil {
		return "", domainerrors.ErrUploadRejected.WithDetails("no file was uploaded")
	}
	if upload.Size > s.maxSize {
		return "", s.tooLarge(upload.Size)
	}

	// Read one byte past the cap so a lying Size header cannot smuggle a larger body in.
	data, err := io.ReadAll(io.LimitReader(upload.Content, s.maxSize+1))
	if err != nil {
		return "", errors.Wrap(err, "failed to read uploaded photo")
	}
	if int64(len(data)) > s.maxSize {
		return "", s.tooLarge(int64(len(data)))
	}
	if len(data) == 0 {
		return "", domainerrors.ErrUploadRejected.WithDetails("uploaded file is empty")
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", domainerrors.ErrUploadRejected.
			WithHTTPCode(http.StatusUnsupportedMediaType).
			WithDetails(fmt.Sprintf("uploaded file is %s, not an image", contentType))
	}

	key := s.keyFor(upload.ServiceNumber, upload.OriginalFilename, contentType)

	err = s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType: contentType,
		Metadata: map[string]string{
			"sha256":         util.Checksum(data),
			"service_number": upload.ServiceNumber,
		},
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to write photo %s", key)
	}

	return key, nil
}

// Delete removes a stored photo; a missing key is not an error.
func (s *BlobPhotoStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete photo %s", key)
	}

	return nil
}

func (s *BlobPhotoStorage) keyFor(serviceNumber, filename, contentType string) string {
	ext, ok := imageExtensions[contentType]
	if !ok {
		ext = util.FileExtension(filename)
	}

	return s.keyPrefix + util.ObjectKeySegment(serviceNumber) + ext
}

func (s *BlobPhotoStorage) tooLarge(size int64) error {
	return domainerrors.ErrUploadRejected.
		WithHTTPCode(http.StatusRequestEntityTooLarge).
		WithDetails(fmt.Sprintf("photo is %s, the limit is %s", util.FormatBytes(size), util.FormatBytes(s.maxSize)))
}
