// internal/services/image_store.go
package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"adcamp/internal/apperrors"
	"adcamp/internal/config"
)

// ImageStore stores named image blobs and derives their public URLs.
type ImageStore interface {
	// Put stores body under key with the given content type. Failures are
	// surfaced to the caller unretried.
	Put(ctx context.Context, key string, body []byte, contentType string) error

	// PublicURL returns the public URL for an asset name. It is a pure
	// function of the name: no I/O, no dependency on Put having run.
	PublicURL(name string) string
}

// S3ImageStore is the process-wide S3 handle, built once at startup and
// shared by every request.
type S3ImageStore struct {
	uploader *manager.Uploader
	bucket   string
	region   string
}

func NewS3ImageStore(s3cfg *config.S3Config) *S3ImageStore {
	return &S3ImageStore{
		uploader: manager.NewUploader(s3cfg.Client),
		bucket:   s3cfg.Bucket,
		region:   s3cfg.Region,
	}
}

func (s *S3ImageStore) Put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return apperrors.Wrap(apperrors.KindUploadFailed, "failed to upload "+key, err)
	}
	return nil
}

func (s *S3ImageStore) PublicURL(name string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s.jpeg", s.bucket, s.region, name)
}
