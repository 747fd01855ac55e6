// Package storage uploads media buffers to an S3-compatible blob store and
// hands back public HTTPS URLs.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/InkwellLabs/inkwell-backend/internal/config"
)

// uploadTimeout bounds every blob store call. A slow provider fails the
// request rather than holding it open indefinitely.
const uploadTimeout = 60 * time.Second

// Uploader stores a binary buffer under a logical folder and returns a
// public URL for it. When transform is true the buffer is treated as a blog
// image and re-encoded with capped dimensions before upload.
type Uploader interface {
	Upload(ctx context.Context, data []byte, folder string, transform bool) (string, error)
}

type S3Uploader struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
}

func NewS3Uploader(ctx context.Context, cfg *config.Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKeyID,
			cfg.S3SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{
		client:   client,
		bucket:   cfg.S3Bucket,
		region:   cfg.S3Region,
		endpoint: cfg.S3Endpoint,
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, data []byte, folder string, transform bool) (string, error) {
	contentType := detectContentType(data)
	if transform {
		data, contentType = transformImage(data)
	}

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	key := storageKey(folder)
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &u.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return u.publicURL(key), nil
}

// storageKey spreads objects by day under the logical folder.
func storageKey(folder string) string {
	d := time.Now()
	return fmt.Sprintf("%s/%d/%d/%d/%v", folder, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (u *S3Uploader) publicURL(key string) string {
	if u.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(u.endpoint, "/"), u.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
