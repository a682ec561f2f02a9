package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"nutricli/internal/config"
)

// Client wraps the S3-compatible blob-store client used by the remote job.
type Client struct {
	mc *minio.Client
}

// New connects a client to the configured blob endpoint.
func New(cfg config.BlobConfig) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client for %s: %w", cfg.Endpoint, err)
	}
	return &Client{mc: mc}, nil
}

// EnsureBucket creates the bucket if it does not exist. An already-existing
// bucket is an expected outcome, not an error.
func (c *Client) EnsureBucket(ctx context.Context, bucket string) error {
	err := c.mc.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
	if err == nil {
		slog.Info("Bucket created", slog.String("bucket", bucket))
		return nil
	}

	exists, checkErr := c.mc.BucketExists(ctx, bucket)
	if checkErr == nil && exists {
		slog.Info("Bucket already exists", slog.String("bucket", bucket))
		return nil
	}

	return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
}

// Download returns the full byte content of an object.
func (c *Client) Download(ctx context.Context, bucket, object string) ([]byte, error) {
	obj, err := c.mc.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s/%s: %w", bucket, object, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to download object %s/%s: %w", bucket, object, err)
	}

	slog.Info("Downloaded blob",
		slog.String("bucket", bucket),
		slog.String("object", object),
		slog.Int("bytes", len(data)))
	return data, nil
}

// Upload stores data as an object; used to seed the dataset into the
// emulator for the round trip.
func (c *Client) Upload(ctx context.Context, bucket, object string, data []byte, contentType string) error {
	_, err := c.mc.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to upload object %s/%s: %w", bucket, object, err)
	}

	slog.Info("Uploaded blob",
		slog.String("bucket", bucket),
		slog.String("object", object),
		slog.Int("bytes", len(data)))
	return nil
}
