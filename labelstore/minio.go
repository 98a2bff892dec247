package labelstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig holds the object-storage settings for the MinIO-backed store.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// MinioStore keeps label images in one bucket, object name = original
// filename. PutObject overwrites existing objects, preserving the silent
// collision behavior of the disk layout.
type MinioStore struct {
	client *minioSDK.Client
	bucket string
}

func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	client, err := minioSDK.New(cfg.Endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

func (s *MinioStore) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, filepath.Base(name), r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// Fetch downloads the object to a temp file so the mail dispatcher can
// attach it by path, like the disk store.
func (s *MinioStore) Fetch(ctx context.Context, name string) (string, bool, error) {
	key := filepath.Base(name)

	_, err := s.client.StatObject(ctx, s.bucket, key, minioSDK.StatObjectOptions{})
	if err != nil {
		var resp minioSDK.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return "", false, nil
		}
		return "", false, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minioSDK.GetObjectOptions{})
	if err != nil {
		return "", false, err
	}
	defer obj.Close()

	f, err := os.CreateTemp("", "label-*"+filepath.Ext(key))
	if err != nil {
		return "", false, err
	}
	if _, err := io.Copy(f, obj); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", false, err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", false, err
	}

	return f.Name(), true, nil
}
