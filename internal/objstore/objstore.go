// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package objstore provides object store access for source HTML and
// converted Markdown artifacts.
package objstore

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/pdiddy/corpus-converter/pkg/types"
)

// Store is the object store surface the pipeline needs: existence checks,
// full-object reads, and create-or-overwrite writes tagged with a media type.
type Store interface {
	Exists(ctx context.Context, bucket, key string) (bool, error)
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) error
}

// MinioStore implements Store against any S3-compatible endpoint.
type MinioStore struct {
	client *minio.Client
}

// NewMinioStore connects to the configured endpoint with static credentials.
func NewMinioStore(cfg types.ObjectStoreConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating object store client: %w", err)
	}
	return &MinioStore{client: client}, nil
}

// Exists reports whether the object is present. A missing key or missing
// bucket both report false; other errors propagate.
func (s *MinioStore) Exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			return false, nil
		}
		return false, fmt.Errorf("checking object %s/%s: %w", bucket, key, err)
	}
	return true, nil
}

// Get fetches the full object bytes.
func (s *MinioStore) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetching object %s/%s: %w", bucket, key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("reading object %s/%s: %w", bucket, key, err)
	}
	return data, nil
}

// Put creates or overwrites the object with the given payload and media type.
func (s *MinioStore) Put(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("writing object %s/%s: %w", bucket, key, err)
	}
	return nil
}
