// Package media issues presigned URLs for photo objects. The API never
// proxies image bytes; clients upload and view directly against object
// storage.
package media

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Service struct {
	client    *minio.Client
	bucket    string
	uploadTTL time.Duration
}

func New(endpoint, accessKey, secretKey, bucket string, useSSL bool, uploadTTL time.Duration) (*Service, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &Service{client: client, bucket: bucket, uploadTTL: uploadTTL}, nil
}

// EnsureBucket creates the photo bucket if it does not exist yet.
func (s *Service) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket: %w", err)
	}
	return nil
}

// ObjectKey builds the storage key for a photo. The group id namespaces
// objects so a group deletion can sweep its prefix.
func ObjectKey(groupID, photoID, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return groupID + "/" + photoID + ext
}

// UploadURL returns a presigned PUT URL for a new photo object.
func (s *Service) UploadURL(ctx context.Context, objectKey string) (string, error) {
	presigned, err := s.client.PresignedPutObject(ctx, s.bucket, objectKey, s.uploadTTL)
	if err != nil {
		return "", fmt.Errorf("presign upload: %w", err)
	}
	return presigned.String(), nil
}

// ViewURL returns a presigned GET URL for an existing photo object.
func (s *Service) ViewURL(ctx context.Context, objectKey string) (string, error) {
	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, objectKey, s.uploadTTL, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign view: %w", err)
	}
	return presigned.String(), nil
}

// RemovePrefix deletes every object under a group's prefix. Called after a
// group deletion commits; object storage is not part of the transaction.
func (s *Service) RemovePrefix(ctx context.Context, groupID string) error {
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    groupID + "/",
		Recursive: true,
	})
	for object := range objects {
		if object.Err != nil {
			return fmt.Errorf("list group objects: %w", object.Err)
		}
		if err := s.client.RemoveObject(ctx, s.bucket, object.Key, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("remove object %s: %w", object.Key, err)
		}
	}
	return nil
}
