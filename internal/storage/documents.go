// Package storage persists identity documents in object storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rolandaayo/Astral-cu/internal/config"
)

const maxDocumentSize = 10 * 1024 * 1024 // 10 MB

var (
	ErrFileTooBig      = errors.New("file size exceeds 10MB limit")
	ErrInvalidFileType = errors.New("invalid file type, only JPEG and PNG images are allowed")
	ErrUploadFailed    = errors.New("failed to upload file")

	allowedContentTypes = map[string]struct{}{
		"image/jpeg": {},
		"image/png":  {},
	}
)

// Upload is one file received from a multipart request.
type Upload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

// DocumentStore stores ID document images and returns an opaque URL that is
// persisted verbatim on the user record.
type DocumentStore interface {
	// UploadIDDocument stores one side ("front" or "back") of an ID document.
	UploadIDDocument(ctx context.Context, side string, up Upload) (string, error)
}

// MinioDocumentStore implements DocumentStore on S3-compatible storage.
type MinioDocumentStore struct {
	client *minio.Client
	bucket string
}

// NewMinioDocumentStore creates the store and ensures the bucket exists.
func NewMinioDocumentStore(cfg *config.StorageConfig) (*MinioDocumentStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	store := &MinioDocumentStore{client: client, bucket: cfg.Bucket}

	exists, err := client.BucketExists(context.Background(), cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check storage bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create storage bucket: %w", err)
		}
	}

	return store, nil
}

// UploadIDDocument validates and stores one ID image, returning its URL.
func (s *MinioDocumentStore) UploadIDDocument(ctx context.Context, side string, up Upload) (string, error) {
	if up.Size > maxDocumentSize {
		return "", ErrFileTooBig
	}

	contentType := strings.ToLower(strings.TrimSpace(up.ContentType))
	if _, ok := allowedContentTypes[contentType]; !ok {
		return "", ErrInvalidFileType
	}

	ext := ".jpg"
	if contentType == "image/png" {
		ext = ".png"
	}
	objectKey := fmt.Sprintf("id-documents/%s/%s%s", side, uuid.New(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, up.Reader, up.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, objectKey), nil
}
