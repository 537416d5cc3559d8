package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStorage is what the services depend on: put bytes under a key
// and get back a public URL, or best-effort delete by that URL.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte) (string, error)
	Delete(ctx context.Context, url string) error
}

type storageClient struct {
	bucket  string
	baseURL string
	client  *s3.Client
}

func NewStorageClient() (ObjectStorage, error) {
	region := os.Getenv("AWS_S3_REGION")
	bucket := os.Getenv("S3_BUCKET_NAME")
	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg)
	return &storageClient{
		bucket:  bucket,
		baseURL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", bucket, region),
		client:  client,
	}, nil
}

// Upload writes the object and returns its public URL. Reusing a key
// overwrites the previous object, which is exactly what fixed-key
// assets (tenant logos) rely on.
func (s *storageClient) Upload(ctx context.Context, key string, data []byte) (string, error) {
	if key == "" {
		return "", errors.New("storage key is empty")
	}

	mimeType := mime.TypeByExtension(filepath.Ext(key))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: &mimeType,
	}

	_, err := s.client.PutObject(ctx, input)
	if err != nil {
		return "", err
	}
	return s.baseURL + key, nil
}

// Delete removes the object behind a URL previously returned by Upload.
// Callers treat failures as non-fatal; the database row is the source
// of truth and the object is a dependent artifact.
func (s *storageClient) Delete(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, s.baseURL) {
		return fmt.Errorf("url %q does not belong to bucket %s", url, s.bucket)
	}
	key := strings.TrimPrefix(url, s.baseURL)

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
