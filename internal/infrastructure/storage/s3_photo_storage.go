package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"susunara/internal/infrastructure/database"
	"susunara/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultPhotoBucket = "susunara-photos"

// S3PhotoStorage stores ticket photos in an S3 bucket.
//
// Supported env vars:
//   - PHOTO_BUCKET (default: susunara-photos)
//   - S3_ENDPOINT (optional; e.g. http://minio:9000 for local runs)
//   - PHOTO_BASE_URL (optional; public URL prefix when serving via CDN)

type S3PhotoStorage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var _ interfaces.IPhotoStorage = (*S3PhotoStorage)(nil)

func NewS3PhotoStorage() *S3PhotoStorage {
	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}

	opts := []func(*s3.Options){}
	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	return &S3PhotoStorage{
		client:  s3.NewFromConfig(cfg, opts...),
		bucket:  getenvDefault("PHOTO_BUCKET", defaultPhotoBucket),
		baseURL: os.Getenv("PHOTO_BASE_URL"),
	}
}

func (s *S3PhotoStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	log.Printf("[photo][s3] uploaded key=%s bytes=%d", key, len(data))

	if s.baseURL != "" {
		return fmt.Sprintf("%s/%s", s.baseURL, key), nil
	}

	region := getenvDefault("AWS_REGION", "ap-northeast-2")
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, region, key), nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
