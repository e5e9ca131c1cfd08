package services

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Service stores and removes image blobs in a single S3 bucket.
type S3Service struct {
	BucketName string
	Region     string
	Client     *s3.Client
}

// NewS3Service initializes the S3 service from the default AWS credential
// chain. bucket and region must be non-empty.
func NewS3Service(ctx context.Context, bucket, region string) (*S3Service, error) {
	if bucket == "" {
		return nil, fmt.Errorf("S3 bucket name is not set")
	}
	if region == "" {
		return nil, fmt.Errorf("AWS region is not set")
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &S3Service{
		BucketName: bucket,
		Region:     region,
		Client:     s3.NewFromConfig(cfg),
	}, nil
}

var unsafeKeyChars = regexp.MustCompile(`[^\w.-]`)

// sanitizeFilename makes an original filename safe to embed in an object key.
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")
	return unsafeKeyChars.ReplaceAllString(name, "")
}

// Upload stores the payload under a freshly generated key namespaced by
// folder and returns the key. The key embeds a timestamp, a uuid and the
// sanitized original filename, e.g. "gallery/1712345678-<uuid>-floor_tile.jpg".
func (s *S3Service) Upload(ctx context.Context, folder, filename, contentType string, body []byte) (string, error) {
	key := fmt.Sprintf("%s/%d-%s-%s", folder, time.Now().Unix(), uuid.NewString(), sanitizeFilename(filename))

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.Client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload %s to S3: %w", key, err)
	}
	return key, nil
}

// Delete removes the object with the given key.
func (s *S3Service) Delete(ctx context.Context, key string) error {
	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s from S3: %w", key, err)
	}
	return nil
}

// URL returns the public URL for a stored key.
func (s *S3Service) URL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.BucketName, s.Region, key)
}
