// Package s3storage provides S3 storage implementation.
package s3storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrBucketRequired is returned when no bucket name is provided.
var ErrBucketRequired = errors.New("bucket name is required")

// S3Storage implements storage interface for S3-compatible object stores.
type S3Storage struct {
	client *s3.Client
	bucket string
	prefix string
}

// WithStaticCredentials returns a load option using the given key pair.
func WithStaticCredentials(accessKey, secretKey string) func(*config.LoadOptions) error {
	return config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""))
}

// NewS3Storage creates a new S3Storage instance. Credentials come from the
// default AWS chain unless a load option overrides them. A non empty endpoint
// targets an S3-compatible server (minio...) with path style addressing.
func NewS3Storage(
	ctx context.Context,
	region, endpoint, bucket, prefix string,
	optFns ...func(*config.LoadOptions) error,
) (*S3Storage, error) {
	if bucket == "" {
		return nil, ErrBucketRequired
	}
	optFns = append([]func(*config.LoadOptions) error{config.WithRegion(region)}, optFns...)
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// Check verifies that the bucket exists and is reachable with the credentials.
func (s *S3Storage) Check(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		return fmt.Errorf("bucket %s is not reachable: %w", s.bucket, err)
	}
	return nil
}

// SaveFile uploads src as dstFilename under the storage prefix.
// src should be seekable when the endpoint is plain http.
func (s *S3Storage) SaveFile(ctx context.Context, src io.Reader, dstFilename string, fileSize int64) error {
	key := path.Join(s.prefix, dstFilename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentLength: aws.Int64(fileSize),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to bucket %s: %w", key, s.bucket, err)
	}
	return nil
}
