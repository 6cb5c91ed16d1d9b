package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Signer creates time-limited GET URLs.
type Signer interface {
	SignGet(ctx context.Context, bucket, objectName string, ttl time.Duration) (string, error)
}

type s3Signer struct {
	presignClient *s3.PresignClient
}

func NewS3Signer(client *s3.Client) Signer {
	return &s3Signer{presignClient: s3.NewPresignClient(client)}
}

func (s *s3Signer) SignGet(ctx context.Context, bucket, objectName string, ttl time.Duration) (string, error) {
	resp, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectName),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s/%s: %w", bucket, objectName, err)
	}
	return resp.URL, nil
}
