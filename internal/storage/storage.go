// Package storage talks to Supabase Storage through its S3-compatible
// endpoint: it signs stored image references for display and uploads new
// images.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awsmiddleware "github.com/aws/smithy-go/middleware"
)

// S3Config is the subset of the service config needed to reach storage.
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// NewS3Client builds a path-style client for the Supabase S3 endpoint.
func NewS3Client(ctx context.Context, c S3Config) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(c.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, "")),
		awsconfig.WithAPIOptions([]func(*awsmiddleware.Stack) error{removeDisableGzip()}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(c.Endpoint)
		o.UsePathStyle = true
	}), nil
}

// removeDisableGzip works around signature mismatches on Supabase storage.
// See: https://github.com/supabase/storage/issues/577
func removeDisableGzip() func(*awsmiddleware.Stack) error {
	return func(stack *awsmiddleware.Stack) error {
		if _, ok := stack.Finalize.Get("DisableAcceptEncodingGzip"); ok {
			_, err := stack.Finalize.Remove("DisableAcceptEncodingGzip")
			return err
		}
		return nil
	}
}

// Normalize reduces a stored image reference to a bare object name. Three
// shapes exist in the tables: full public URLs containing "/<bucket>/",
// bucket-relative paths "<bucket>/<name>", and bare names.
func Normalize(bucket, raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return ""
	}

	marker := "/" + bucket + "/"
	if idx := strings.Index(v, marker); idx != -1 {
		return v[idx+len(marker):]
	}
	if rest, ok := strings.CutPrefix(v, bucket+"/"); ok {
		return rest
	}
	return v
}

// PublicURL is the unsigned URL of an object in a public bucket.
func PublicURL(supabaseURL, bucket, objectName string) string {
	return strings.TrimRight(supabaseURL, "/") + "/storage/v1/object/public/" + bucket + "/" + objectName
}
