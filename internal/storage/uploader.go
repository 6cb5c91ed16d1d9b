package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	uploadCacheControl = "max-age=3600"
	defaultContentType = "image/*"
	defaultExtension   = "png"
)

// ObjectPutter is the part of the S3 client the uploader needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Upload is a stored file.
type Upload struct {
	Bucket     string `json:"bucket"`
	ObjectName string `json:"object_name"`
}

type Uploader struct {
	client        ObjectPutter
	maxImageWidth int
	newID         func() string
	logger        zerolog.Logger
}

// NewUploader creates an uploader. Images wider than maxImageWidth are
// downscaled before upload; zero disables resizing.
func NewUploader(client ObjectPutter, maxImageWidth int, logger zerolog.Logger) *Uploader {
	return &Uploader{
		client:        client,
		maxImageWidth: maxImageWidth,
		newID:         uuid.NewString,
		logger:        logger.With().Str("service", "uploader").Logger(),
	}
}

// Upload stores body under "<uuid>.<ext>" without overwriting an existing
// object.
func (u *Uploader) Upload(ctx context.Context, bucket, filename, contentType string, body io.Reader) (*Upload, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty upload")
	}

	ext := Extension(filename)
	objectName := u.newID() + "." + ext
	if contentType == "" {
		contentType = defaultContentType
	}

	data = u.downscale(filename, data)

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(objectName),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String(uploadCacheControl),
		IfNoneMatch:   aws.String("*"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s/%s: %w", bucket, objectName, err)
	}

	u.logger.Info().Str("bucket", bucket).Str("object", objectName).Int("bytes", len(data)).Msg("image uploaded")
	return &Upload{Bucket: bucket, ObjectName: objectName}, nil
}

// Extension is the lowercased file extension, "png" when there is none.
func Extension(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return defaultExtension
	}
	return ext
}

// downscale returns data unchanged unless it decodes as an image wider than
// the limit. GIFs are left alone to keep animation frames.
func (u *Uploader) downscale(filename string, data []byte) []byte {
	if u.maxImageWidth <= 0 {
		return data
	}
	format, err := imaging.FormatFromFilename(filename)
	if err != nil || format == imaging.GIF {
		return data
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		u.logger.Debug().Err(err).Str("filename", filename).Msg("upload is not a decodable image")
		return data
	}
	if img.Bounds().Dx() <= u.maxImageWidth {
		return data
	}

	resized := imaging.Resize(img, u.maxImageWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format); err != nil {
		u.logger.Warn().Err(err).Msg("failed to encode downscaled image")
		return data
	}
	return buf.Bytes()
}
