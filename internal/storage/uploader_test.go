package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func pngOfWidth(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestUploader(p ObjectPutter, maxWidth int) *Uploader {
	u := NewUploader(p, maxWidth, zerolog.Nop())
	u.newID = func() string { return "0b7c1e2a" }
	return u
}

func TestUploadNamesAndHeaders(t *testing.T) {
	p := &fakePutter{}
	u := newTestUploader(p, 0)

	up, err := u.Upload(context.Background(), "teachers", "Portrait.JPG", "", bytes.NewReader([]byte("raw")))
	require.NoError(t, err)

	assert.Equal(t, "0b7c1e2a.jpg", up.ObjectName)
	assert.Equal(t, "teachers", *p.input.Bucket)
	assert.Equal(t, "0b7c1e2a.jpg", *p.input.Key)
	assert.Equal(t, "image/*", *p.input.ContentType)
	assert.Equal(t, "max-age=3600", *p.input.CacheControl)
	assert.Equal(t, "*", *p.input.IfNoneMatch)
	assert.Equal(t, []byte("raw"), p.body)
}

func TestUploadDefaultExtension(t *testing.T) {
	assert.Equal(t, "png", Extension("blob"))
	assert.Equal(t, "webp", Extension("a.b.WEBP"))
}

func TestUploadDownscalesWideImages(t *testing.T) {
	p := &fakePutter{}
	u := newTestUploader(p, 100)

	_, err := u.Upload(context.Background(), "news", "wide.png", "image/png", bytes.NewReader(pngOfWidth(t, 400, 40)))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(p.body))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())
	assert.Equal(t, int64(len(p.body)), *p.input.ContentLength)
}

func TestUploadKeepsNarrowImages(t *testing.T) {
	p := &fakePutter{}
	u := newTestUploader(p, 100)
	src := pngOfWidth(t, 50, 5)

	_, err := u.Upload(context.Background(), "news", "small.png", "image/png", bytes.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, src, p.body)
}

func TestUploadErrors(t *testing.T) {
	_, err := newTestUploader(&fakePutter{}, 0).Upload(context.Background(), "teachers", "a.png", "", bytes.NewReader(nil))
	assert.Error(t, err)

	_, err = newTestUploader(&fakePutter{err: errors.New("exists")}, 0).Upload(context.Background(), "teachers", "a.png", "", bytes.NewReader([]byte("x")))
	assert.ErrorContains(t, err, "exists")
}
