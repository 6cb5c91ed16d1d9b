package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"public url", "https://host/storage/v1/object/public/teachers/foo.png", "foo.png"},
		{"bucket relative", "teachers/foo.png", "foo.png"},
		{"bare name", "foo.png", "foo.png"},
		{"whitespace", "  foo.png\n", "foo.png"},
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"nested path after marker", "https://host/storage/v1/object/sign/teachers/a/b.png", "a/b.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize("teachers", tt.raw))
		})
	}
}

func TestNormalizeOtherBucket(t *testing.T) {
	assert.Equal(t, "x.jpg", Normalize("news", "news/x.jpg"))
	assert.Equal(t, "teachers/x.jpg", Normalize("news", "teachers/x.jpg"))
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t,
		"https://abc.supabase.co/storage/v1/object/public/news/n.png",
		PublicURL("https://abc.supabase.co/", "news", "n.png"))
}
