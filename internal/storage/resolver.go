package storage

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultSignedURLTTL is the validity window of signed image URLs.
const DefaultSignedURLTTL = time.Hour

const maxConcurrentSigns = 8

// Resolver turns stored image references of one bucket into signed URLs. A
// failed signature never surfaces as an error: the result is "" and the
// caller renders no image.
type Resolver struct {
	bucket string
	signer Signer
	ttl    time.Duration
	cache  Cache
	logger zerolog.Logger
}

// NewResolver creates a resolver; cache may be nil.
func NewResolver(bucket string, signer Signer, ttl time.Duration, cache Cache, logger zerolog.Logger) *Resolver {
	if ttl <= 0 {
		ttl = DefaultSignedURLTTL
	}
	return &Resolver{
		bucket: bucket,
		signer: signer,
		ttl:    ttl,
		cache:  cache,
		logger: logger.With().Str("service", "storage").Str("bucket", bucket).Logger(),
	}
}

func (r *Resolver) Bucket() string {
	return r.bucket
}

// Normalize applies Normalize for the resolver's bucket.
func (r *Resolver) Normalize(raw string) string {
	return Normalize(r.bucket, raw)
}

// Resolve normalizes raw and signs it.
func (r *Resolver) Resolve(ctx context.Context, raw string) string {
	return r.sign(ctx, r.Normalize(raw))
}

func (r *Resolver) sign(ctx context.Context, objectName string) string {
	if objectName == "" {
		return ""
	}

	cacheKey := r.bucket + "/" + objectName
	if r.cache != nil {
		url, ok, err := r.cache.Get(ctx, cacheKey)
		if err != nil {
			r.logger.Warn().Err(err).Str("object", objectName).Msg("signed url cache read failed")
		} else if ok {
			return url
		}
	}

	url, err := r.signer.SignGet(ctx, r.bucket, objectName, r.ttl)
	if err != nil {
		r.logger.Error().Err(err).Str("object", objectName).Msg("createSignedUrl failed")
		return ""
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, cacheKey, url, cacheTTL(r.ttl)); err != nil {
			r.logger.Warn().Err(err).Str("object", objectName).Msg("signed url cache write failed")
		}
	}
	return url
}

// ResolveAll signs a batch concurrently. The result is index-aligned with
// raws; equal object names in the batch are signed once.
func (r *Resolver) ResolveAll(ctx context.Context, raws []string) []string {
	out := make([]string, len(raws))
	if len(raws) == 0 {
		return out
	}

	positions := make(map[string][]int)
	var order []string
	for i, raw := range raws {
		name := r.Normalize(raw)
		if name == "" {
			continue
		}
		if _, seen := positions[name]; !seen {
			order = append(order, name)
		}
		positions[name] = append(positions[name], i)
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(maxConcurrentSigns)
	for _, name := range order {
		g.Go(func() error {
			url := r.sign(ctx, name)
			mu.Lock()
			for _, i := range positions[name] {
				out[i] = url
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}
