package service

import (
	"context"

	"kizuna/internal/model"
	"kizuna/internal/storage"
)

// ImageResolver signs stored image references.
type ImageResolver interface {
	ResolveAll(ctx context.Context, raws []string) []string
}

var _ ImageResolver = (*storage.Resolver)(nil)

// signTeachers fills ImageURL for every non-nil teacher in one batch.
func signTeachers(ctx context.Context, images ImageResolver, teachers []*model.Teacher) {
	present := make([]*model.Teacher, 0, len(teachers))
	raws := make([]string, 0, len(teachers))
	for _, t := range teachers {
		if t == nil {
			continue
		}
		present = append(present, t)
		raws = append(raws, t.Image)
	}
	if len(present) == 0 {
		return
	}
	for i, url := range images.ResolveAll(ctx, raws) {
		present[i].ImageURL = url
	}
}
