package service

import (
	"context"
	"fmt"

	"kizuna/internal/model"
	"kizuna/internal/repository"
)

type CalligraphyService interface {
	List(ctx context.Context) ([]model.CalligraphyCourse, error)
}

type calligraphyService struct {
	repo   repository.CalligraphyRepository
	images ImageResolver
}

func NewCalligraphyService(repo repository.CalligraphyRepository, images ImageResolver) CalligraphyService {
	return &calligraphyService{repo: repo, images: images}
}

func (s *calligraphyService) List(ctx context.Context) ([]model.CalligraphyCourse, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list calligraphy courses: %w", err)
	}
	teachers := make([]*model.Teacher, len(courses))
	for i := range courses {
		teachers[i] = courses[i].Teacher
	}
	signTeachers(ctx, s.images, teachers)
	return courses, nil
}
