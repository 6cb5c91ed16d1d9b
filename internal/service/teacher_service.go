package service

import (
	"context"
	"fmt"

	"kizuna/internal/model"
	"kizuna/internal/repository"
)

type TeacherService interface {
	// List returns teachers newest first with signed photos.
	List(ctx context.Context) ([]model.Teacher, error)
}

type teacherService struct {
	repo   repository.TeacherRepository
	images ImageResolver
}

func NewTeacherService(repo repository.TeacherRepository, images ImageResolver) TeacherService {
	return &teacherService{repo: repo, images: images}
}

func (s *teacherService) List(ctx context.Context) ([]model.Teacher, error) {
	teachers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}
	ptrs := make([]*model.Teacher, len(teachers))
	for i := range teachers {
		ptrs[i] = &teachers[i]
	}
	signTeachers(ctx, s.images, ptrs)
	return teachers, nil
}
