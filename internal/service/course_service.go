package service

import (
	"context"
	"fmt"
	"time"

	"kizuna/internal/model"
	"kizuna/internal/repository"
)

// DefaultHomeCourses is how many courses the home page shows.
const DefaultHomeCourses = 6

type CourseService interface {
	List(ctx context.Context) ([]model.Course, error)
	// ListByLevel filters by level; "All" or "" returns every course.
	ListByLevel(ctx context.Context, level model.Level) ([]model.Course, error)
	// Home returns upcoming courses, or the most recent ones when nothing is
	// upcoming.
	Home(ctx context.Context, limit int) ([]model.Course, error)
}

type courseService struct {
	repo   repository.CourseRepository
	images ImageResolver
	now    func() time.Time
}

func NewCourseService(repo repository.CourseRepository, images ImageResolver) CourseService {
	return &courseService{repo: repo, images: images, now: time.Now}
}

func (s *courseService) List(ctx context.Context) ([]model.Course, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return s.sign(ctx, courses), nil
}

func (s *courseService) ListByLevel(ctx context.Context, level model.Level) ([]model.Course, error) {
	courses, err := s.repo.ListByLevel(ctx, level)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s courses: %w", level, err)
	}
	return s.sign(ctx, courses), nil
}

func (s *courseService) Home(ctx context.Context, limit int) ([]model.Course, error) {
	if limit <= 0 {
		limit = DefaultHomeCourses
	}

	today := s.now().Format(time.DateOnly)
	upcoming, err := s.repo.ListUpcoming(ctx, today, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming courses: %w", err)
	}
	if len(upcoming) > 0 {
		return s.sign(ctx, upcoming), nil
	}

	recent, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent courses: %w", err)
	}
	return s.sign(ctx, recent), nil
}

func (s *courseService) sign(ctx context.Context, courses []model.Course) []model.Course {
	teachers := make([]*model.Teacher, len(courses))
	for i := range courses {
		teachers[i] = courses[i].Teacher
	}
	signTeachers(ctx, s.images, teachers)
	return courses
}
