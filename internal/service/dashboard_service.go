package service

import (
	"context"

	"kizuna/internal/repository"

	"golang.org/x/sync/errgroup"
)

// Dashboard is the admin landing page: one link per editor with its row count.
type Dashboard struct {
	Sections []DashboardSection `json:"sections"`
}

type DashboardSection struct {
	Title string `json:"title"`
	Href  string `json:"href"`
	Count int    `json:"count"`
}

type DashboardService interface {
	Get(ctx context.Context) (*Dashboard, error)
}

type dashboardService struct {
	courses     repository.CourseRepository
	teachers    repository.TeacherRepository
	news        repository.NewsRepository
	calligraphy repository.CalligraphyRepository
	quiz        repository.QuizRepository
	pricing     repository.PricingRepository
}

func NewDashboardService(
	courses repository.CourseRepository,
	teachers repository.TeacherRepository,
	news repository.NewsRepository,
	calligraphy repository.CalligraphyRepository,
	quiz repository.QuizRepository,
	pricing repository.PricingRepository,
) DashboardService {
	return &dashboardService{
		courses:     courses,
		teachers:    teachers,
		news:        news,
		calligraphy: calligraphy,
		quiz:        quiz,
		pricing:     pricing,
	}
}

func (s *dashboardService) Get(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{Sections: []DashboardSection{
		{Title: "Курсове", Href: "/admin/courses"},
		{Title: "Преподаватели", Href: "/admin/teachers"},
		{Title: "Новини", Href: "/admin/news"},
		{Title: "Калиграфия", Href: "/admin/calligraphy"},
		{Title: "Тест", Href: "/admin/test"},
		{Title: "Цени", Href: "/admin/pricing"},
	}}

	counters := []func(context.Context) (int, error){
		func(ctx context.Context) (int, error) { l, err := s.courses.List(ctx); return len(l), err },
		func(ctx context.Context) (int, error) { l, err := s.teachers.List(ctx); return len(l), err },
		func(ctx context.Context) (int, error) { l, err := s.news.List(ctx, 0); return len(l), err },
		func(ctx context.Context) (int, error) { l, err := s.calligraphy.List(ctx); return len(l), err },
		func(ctx context.Context) (int, error) { l, err := s.quiz.List(ctx); return len(l), err },
		func(ctx context.Context) (int, error) { l, err := s.pricing.List(ctx); return len(l), err },
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, count := range counters {
		g.Go(func() error {
			n, err := count(gctx)
			if err != nil {
				return err
			}
			d.Sections[i].Count = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}
