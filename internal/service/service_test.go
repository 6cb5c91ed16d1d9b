package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"kizuna/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImages struct {
	batches [][]string
}

func (f *fakeImages) ResolveAll(_ context.Context, raws []string) []string {
	f.batches = append(f.batches, raws)
	out := make([]string, len(raws))
	for i, r := range raws {
		if r != "" {
			out[i] = "signed:" + r
		}
	}
	return out
}

type fakeCourseRepo struct {
	upcoming     []model.Course
	recent       []model.Course
	upcomingFrom string
	err          error
}

func (f *fakeCourseRepo) List(context.Context) ([]model.Course, error) { return f.recent, f.err }
func (f *fakeCourseRepo) ListByLevel(context.Context, model.Level) ([]model.Course, error) {
	return f.recent, f.err
}
func (f *fakeCourseRepo) ListUpcoming(_ context.Context, from string, _ int) ([]model.Course, error) {
	f.upcomingFrom = from
	return f.upcoming, f.err
}
func (f *fakeCourseRepo) ListRecent(context.Context, int) ([]model.Course, error) {
	return f.recent, f.err
}
func (f *fakeCourseRepo) Insert(context.Context, *model.Course) error { return nil }
func (f *fakeCourseRepo) Update(context.Context, *model.Course) error { return nil }
func (f *fakeCourseRepo) Delete(context.Context, string) error        { return nil }

func newCourseSvc(repo *fakeCourseRepo, images ImageResolver) *courseService {
	s := NewCourseService(repo, images).(*courseService)
	s.now = func() time.Time { return time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC) }
	return s
}

func TestHomePrefersUpcoming(t *testing.T) {
	repo := &fakeCourseRepo{
		upcoming: []model.Course{{ID: "up", Teacher: &model.Teacher{Image: "teachers/a.png"}}},
		recent:   []model.Course{{ID: "old"}},
	}
	images := &fakeImages{}

	courses, err := newCourseSvc(repo, images).Home(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "up", courses[0].ID)
	assert.Equal(t, "2026-03-10", repo.upcomingFrom)
	assert.Equal(t, "signed:teachers/a.png", courses[0].Teacher.ImageURL)
}

func TestHomeFallsBackToRecent(t *testing.T) {
	repo := &fakeCourseRepo{recent: []model.Course{{ID: "old"}}}

	courses, err := newCourseSvc(repo, &fakeImages{}).Home(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "old", courses[0].ID)
}

func TestHomePropagatesErrors(t *testing.T) {
	repo := &fakeCourseRepo{err: errors.New("timeout")}
	_, err := newCourseSvc(repo, &fakeImages{}).Home(context.Background(), 6)
	assert.ErrorContains(t, err, "timeout")
}

func TestCourseListSignsOnlyPresentTeachers(t *testing.T) {
	repo := &fakeCourseRepo{recent: []model.Course{
		{ID: "a", Teacher: &model.Teacher{Image: "x.png"}},
		{ID: "b"},
		{ID: "c", Teacher: &model.Teacher{Image: ""}},
	}}
	images := &fakeImages{}

	courses, err := newCourseSvc(repo, images).List(context.Background())
	require.NoError(t, err)
	require.Len(t, images.batches, 1)
	assert.Equal(t, []string{"x.png", ""}, images.batches[0])
	assert.Equal(t, "signed:x.png", courses[0].Teacher.ImageURL)
	assert.Nil(t, courses[1].Teacher)
	assert.Equal(t, "", courses[2].Teacher.ImageURL)
}

func TestGrade(t *testing.T) {
	qs := []model.QuizQuestion{
		{ID: "1", Options: []string{"a", "b"}, CorrectIndex: 0},
		{ID: "2", Options: []string{"a", "b"}, CorrectIndex: 1},
		{ID: "3", Options: []string{"a", "b"}, CorrectIndex: 1},
		{ID: "4", Options: []string{"a", "b"}, CorrectIndex: 0},
		{ID: "5", Options: []string{"a", "b"}, CorrectIndex: 0},
	}

	res := Grade(qs, map[string]int{"1": 0, "2": 1, "3": 1, "4": 0, "5": 0})
	assert.Equal(t, 5, res.Score)
	assert.Equal(t, "Перфектно! 🌸", res.Title)

	res = Grade(qs, map[string]int{"1": 0, "2": 1, "3": 1, "4": 0, "5": 1})
	assert.Equal(t, 4, res.Score)
	assert.Equal(t, "Супер резултат! ⭐", res.Title)

	res = Grade(qs, map[string]int{"1": 0, "2": 1, "3": 1})
	assert.Equal(t, 3, res.Score)
	assert.Equal(t, 3, res.Answered)
	assert.Equal(t, "Браво! 🙌", res.Title)

	res = Grade(qs, map[string]int{"1": 1})
	assert.Equal(t, "Добър старт 🙂", res.Title)
	assert.True(t, res.Scorable)
}

func TestGradeUnscorableQuestion(t *testing.T) {
	qs := []model.QuizQuestion{
		{ID: "1", Options: []string{"a", "b"}, CorrectIndex: 0},
		{ID: "2", Options: []string{"a", "b"}, CorrectIndex: -1},
	}
	res := Grade(qs, map[string]int{"1": 0, "2": 0})
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, 2, res.Total)
	assert.False(t, res.Scorable)
}

func TestResultMessageEmpty(t *testing.T) {
	title, text := ResultMessage(0, 0)
	assert.Equal(t, "Готово!", title)
	assert.Equal(t, "Благодарим ти!", text)
}

type fakePageConfigRepo struct {
	pc  *model.PageConfig
	err error
}

func (f *fakePageConfigRepo) Get(context.Context, string) (*model.PageConfig, error) {
	return f.pc, f.err
}

func TestPageConfigFallbacks(t *testing.T) {
	ctx := context.Background()

	stored := json.RawMessage(`{"hero":{"title":"X"}}`)
	data, err := NewPageConfigService(&fakePageConfigRepo{pc: &model.PageConfig{Slug: "courses", Data: stored}}, zerolog.Nop()).Get(ctx, "courses")
	require.NoError(t, err)
	assert.JSONEq(t, string(stored), string(data))

	data, err = NewPageConfigService(&fakePageConfigRepo{}, zerolog.Nop()).Get(ctx, "courses")
	require.NoError(t, err)
	assert.JSONEq(t, string(model.DefaultCoursesPage), string(data))

	data, err = NewPageConfigService(&fakePageConfigRepo{err: errors.New("down")}, zerolog.Nop()).Get(ctx, "courses")
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	_, err = NewPageConfigService(&fakePageConfigRepo{}, zerolog.Nop()).Get(ctx, "about")
	assert.ErrorIs(t, err, ErrPageConfigNotFound)
}

type fakeNewsRepo struct {
	item *model.NewsItem
}

func (f *fakeNewsRepo) List(context.Context, int) ([]model.NewsItem, error) { return nil, nil }
func (f *fakeNewsRepo) GetBySlug(context.Context, string) (*model.NewsItem, error) {
	return f.item, nil
}
func (f *fakeNewsRepo) ListExcept(context.Context, string, int) ([]model.NewsItem, error) {
	return nil, nil
}
func (f *fakeNewsRepo) Insert(context.Context, *model.NewsItem) error { return nil }
func (f *fakeNewsRepo) Update(context.Context, *model.NewsItem) error { return nil }
func (f *fakeNewsRepo) Delete(context.Context, string) error          { return nil }

func TestNewsBySlugNotFound(t *testing.T) {
	_, err := NewNewsService(&fakeNewsRepo{}).BySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNewsNotFound)

	item, err := NewNewsService(&fakeNewsRepo{item: &model.NewsItem{Slug: "a"}}).BySlug(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "a", item.Slug)
}
