package editor

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"kizuna/internal/model"
	"kizuna/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalligraphyRowAndFill(t *testing.T) {
	d := CalligraphyDraft{
		Title:           " Шодо ",
		Date:            "2026-04-04",
		Days:            []string{"Понеделник", "Сряда"},
		StartTime:       "18:00",
		EndTime:         "19:30",
		Price:           45,
		TeacherID:       "t1",
		DescriptionText: "Първи абзац.\n\n  Втори абзац.  \n",
	}
	require.NoError(t, validateCalligraphy(d))

	row := calligraphyRow(d)
	assert.Equal(t, "Шодо", row.Title)
	assert.Equal(t, "Понеделник, Сряда 18:00–19:30", row.ScheduleLine)
	assert.Equal(t, []string{"Първи абзац.", "Втори абзац."}, row.Description)
	assert.Equal(t, 1, row.ClassesCount)
	assert.Equal(t, "/contact", row.Href)
	assert.Nil(t, row.Note)

	back := fillCalligraphy(row)
	assert.Equal(t, d.Days, back.Days)
	assert.Equal(t, "18:00", back.StartTime)
	assert.Equal(t, "19:30", back.EndTime)
	assert.Equal(t, "Първи абзац.\n\nВтори абзац.", back.DescriptionText)
	assert.Equal(t, 45.0, back.Price)
}

func TestCalligraphyValidation(t *testing.T) {
	base := CalligraphyDraft{
		Title: "T", Date: "2026-04-04", TeacherID: "t", Days: []string{"Петък"},
		StartTime: "10:00", EndTime: "11:00", Price: 10, DescriptionText: "x",
	}
	tests := []struct {
		mutate func(*CalligraphyDraft)
		want   string
	}{
		{func(d *CalligraphyDraft) { d.Title = "" }, "Моля, въведете заглавие."},
		{func(d *CalligraphyDraft) { d.Date = "" }, "Моля, изберете дата."},
		{func(d *CalligraphyDraft) { d.TeacherID = "" }, "Моля, изберете преподавател."},
		{func(d *CalligraphyDraft) { d.Days = nil }, "Моля, изберете поне един ден."},
		{func(d *CalligraphyDraft) { d.StartTime = "" }, "Моля, изберете начален час."},
		{func(d *CalligraphyDraft) { d.EndTime = "" }, "Моля, изберете краен час."},
		{func(d *CalligraphyDraft) { d.Price = 0 }, "Моля, въведете цена (по-голяма от 0)."},
		{func(d *CalligraphyDraft) { d.DescriptionText = " \n " }, "Моля, добавете описание (поне 1 абзац)."},
	}
	for _, tt := range tests {
		d := base
		tt.mutate(&d)
		assert.EqualError(t, validateCalligraphy(d), tt.want)
	}
}

func TestTeacherNormalizesImage(t *testing.T) {
	row := teacherRow("teachers", TeacherDraft{
		Name:  " Аико ",
		Title: "  ",
		Image: "https://x.supabase.co/storage/v1/object/public/teachers/a.png",
	})
	assert.Equal(t, "Аико", row.Name)
	assert.Equal(t, "a.png", row.Image)
	assert.Nil(t, row.Title)
	assert.Nil(t, row.Description)

	assert.EqualError(t, validateTeacher("teachers", TeacherDraft{Image: "a.png"}), "Името е задължително.")
	assert.EqualError(t, validateTeacher("teachers", TeacherDraft{Name: "A", Image: " "}), "Снимката е задължителна. Качете снимка.")
}

func TestQuizFillPadsAndRowClamps(t *testing.T) {
	d := fillQuiz(model.QuizQuestion{ID: "q", Question: "犬?", Options: []string{"a", "b"}, CorrectIndex: 1, IsActive: true})
	assert.Equal(t, []string{"a", "b", "", ""}, d.Options)

	d.Options = []string{" a ", "", "b", " "}
	d.CorrectIndex = 3
	row := quizRow(d)
	assert.Equal(t, []string{"a", "b"}, row.Options)
	assert.Equal(t, 1, row.CorrectIndex)
	assert.Nil(t, row.Explanation)

	assert.Len(t, NewQuizDraft().Options, 4)
}

func TestQuizValidation(t *testing.T) {
	msg := "Моля, добави въпрос и поне 2 опции."
	assert.EqualError(t, validateQuiz(QuizDraft{Question: "ab", Options: []string{"a", "b"}}), msg)
	assert.EqualError(t, validateQuiz(QuizDraft{Question: "abc", Options: []string{"a", " "}}), msg)
	assert.NoError(t, validateQuiz(QuizDraft{Question: "犬です", Options: []string{"a", "b"}}))
	assert.NoError(t, validateQuiz(QuizDraft{Question: "犬です", Options: []string{"a", "b", "c", "d", " "}}))
}

func TestQuizRejectsMoreThanFourOptions(t *testing.T) {
	store := &memStore[model.QuizQuestion]{id: func(q *model.QuizQuestion) *string { return &q.ID }}
	ed := New("quiz", Store[model.QuizQuestion](store), Definition[model.QuizQuestion, QuizDraft]{
		Fill:     fillQuiz,
		Validate: validateQuiz,
		Row:      quizRow,
		DraftID:  func(d QuizDraft) string { return d.ID },
		RowID:    func(q model.QuizQuestion) string { return q.ID },
	}, zerolog.Nop())

	_, err := ed.Save(context.Background(), QuizDraft{
		Question: "Кой е правилният отговор?",
		Options:  []string{"a", "b", "c", "d", "e", "f"},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Въпросът може да има най-много 4 опции.", verr.Message)
	assert.Empty(t, store.rows)
}

func TestNewsValidation(t *testing.T) {
	assert.EqualError(t, validateNews(NewsDraft{Content: "x"}), "Моля, въведете заглавие.")
	assert.EqualError(t, validateNews(NewsDraft{Title: "x", Content: " "}), "Моля, въведете съдържание.")
}

func TestSlugBase(t *testing.T) {
	assert.Equal(t, "zapisvane-za-kurs-n5", SlugBase("Записване за курс N5!"))
	assert.Equal(t, "shtastlivo-novo-yaponsko", SlugBase("Щастливо ново японско"))
	assert.Equal(t, "cafe-matcha", SlugBase("Café — Matcha"))
	assert.Equal(t, "", SlugBase("日本"))
}

func TestSlugSuffix(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^zdraveyte-[0-9a-f]{6}$`), Slug("Здравейте"))
	assert.Regexp(t, regexp.MustCompile(`^news-[0-9a-f]{6}$`), Slug("日本"))
}

type conflictNewsRepo struct {
	repository.NewsRepository
	conflicts int
	slugs     []string
}

func (r *conflictNewsRepo) Insert(_ context.Context, n *model.NewsItem) error {
	r.slugs = append(r.slugs, n.Slug)
	if len(r.slugs) <= r.conflicts {
		return repository.ErrConflict
	}
	n.ID = "n1"
	return nil
}

func TestNewsStoreRetriesSlugConflicts(t *testing.T) {
	repo := &conflictNewsRepo{conflicts: 1}
	n := 0
	store := &newsStore{repo: repo, slug: func(string) string { n++; return "s" + string(rune('0'+n)) }}

	item := &model.NewsItem{Title: "A"}
	require.NoError(t, store.Insert(context.Background(), item))
	assert.Equal(t, []string{"s1", "s2"}, repo.slugs)
	assert.Equal(t, "s2", item.Slug)

	repo = &conflictNewsRepo{conflicts: 5}
	store.repo = repo
	err := store.Insert(context.Background(), &model.NewsItem{Title: "A"})
	assert.True(t, errors.Is(err, repository.ErrConflict))
	assert.Len(t, repo.slugs, slugInsertTries)
}
