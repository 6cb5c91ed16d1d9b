package editor

import (
	"context"
	"strings"

	"kizuna/internal/model"
	"kizuna/internal/repository"

	"github.com/rs/zerolog"
)

const (
	QuizDeleteConfirm = "Сигурен ли си, че искаш да изтриеш този въпрос?"
	quizDraftOptions  = 4
	quizMaxOptions    = 4
)

type QuizDraft struct {
	ID           string   `json:"id,omitempty"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
	IsActive     bool     `json:"is_active"`
	OrderIndex   int      `json:"order_index"`
}

// NewQuizDraft is the empty form: four blank options, active.
func NewQuizDraft() QuizDraft {
	return QuizDraft{Options: make([]string, quizDraftOptions), IsActive: true}
}

type QuizEditor = Editor[model.QuizQuestion, QuizDraft]

func NewQuizEditor(repo repository.QuizRepository, logger zerolog.Logger) *QuizEditor {
	return New("quiz", Store[model.QuizQuestion](&quizStore{repo: repo}), Definition[model.QuizQuestion, QuizDraft]{
		Fill:     fillQuiz,
		Validate: validateQuiz,
		Row:      quizRow,
		DraftID:  func(d QuizDraft) string { return d.ID },
		RowID:    func(q model.QuizQuestion) string { return q.ID },
	}, logger)
}

// fillQuiz pads options to four slots so the form always shows four inputs.
func fillQuiz(q model.QuizQuestion) QuizDraft {
	opts := make([]string, quizDraftOptions)
	copy(opts, q.Options)
	if len(q.Options) > quizDraftOptions {
		opts = append([]string(nil), q.Options...)
	}
	correct := q.CorrectIndex
	if correct < 0 {
		correct = 0
	}
	return QuizDraft{
		ID:           q.ID,
		Question:     q.Question,
		Options:      opts,
		CorrectIndex: correct,
		Explanation:  deref(q.Explanation),
		IsActive:     q.IsActive,
		OrderIndex:   q.OrderIndex,
	}
}

func validateQuiz(d QuizDraft) error {
	opts := cleanOptions(d.Options)
	switch {
	case len([]rune(strings.TrimSpace(d.Question))) < 3 || len(opts) < 2:
		return invalid("Моля, добави въпрос и поне 2 опции.")
	case len(opts) > quizMaxOptions:
		return invalid("Въпросът може да има най-много 4 опции.")
	}
	return nil
}

func quizRow(d QuizDraft) model.QuizQuestion {
	opts := cleanOptions(d.Options)
	return model.QuizQuestion{
		ID:           d.ID,
		Question:     strings.TrimSpace(d.Question),
		Options:      opts,
		CorrectIndex: model.ClampIndex(d.CorrectIndex, len(opts)),
		Explanation:  optional(d.Explanation),
		IsActive:     d.IsActive,
		OrderIndex:   d.OrderIndex,
	}
}

func cleanOptions(options []string) []string {
	out := []string{}
	for _, o := range options {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

type quizStore struct {
	repo repository.QuizRepository
}

func (s *quizStore) List(ctx context.Context) ([]model.QuizQuestion, error) {
	return s.repo.List(ctx)
}

func (s *quizStore) Insert(ctx context.Context, q *model.QuizQuestion) error {
	return s.repo.Upsert(ctx, q)
}

func (s *quizStore) Update(ctx context.Context, q *model.QuizQuestion) error {
	return s.repo.Upsert(ctx, q)
}

func (s *quizStore) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
