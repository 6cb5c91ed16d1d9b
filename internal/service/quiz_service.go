package service

import (
	"context"
	"fmt"

	"kizuna/internal/model"
	"kizuna/internal/repository"
)

// QuizResult is a scored attempt. Scorable is false when some question has
// no resolvable answer; such questions still count towards Total.
type QuizResult struct {
	Score    int    `json:"score"`
	Total    int    `json:"total"`
	Answered int    `json:"answered"`
	Scorable bool   `json:"scorable"`
	Title    string `json:"title"`
	Text     string `json:"text"`
}

type QuizService interface {
	Active(ctx context.Context) ([]model.QuizQuestion, error)
	// Score grades answers keyed by question id against the active questions.
	Score(ctx context.Context, answers map[string]int) (*QuizResult, error)
}

type quizService struct {
	repo repository.QuizRepository
}

func NewQuizService(repo repository.QuizRepository) QuizService {
	return &quizService{repo: repo}
}

func (s *quizService) Active(ctx context.Context) ([]model.QuizQuestion, error) {
	qs, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active quiz questions: %w", err)
	}
	return qs, nil
}

func (s *quizService) Score(ctx context.Context, answers map[string]int) (*QuizResult, error) {
	qs, err := s.Active(ctx)
	if err != nil {
		return nil, err
	}
	return Grade(qs, answers), nil
}

// Grade scores answers against questions.
func Grade(questions []model.QuizQuestion, answers map[string]int) *QuizResult {
	res := &QuizResult{Total: len(questions), Scorable: true}
	for _, q := range questions {
		picked, answered := answers[q.ID]
		if answered {
			res.Answered++
		}
		if !q.Scored() {
			res.Scorable = false
			continue
		}
		if answered && picked == q.CorrectIndex {
			res.Score++
		}
	}
	res.Title, res.Text = ResultMessage(res.Score, res.Total)
	return res
}

// ResultMessage is the title and text shown after a finished test.
func ResultMessage(score, total int) (title, text string) {
	switch {
	case total <= 0:
		return "Готово!", "Благодарим ти!"
	case score >= total:
		return "Перфектно! 🌸", "5/5 – изглежда вече имаш японския в кръвта! Разгледай курсовете и започвай!"
	case score >= total-1:
		return "Супер резултат! ⭐", "Много близо до перфектното! С още малко практика ще си топ."
	case score >= 3:
		return "Браво! 🙌", "Имаш добра основа! Ако продължиш – ще напреднеш много бързо."
	default:
		return "Добър старт 🙂", "Не се притеснявай – всички започват отнякъде. Разгледай курсовете и ще стане лесно!"
	}
}
