package dto

import "kizuna/internal/model"

// QuizQuestionDTO hides the answer; scoring happens server side.
type QuizQuestionDTO struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

func ToQuizQuestionDTOs(questions []model.QuizQuestion) []QuizQuestionDTO {
	out := make([]QuizQuestionDTO, len(questions))
	for i, q := range questions {
		opts := q.Options
		if opts == nil {
			opts = []string{}
		}
		out[i] = QuizQuestionDTO{ID: q.ID, Question: q.Question, Options: opts}
	}
	return out
}

// QuizScoreRequestDTO maps question id to the chosen option index.
type QuizScoreRequestDTO struct {
	Answers map[string]int `json:"answers" validate:"required"`
}
