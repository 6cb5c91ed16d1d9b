package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// QuizQuestion is the canonical quiz question. CorrectIndex is -1 when a
// legacy record carries no resolvable answer; such questions are shown but
// never scored.
type QuizQuestion struct {
	ID           string     `db:"id" json:"id"`
	Question     string     `db:"question" json:"question"`
	Options      []string   `db:"options" json:"options"`
	CorrectIndex int        `db:"correct_index" json:"correct_index"`
	Explanation  *string    `db:"explanation" json:"explanation"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	OrderIndex   int        `db:"order_index" json:"order_index"`
	CreatedAt    *time.Time `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// Scored reports whether the question has a known correct option.
func (q QuizQuestion) Scored() bool {
	return q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options)
}

var (
	correctIndexKeys  = []string{"correct_index", "correctIndex", "correctOptionIndex", "correct_option_index"}
	correctAnswerKeys = []string{"correct_answer", "correctAnswer", "correct_option", "correctOption", "answer"}
)

// UnmarshalJSON accepts the canonical shape and every legacy key variant.
func (q *QuizQuestion) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*q = NormalizeQuizQuestion(raw)
	return nil
}

// NormalizeQuizQuestion maps a loosely shaped record to the canonical form.
// The correct option is taken from the first numeric index key present,
// otherwise from the first answer-text key whose trimmed value matches an
// option.
func NormalizeQuizQuestion(raw map[string]any) QuizQuestion {
	q := QuizQuestion{
		ID:           stringValue(raw["id"]),
		Question:     stringValue(raw["question"]),
		Options:      []string{},
		CorrectIndex: -1,
		IsActive:     true,
	}

	if opts, ok := raw["options"].([]any); ok {
		for _, o := range opts {
			q.Options = append(q.Options, stringValue(o))
		}
	}

	for _, k := range correctIndexKeys {
		if n, ok := numberValue(raw[k]); ok {
			q.CorrectIndex = int(n)
			break
		}
	}
	if q.CorrectIndex < 0 {
		for _, k := range correctAnswerKeys {
			s, ok := raw[k].(string)
			if !ok {
				continue
			}
			if i := indexOfOption(q.Options, s); i >= 0 {
				q.CorrectIndex = i
				break
			}
		}
	}

	if s, ok := raw["explanation"].(string); ok && strings.TrimSpace(s) != "" {
		q.Explanation = &s
	}
	if v, ok := raw["is_active"]; ok && v != nil {
		b, isBool := v.(bool)
		q.IsActive = isBool && b
	}
	if n, ok := numberValue(raw["order_index"]); ok {
		q.OrderIndex = int(n)
	}
	q.CreatedAt = timeValue(raw["created_at"])
	q.UpdatedAt = timeValue(raw["updated_at"])
	return q
}

// ClampIndex limits i to the valid option range of n options.
func ClampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

func indexOfOption(options []string, answer string) int {
	answer = strings.TrimSpace(answer)
	for i, o := range options {
		if strings.TrimSpace(o) == answer {
			return i
		}
	}
	return -1
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprint(t)
	}
}

func numberValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0, false
		}
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	}
	return 0, false
}

func timeValue(v any) *time.Time {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
