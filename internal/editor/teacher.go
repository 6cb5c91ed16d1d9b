package editor

import (
	"strings"

	"kizuna/internal/model"
	"kizuna/internal/repository"
	"kizuna/internal/storage"

	"github.com/rs/zerolog"
)

const TeacherDeleteConfirm = "Да изтрием ли този преподавател? Курсовете, които го използват, ще станат „TBA“."

type TeacherDraft struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type TeacherEditor = Editor[model.Teacher, TeacherDraft]

// NewTeacherEditor stores photos as bare object names of bucket.
func NewTeacherEditor(repo repository.TeacherRepository, bucket string, logger zerolog.Logger) *TeacherEditor {
	return New("teachers", Store[model.Teacher](repo), Definition[model.Teacher, TeacherDraft]{
		Fill:     fillTeacher,
		Validate: func(d TeacherDraft) error { return validateTeacher(bucket, d) },
		Row:      func(d TeacherDraft) model.Teacher { return teacherRow(bucket, d) },
		DraftID:  func(d TeacherDraft) string { return d.ID },
		RowID:    func(t model.Teacher) string { return t.ID },
	}, logger)
}

func fillTeacher(t model.Teacher) TeacherDraft {
	return TeacherDraft{
		ID:          t.ID,
		Name:        t.Name,
		Title:       deref(t.Title),
		Image:       t.Image,
		Description: deref(t.Description),
	}
}

func validateTeacher(bucket string, d TeacherDraft) error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return invalid("Името е задължително.")
	case storage.Normalize(bucket, d.Image) == "":
		return invalid("Снимката е задължителна. Качете снимка.")
	}
	return nil
}

func teacherRow(bucket string, d TeacherDraft) model.Teacher {
	return model.Teacher{
		ID:          d.ID,
		Name:        strings.TrimSpace(d.Name),
		Title:       optional(d.Title),
		Image:       storage.Normalize(bucket, d.Image),
		Description: optional(d.Description),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optional maps blank text to NULL.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
