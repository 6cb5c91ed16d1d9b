package dto

import "kizuna/internal/model"

// TeacherDTO is a teacher as shown on public pages.
type TeacherDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

// TeacherRefDTO is the teacher block embedded in a course card. It is always
// present; a missing teacher renders as "to be announced" with no photo.
type TeacherRefDTO struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Title    string `json:"title,omitempty"`
	ImageURL string `json:"image_url"`
}

func ToTeacherDTO(t model.Teacher) TeacherDTO {
	return TeacherDTO{
		ID:          t.ID,
		Name:        t.Name,
		Title:       str(t.Title),
		ImageURL:    t.ImageURL,
		Description: str(t.Description),
	}
}

func ToTeacherDTOs(teachers []model.Teacher) []TeacherDTO {
	out := make([]TeacherDTO, len(teachers))
	for i, t := range teachers {
		out[i] = ToTeacherDTO(t)
	}
	return out
}

func ToTeacherRef(t *model.Teacher) TeacherRefDTO {
	ref := TeacherRefDTO{Name: model.TeacherDisplayName(t)}
	if t != nil {
		ref.ID = t.ID
		ref.Title = str(t.Title)
		ref.ImageURL = t.ImageURL
	}
	return ref
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
