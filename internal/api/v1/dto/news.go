package dto

import (
	"time"

	"kizuna/internal/model"
)

type NewsDTO struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

func ToNewsDTO(n model.NewsItem) NewsDTO {
	return NewsDTO{
		ID:        n.ID,
		Slug:      n.Slug,
		Title:     n.Title,
		Content:   n.Content,
		Image:     str(n.Image),
		CreatedAt: n.CreatedAt,
	}
}

func ToNewsDTOs(items []model.NewsItem) []NewsDTO {
	out := make([]NewsDTO, len(items))
	for i, n := range items {
		out[i] = ToNewsDTO(n)
	}
	return out
}

// NewsDetailDTO is an article with the "more news" sidebar.
type NewsDetailDTO struct {
	Item NewsDTO   `json:"item"`
	More []NewsDTO `json:"more"`
}

// HomeDTO degrades per section: a failed section is empty and its error is
// reported under Errors.
type HomeDTO struct {
	Courses []CourseDTO       `json:"courses"`
	News    []NewsDTO         `json:"news"`
	Errors  map[string]string `json:"errors,omitempty"`
}
