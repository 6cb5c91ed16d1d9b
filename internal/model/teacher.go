package model

import "time"

// Teacher is a row of the teachers table. Image holds the stored reference
// (bare object name, bucket-relative path or legacy public URL); ImageURL is
// the short-lived signed URL resolved for display and is never persisted.
type Teacher struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Title       *string   `db:"title" json:"title"`
	Image       string    `db:"image" json:"image"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	ImageURL    string    `db:"-" json:"image_url"`
}

// UnknownTeacherName is shown when a course has no teacher or references a
// deleted one.
const UnknownTeacherName = "Предстои да бъде обявен"

// TeacherDisplayName returns the name to render for a possibly missing teacher.
func TeacherDisplayName(t *Teacher) string {
	if t == nil || t.Name == "" {
		return UnknownTeacherName
	}
	return t.Name
}
