package model

import "time"

type Level string

const (
	LevelBasic Level = "Basic"
	LevelN5    Level = "N5"
	LevelN4    Level = "N4"
	LevelN3    Level = "N3"
	LevelN2    Level = "N2"
	LevelN1    Level = "N1"

	// LevelAll is a filter value only; it is never stored.
	LevelAll Level = "All"

	DefaultLevel = LevelN5
)

// Levels lists the stored levels in display order.
var Levels = []Level{LevelBasic, LevelN5, LevelN4, LevelN3, LevelN2, LevelN1}

func (l Level) Valid() bool {
	for _, v := range Levels {
		if v == l {
			return true
		}
	}
	return false
}

type Format string

const (
	FormatOnSite Format = "On-site"
	FormatOnline Format = "Online"
	FormatHybrid Format = "Hybrid"
)

func (f Format) Valid() bool {
	return f == FormatOnSite || f == FormatOnline || f == FormatHybrid
}

// Course is a language course. Time is "HH:MM–HH:MM"; Days holds English
// weekday names.
type Course struct {
	ID         string    `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Level      Level     `db:"level" json:"level"`
	StartDate  string    `db:"start_date" json:"start_date"`
	TotalHours int       `db:"total_hours" json:"total_hours"`
	Price      float64   `db:"price" json:"price"`
	Days       []string  `db:"days" json:"days"`
	Time       string    `db:"time" json:"time"`
	Format     Format    `db:"format" json:"format"`
	TeacherID  *string   `db:"teacher_id" json:"teacher_id"`
	Href       string    `db:"href" json:"href"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	Teacher    *Teacher  `db:"-" json:"teacher"`
}
