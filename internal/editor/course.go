package editor

import (
	"strings"

	"kizuna/internal/model"
	"kizuna/internal/repository"
	"kizuna/internal/schedule"

	"github.com/rs/zerolog"
)

const CourseDeleteConfirm = "Да изтрием ли този курс?"

// CourseTimeOptions are the start/end choices offered for language courses.
var CourseTimeOptions = schedule.TimeOptions(7, 22, 30)

type CourseDraft struct {
	ID         string       `json:"id,omitempty"`
	Title      string       `json:"title"`
	Level      model.Level  `json:"level"`
	StartDate  string       `json:"start_date"`
	TotalHours int          `json:"total_hours"`
	Price      *float64     `json:"price"`
	Days       []string     `json:"days"`
	TimeStart  string       `json:"time_start"`
	TimeEnd    string       `json:"time_end"`
	Format     model.Format `json:"format"`
	TeacherID  string       `json:"teacher_id"`
}

type CourseEditor = Editor[model.Course, CourseDraft]

func NewCourseEditor(repo repository.CourseRepository, logger zerolog.Logger) *CourseEditor {
	return New("courses", Store[model.Course](repo), Definition[model.Course, CourseDraft]{
		Fill:     fillCourse,
		Validate: validateCourse,
		Row:      courseRow,
		DraftID:  func(d CourseDraft) string { return d.ID },
		RowID:    func(c model.Course) string { return c.ID },
	}, logger)
}

func fillCourse(c model.Course) CourseDraft {
	start, end := schedule.SplitRange(c.Time)
	price := c.Price
	level := c.Level
	if level == "" {
		level = model.DefaultLevel
	}
	format := c.Format
	if format == "" {
		format = model.FormatOnSite
	}
	teacherID := ""
	if c.TeacherID != nil {
		teacherID = *c.TeacherID
	}
	return CourseDraft{
		ID:         c.ID,
		Title:      c.Title,
		Level:      level,
		StartDate:  c.StartDate,
		TotalHours: c.TotalHours,
		Price:      &price,
		Days:       schedule.English.FilterDays(c.Days),
		TimeStart:  start,
		TimeEnd:    end,
		Format:     format,
		TeacherID:  teacherID,
	}
}

func validateCourse(d CourseDraft) error {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return invalid("Моля, въведете име на курса.")
	case !d.Level.Valid():
		return invalid("Моля, изберете ниво.")
	case d.StartDate == "":
		return invalid("Моля, изберете начална дата.")
	case !d.Format.Valid():
		return invalid("Моля, изберете формат.")
	case d.TeacherID == "":
		return invalid("Моля, изберете преподавател.")
	case d.TotalHours <= 0:
		return invalid("Часовете трябва да са повече от 0.")
	case d.Price == nil:
		return invalid("Моля, въведете цена.")
	case *d.Price < 0:
		return invalid("Цената не може да е отрицателна.")
	case len(schedule.English.FilterDays(d.Days)) == 0:
		return invalid("Моля, изберете поне един ден.")
	case d.TimeStart == "" || d.TimeEnd == "":
		return invalid("Моля, изберете начален и краен час.")
	}
	start, okStart := schedule.Clock(d.TimeStart)
	end, okEnd := schedule.Clock(d.TimeEnd)
	switch {
	case !okStart || !okEnd:
		return invalid("Часът трябва да е във формат ЧЧ:ММ.")
	case end <= start:
		return invalid("Крайният час трябва да е след началния.")
	}
	return nil
}

func courseRow(d CourseDraft) model.Course {
	teacherID := d.TeacherID
	return model.Course{
		ID:         d.ID,
		Title:      strings.TrimSpace(d.Title),
		Level:      d.Level,
		StartDate:  d.StartDate,
		TotalHours: d.TotalHours,
		Price:      *d.Price,
		Days:       schedule.English.FilterDays(d.Days),
		Time:       schedule.JoinRange(schedule.PadClock(d.TimeStart), schedule.PadClock(d.TimeEnd)),
		Format:     d.Format,
		TeacherID:  &teacherID,
		Href:       "/courses",
	}
}
