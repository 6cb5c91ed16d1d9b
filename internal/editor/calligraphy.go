package editor

import (
	"strings"

	"kizuna/internal/model"
	"kizuna/internal/repository"
	"kizuna/internal/schedule"

	"github.com/rs/zerolog"
)

const CalligraphyDeleteConfirm = "Да изтрием ли този курс?"

// CalligraphyTimeOptions covers the whole day in five-minute steps.
var CalligraphyTimeOptions = schedule.DayTimeOptions(5)

type CalligraphyDraft struct {
	ID              string   `json:"id,omitempty"`
	Title           string   `json:"title"`
	Date            string   `json:"date"`
	Days            []string `json:"days"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	Price           float64  `json:"price"`
	TeacherID       string   `json:"teacher_id"`
	DescriptionText string   `json:"description_text"`
}

type CalligraphyEditor = Editor[model.CalligraphyCourse, CalligraphyDraft]

func NewCalligraphyEditor(repo repository.CalligraphyRepository, logger zerolog.Logger) *CalligraphyEditor {
	return New("calligraphy", Store[model.CalligraphyCourse](repo), Definition[model.CalligraphyCourse, CalligraphyDraft]{
		Fill:     fillCalligraphy,
		Validate: validateCalligraphy,
		Row:      calligraphyRow,
		DraftID:  func(d CalligraphyDraft) string { return d.ID },
		RowID:    func(c model.CalligraphyCourse) string { return c.ID },
	}, logger)
}

func fillCalligraphy(c model.CalligraphyCourse) CalligraphyDraft {
	parsed := schedule.Bulgarian.Parse(c.ScheduleLine)
	d := CalligraphyDraft{
		ID:              c.ID,
		Title:           c.Title,
		Date:            c.Date,
		Days:            parsed.Days,
		StartTime:       parsed.Start,
		EndTime:         parsed.End,
		DescriptionText: strings.Join(c.Description, "\n\n"),
	}
	if c.Price != nil {
		d.Price = *c.Price
	}
	if c.TeacherID != nil {
		d.TeacherID = *c.TeacherID
	}
	return d
}

func validateCalligraphy(d CalligraphyDraft) error {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return invalid("Моля, въведете заглавие.")
	case d.Date == "":
		return invalid("Моля, изберете дата.")
	case d.TeacherID == "":
		return invalid("Моля, изберете преподавател.")
	case len(d.Days) == 0:
		return invalid("Моля, изберете поне един ден.")
	case d.StartTime == "":
		return invalid("Моля, изберете начален час.")
	case d.EndTime == "":
		return invalid("Моля, изберете краен час.")
	case d.Price <= 0:
		return invalid("Моля, въведете цена (по-голяма от 0).")
	case strings.TrimSpace(d.DescriptionText) == "":
		return invalid("Моля, добавете описание (поне 1 абзац).")
	}
	return nil
}

// calligraphyRow derives the schedule line and fixes the columns the page
// does not let admins edit.
func calligraphyRow(d CalligraphyDraft) model.CalligraphyCourse {
	price := d.Price
	teacherID := d.TeacherID
	return model.CalligraphyCourse{
		ID:           d.ID,
		Title:        strings.TrimSpace(d.Title),
		Date:         d.Date,
		ScheduleLine: schedule.Bulgarian.Build(d.Days, d.StartTime, d.EndTime),
		ClassesCount: 1,
		Price:        &price,
		TeacherID:    &teacherID,
		Description:  Paragraphs(d.DescriptionText),
		Note:         nil,
		Href:         "/contact",
	}
}

// Paragraphs splits text into trimmed, non-empty lines.
func Paragraphs(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
