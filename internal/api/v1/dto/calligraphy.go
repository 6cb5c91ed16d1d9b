package dto

import "kizuna/internal/model"

type CalligraphyDTO struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Date         string        `json:"date"`
	ScheduleLine string        `json:"schedule_line"`
	ClassesCount int           `json:"classes_count"`
	Price        *float64      `json:"price"`
	Description  []string      `json:"description"`
	Note         *string       `json:"note"`
	Href         string        `json:"href"`
	Teacher      TeacherRefDTO `json:"teacher"`
}

func ToCalligraphyDTOs(courses []model.CalligraphyCourse) []CalligraphyDTO {
	out := make([]CalligraphyDTO, len(courses))
	for i, c := range courses {
		desc := c.Description
		if desc == nil {
			desc = []string{}
		}
		out[i] = CalligraphyDTO{
			ID:           c.ID,
			Title:        c.Title,
			Date:         c.Date,
			ScheduleLine: c.ScheduleLine,
			ClassesCount: c.ClassesCount,
			Price:        c.Price,
			Description:  desc,
			Note:         c.Note,
			Href:         c.Href,
			Teacher:      ToTeacherRef(c.Teacher),
		}
	}
	return out
}
