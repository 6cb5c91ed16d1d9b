package dto

import (
	"kizuna/internal/model"
	"kizuna/internal/schedule"
)

// CourseDTO is a language course card.
type CourseDTO struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Level      model.Level   `json:"level"`
	StartDate  string        `json:"start_date"`
	TotalHours int           `json:"total_hours"`
	Price      float64       `json:"price"`
	Days       []string      `json:"days"`
	Time       string        `json:"time"`
	Schedule   string        `json:"schedule"`
	Format     model.Format  `json:"format"`
	Href       string        `json:"href"`
	Teacher    TeacherRefDTO `json:"teacher"`
}

func ToCourseDTOs(courses []model.Course) []CourseDTO {
	out := make([]CourseDTO, len(courses))
	for i, c := range courses {
		days := c.Days
		if days == nil {
			days = []string{}
		}
		start, end := schedule.SplitRange(c.Time)
		out[i] = CourseDTO{
			ID:         c.ID,
			Title:      c.Title,
			Level:      c.Level,
			StartDate:  c.StartDate,
			TotalHours: c.TotalHours,
			Price:      c.Price,
			Days:       days,
			Time:       c.Time,
			Schedule:   schedule.English.Build(days, start, end),
			Format:     c.Format,
			Href:       c.Href,
			Teacher:    ToTeacherRef(c.Teacher),
		}
	}
	return out
}

// CoursesPageDTO is the courses page: filtered list plus its editable copy.
type CoursesPageDTO struct {
	Level   model.Level   `json:"level"`
	Levels  []model.Level `json:"levels"`
	Courses []CourseDTO   `json:"courses"`
	Page    any           `json:"page"`
}
