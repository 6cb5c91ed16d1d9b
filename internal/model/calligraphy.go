package model

// CalligraphyCourse is a calligraphy workshop. ScheduleLine is derived from
// Bulgarian day names and a time range; Description is a list of paragraphs.
type CalligraphyCourse struct {
	ID           string   `db:"id" json:"id"`
	Title        string   `db:"title" json:"title"`
	Date         string   `db:"date" json:"date"`
	ScheduleLine string   `db:"schedule_line" json:"schedule_line"`
	ClassesCount int      `db:"classes_count" json:"classes_count"`
	Price        *float64 `db:"price" json:"price"`
	TeacherID    *string  `db:"teacher_id" json:"teacher_id"`
	Description  []string `db:"description" json:"description"`
	Note         *string  `db:"note" json:"note"`
	Href         string   `db:"href" json:"href"`
	Teacher      *Teacher `db:"-" json:"teacher"`
}
