package model

import "encoding/json"

const CoursesPageSlug = "courses"

// DefaultCoursesPage is served when page_configs has no "courses" row.
var DefaultCoursesPage = json.RawMessage(`{
  "hero": {
    "title": "Курсове по японски език",
    "subtitle": "Учи японски с преподаватели, които обичат Япония. Малки групи, реална практика и подготовка за JLPT."
  },
  "filters": {
    "all_label": "Всички",
    "levels": ["Basic", "N5", "N4", "N3", "N2", "N1"]
  },
  "empty_state": "В момента няма курсове за избраното ниво.",
  "cta": {
    "title": "Не знаеш от кое ниво да започнеш?",
    "text": "Направи краткия тест или ни пиши и ще ти помогнем.",
    "href": "/contact"
  }
}`)

// DefaultPageConfig returns the built-in document for slug, or nil.
func DefaultPageConfig(slug string) json.RawMessage {
	if slug == CoursesPageSlug {
		return DefaultCoursesPage
	}
	return nil
}
