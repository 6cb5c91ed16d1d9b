// Package schedule converts between a structured day/time selection and the
// single-line schedule text shown on course cards.
package schedule

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// RangeSeparator joins the start and end of a time range ("18:00–20:00").
const RangeSeparator = "–"

var timeRangePattern = regexp.MustCompile(`(\d{1,2}:\d{2})\s*[–-]\s*(\d{1,2}:\d{2})`)

// Codec builds and parses schedule lines against a canonical weekday list.
// The order of Days is the order Parse reports found days in.
type Codec struct {
	Days []string
}

var (
	// English is used by language courses, which store day names in English.
	English = Codec{Days: []string{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
	}}

	// Bulgarian is used by calligraphy courses, whose schedule line is shown as is.
	Bulgarian = Codec{Days: []string{
		"Понеделник", "Вторник", "Сряда", "Четвъртък", "Петък", "Събота", "Неделя",
	}}
)

// Parsed is the structured form recovered from a schedule line.
type Parsed struct {
	Days  []string `json:"days"`
	Start string   `json:"start_time"`
	End   string   `json:"end_time"`
}

// Build joins days with ", " and appends "start–end", or start alone when
// there is no end. It returns "" for no days and no times.
func (c Codec) Build(days []string, start, end string) string {
	daysPart := strings.Join(days, ", ")

	timePart := ""
	switch {
	case start != "" && end != "":
		timePart = start + RangeSeparator + end
	case start != "":
		timePart = start
	}

	if timePart == "" {
		return strings.TrimSpace(daysPart)
	}
	return strings.TrimSpace(daysPart + " " + timePart)
}

// Parse recovers days by substring containment, in canonical order, and the
// first "H:MM–H:MM" range in the line. It never fails: missing parts come back
// empty.
func (c Codec) Parse(line string) Parsed {
	out := Parsed{Days: []string{}}
	for _, d := range c.Days {
		if strings.Contains(line, d) {
			out.Days = append(out.Days, d)
		}
	}

	if m := timeRangePattern.FindStringSubmatch(line); m != nil {
		out.Start, out.End = m[1], m[2]
	}
	return out
}

// FilterDays keeps the values that are canonical day names, in input order.
func (c Codec) FilterDays(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if c.IsDay(v) {
			out = append(out, v)
		}
	}
	return out
}

// IsDay reports whether v is one of the canonical day names.
func (c Codec) IsDay(v string) bool {
	for _, d := range c.Days {
		if d == v {
			return true
		}
	}
	return false
}

// JoinRange formats the course time column.
func JoinRange(start, end string) string {
	return start + RangeSeparator + end
}

// SplitRange is the reverse of JoinRange. A hyphen is accepted in place of the
// en dash; a value without a separator comes back as start only.
func SplitRange(s string) (start, end string) {
	normalized := strings.Replace(strings.TrimSpace(s), "-", RangeSeparator, 1)
	parts := strings.SplitN(normalized, RangeSeparator, 2)
	start = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		end = strings.TrimSpace(parts[1])
	}
	return start, end
}

// Clock parses "H:MM" or "HH:MM" into minutes after midnight.
func Clock(s string) (int, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// PadClock rewrites "9:00" as "09:00". Values Clock rejects are returned as is.
func PadClock(s string) string {
	m, ok := Clock(s)
	if !ok {
		return s
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// TimeOptions lists "HH:MM" labels from fromHour:00 to toHour:00 inclusive.
func TimeOptions(fromHour, toHour, stepMinutes int) []string {
	if stepMinutes <= 0 {
		stepMinutes = 30
	}
	var out []string
	for h := fromHour; h <= toHour; h++ {
		for m := 0; m < 60; m += stepMinutes {
			if h == toHour && m > 0 {
				break
			}
			out = append(out, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return out
}

// DayTimeOptions lists every "HH:MM" label of a day, 00:00 to the last step
// before midnight.
func DayTimeOptions(stepMinutes int) []string {
	opts := TimeOptions(0, 24, stepMinutes)
	return opts[:len(opts)-1]
}
