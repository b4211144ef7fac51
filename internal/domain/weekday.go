package domain

import "time"

// DayIndex maps a date to the stored day_of_week convention: 0 = Monday ... 6 = Sunday.
func DayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// DayNames are the labels shown in the admin schedule, indexed by DayIndex.
var DayNames = [7]string{
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
	"Domingo",
}

// ValidDayIndex reports whether d is within 0..6.
func ValidDayIndex(d int) bool {
	return d >= 0 && d <= 6
}

// DateOnly drops the clock part, keeping the location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether both instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// CivilDate returns t's calendar date at UTC midnight, so dates taken from
// different locations compare by day.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
