// Package voiceparse turns a short Spanish dictation such as
// "Agendar a María el jueves a las 4 de la tarde para manicura"
// into a booking draft. The grammar is deliberately small; anything it
// does not recognize is left empty for the operator to fill in.
package voiceparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/types"
)

// Draft is what could be recognized. Unrecognized fields stay zero.
type Draft struct {
	Name      string
	Phone     string
	Date      *time.Time
	Time      *types.TimeString
	ServiceID *uuid.UUID
}

// Empty reports whether nothing useful was recognized.
// A phone alone is not enough to start a booking.
func (d Draft) Empty() bool {
	return d.Name == "" && d.Date == nil && d.Time == nil && d.ServiceID == nil
}

var (
	nameRe      = regexp.MustCompile(`(?i)(?:^|\s)(?:para|a)\s+(\p{L}+)(?:\s+(\p{L}+))?`)
	digitsRe    = regexp.MustCompile(`\d+`)
	tomorrowRe  = regexp.MustCompile(`(?:^|\s)ma[nñ]ana(?:\s|$|[,.])`)
	morningRe   = regexp.MustCompile(`de la ma[nñ]ana`)
	weekdayRe   = regexp.MustCompile(`(?:^|\s)(lunes|martes|miercoles|jueves|viernes|sabado|domingo)(?:\s|$|[,.])`)
	monthDateRe = regexp.MustCompile(`(?:^|\s)(\d{1,2})\s+de\s+(enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|setiembre|octubre|noviembre|diciembre)`)
	slashDateRe = regexp.MustCompile(`(?:^|\s)(\d{1,2})/(\d{1,2})(?:\s|$|[,.])`)
	timeRe      = regexp.MustCompile(`(?:^|\s)(?:a las|a la|las|la)\s+(\d{1,2})(?::(\d{2}))?\b(?:\s+y\s+(media|cuarto))?(?:\s+(am|pm|de la tarde|de la noche|de la ma[nñ]ana))?`)
)

var weekdays = map[string]time.Weekday{
	"domingo":   time.Sunday,
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miercoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sabado":    time.Saturday,
}

var months = map[string]time.Month{
	"enero":      time.January,
	"febrero":    time.February,
	"marzo":      time.March,
	"abril":      time.April,
	"mayo":       time.May,
	"junio":      time.June,
	"julio":      time.July,
	"agosto":     time.August,
	"septiembre": time.September,
	"setiembre":  time.September,
	"octubre":    time.October,
	"noviembre":  time.November,
	"diciembre":  time.December,
}

// Words that follow "a"/"para" but are never a customer name.
var notNames = map[string]bool{
	"el": true, "la": true, "las": true, "los": true, "lo": true, "de": true, "del": true,
	"a": true, "al": true, "para": true, "y": true, "con": true, "un": true, "una": true,
	"mañana": true, "manana": true, "hoy": true, "cita": true,
	"lunes": true, "martes": true, "miercoles": true, "jueves": true, "viernes": true,
	"sabado": true, "domingo": true, "tarde": true, "noche": true,
}

// Parse extracts a draft from text. now is the salon's current time; relative
// dates ("mañana", "el jueves") are resolved against its calendar date.
func Parse(text string, services []*domain.Service, now time.Time) Draft {
	normalized := normalize(text)
	today := domain.CivilDate(now)

	draft := Draft{
		Phone: parsePhone(normalized),
		Date:  parseDate(normalized, today),
		Time:  parseTime(normalized),
	}
	draft.ServiceID = parseService(normalized, services)
	draft.Name = parseName(text, services)

	return draft
}

func parseName(text string, services []*domain.Service) string {
	for _, m := range nameRe.FindAllStringSubmatch(text, -1) {
		first := normalize(m[1])
		if notNames[first] || isServiceWord(first, services) {
			continue
		}

		name := m[1]
		if second := normalize(m[2]); m[2] != "" && !notNames[second] && !isServiceWord(second, services) {
			name += " " + m[2]
		}
		return cases.Title(language.Spanish).String(name)
	}
	return ""
}

// parsePhone first standalone run of 9 or 10 digits
func parsePhone(text string) string {
	for _, run := range digitsRe.FindAllString(text, -1) {
		if len(run) == 9 || len(run) == 10 {
			return run
		}
	}
	return ""
}

func parseDate(text string, today time.Time) *time.Time {
	// "de la mañana" is a time of day, not tomorrow
	withoutMorning := morningRe.ReplaceAllString(text, " ")
	if tomorrowRe.MatchString(withoutMorning) {
		d := today.AddDate(0, 0, 1)
		return &d
	}

	if m := weekdayRe.FindStringSubmatch(text); m != nil {
		// next occurrence strictly after today
		days := (int(weekdays[m[1]]) - int(today.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		d := today.AddDate(0, 0, days)
		return &d
	}

	if m := monthDateRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		return upcomingDate(today, months[m[2]], day)
	}

	if m := slashDateRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return nil
		}
		return upcomingDate(today, time.Month(month), day)
	}

	return nil
}

// upcomingDate the given day this year, or next year if it already passed
func upcomingDate(today time.Time, month time.Month, day int) *time.Time {
	d, ok := calendarDate(today.Year(), month, day)
	if !ok {
		return nil
	}
	if d.Before(today) {
		if d, ok = calendarDate(today.Year()+1, month, day); !ok {
			return nil
		}
	}
	return &d
}

// calendarDate rejects days that do not exist in the month (31/4, 30/2)
func calendarDate(year int, month time.Month, day int) (time.Time, bool) {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return d, day >= 1 && d.Month() == month
}

func parseTime(text string) *types.TimeString {
	m := timeRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	switch m[3] {
	case "media":
		minutes += 30
	case "cuarto":
		minutes += 15
	}

	switch period := m[4]; {
	case period == "pm" || strings.Contains(period, "tarde") || strings.Contains(period, "noche"):
		if hours < 12 {
			hours += 12
		}
	case period == "am" || strings.Contains(period, "ana"):
		if hours == 12 {
			hours = 0
		}
	default:
		// bare 1..11 means afternoon
		if hours >= 1 && hours <= 11 {
			hours += 12
		}
	}

	if hours > 23 || minutes > 59 {
		return nil
	}
	t, err := types.FromMinutes(hours*60 + minutes)
	if err != nil {
		return nil
	}
	return &t
}

// keywordFamilies extra words that point to a service whose name contains the key
var keywordFamilies = map[string][]string{
	"corte": {"cortar", "pelo", "cabello", "peluqueria"},
	"uña":   {"uñas", "manicura", "manicure", "pedicura"},
	"depil": {"depilacion", "depilar", "cera"},
	"masa":  {"masaje", "relajante", "terapia"},
}

func parseService(text string, services []*domain.Service) *uuid.UUID {
	// "para <service>" or "de <service>" wins over loose keywords
	for _, s := range services {
		name := normalize(s.Name)
		if containsPhrase(text, "para "+name) || containsPhrase(text, "de "+name) {
			id := s.ID
			return &id
		}
	}

	tokens := words(text)
	for _, s := range services {
		name := normalize(s.Name)
		if containsPhrase(text, name) {
			id := s.ID
			return &id
		}
		for key, family := range keywordFamilies {
			if !strings.Contains(name, key) {
				continue
			}
			for _, kw := range family {
				if containsWord(tokens, kw) {
					id := s.ID
					return &id
				}
			}
		}
	}

	return nil
}

func isServiceWord(word string, services []*domain.Service) bool {
	for _, s := range services {
		if containsPhrase(normalize(s.Name), word) {
			return true
		}
	}
	for _, family := range keywordFamilies {
		for _, kw := range family {
			if kw == word {
				return true
			}
		}
	}
	return false
}
