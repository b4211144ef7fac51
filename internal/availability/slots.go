package availability

import (
	"sort"
	"time"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/types"
)

// Interval полуоткрытый интервал [Start, End) в минутах от полуночи
type Interval struct {
	Start int
	End   int
}

// Overlaps пересекаются ли полуоткрытые интервалы.
// Граничащие интервалы (10:00-10:30 и 10:30-11:00) не пересекаются.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Input всё, что нужно для расчёта сетки слотов на одну дату
type Input struct {
	Date time.Time // календарная дата запроса
	Now  time.Time // текущее время в часовом поясе салона

	Hours     []*domain.BusinessHour // блоки работы на день недели даты
	Blocks    []*domain.BlockedSlot  // блокировки на дату
	Occupying []*domain.Appointment  // записи, которые занимают время

	DurationMinutes         int // длительность выбранной услуги
	StepMinutes             int // шаг сетки
	FallbackDurationMinutes int // длительность записи, если её услуга удалена
}

// Compute строит список слотов на дату.
//
// Слоты генерируются для каждого блока рабочих часов с шагом StepMinutes,
// пока слот целиком помещается в блок. Слот занят, если пересекается с любой
// занимающей записью или его начало попадает в частичную блокировку.
// Для сегодняшней даты слоты, начало которых уже прошло, отбрасываются.
func Compute(in Input) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)

	if in.DurationMinutes <= 0 || in.StepMinutes <= 0 || len(in.Hours) == 0 {
		return slots
	}
	if HasWholeDayBlock(in.Blocks) {
		return slots
	}

	busy := BusyIntervals(in.Occupying, in.FallbackDurationMinutes)
	today := domain.SameDay(in.Date, in.Now)
	nowSeconds := in.Now.Hour()*3600 + in.Now.Minute()*60 + in.Now.Second()

	for _, block := range SortHours(in.Hours) {
		start := block.StartTime.Minutes()
		end := block.EndTime.Minutes()
		if start < 0 || end < 0 {
			continue
		}

		for cursor := start; cursor+in.DurationMinutes <= end; cursor += in.StepMinutes {
			// Сегодня не показываем слоты, которые уже начались
			if today && cursor*60 < nowSeconds {
				continue
			}

			slotTime, err := types.FromMinutes(cursor)
			if err != nil {
				break
			}

			slot := Interval{Start: cursor, End: cursor + in.DurationMinutes}
			slots = append(slots, domain.TimeSlot{
				Time:      slotTime,
				Available: !overlapsAny(slot, busy) && !IsBlocked(in.Blocks, slotTime),
			})
		}
	}

	return slots
}

// SlotFree проверяет конкретное время начала: оно должно лежать на сетке рабочего блока,
// услуга должна помещаться в блок, время не занято и не заблокировано.
// Используется при создании записи внутри транзакции.
func SlotFree(in Input, start types.TimeString) bool {
	for _, slot := range Compute(in) {
		if slot.Time.Equal(start) {
			return slot.Available
		}
	}
	return false
}

// Conflicts возвращает записи, пересекающиеся с интервалом [start, start+duration)
func Conflicts(start types.TimeString, durationMinutes int, appointments []*domain.Appointment, fallbackDurationMinutes int) []*domain.Appointment {
	target := Interval{Start: start.Minutes(), End: start.Minutes() + durationMinutes}

	result := make([]*domain.Appointment, 0)
	for _, a := range appointments {
		if a.Time.Minutes() < 0 {
			continue
		}
		if target.Overlaps(appointmentInterval(a, fallbackDurationMinutes)) {
			result = append(result, a)
		}
	}
	return result
}

// FitsHours помещается ли [start, start+duration) целиком в один из блоков
func FitsHours(hours []*domain.BusinessHour, start types.TimeString, durationMinutes int) bool {
	s := start.Minutes()
	if s < 0 {
		return false
	}
	for _, h := range hours {
		if s >= h.StartTime.Minutes() && s+durationMinutes <= h.EndTime.Minutes() {
			return true
		}
	}
	return false
}

// HasWholeDayBlock есть ли блокировка на весь день
func HasWholeDayBlock(blocks []*domain.BlockedSlot) bool {
	for _, b := range blocks {
		if b.IsWholeDay() {
			return true
		}
	}
	return false
}

// IsBlocked попадает ли начало слота в частичную блокировку
func IsBlocked(blocks []*domain.BlockedSlot, start types.TimeString) bool {
	for _, b := range blocks {
		if b.Covers(start) {
			return true
		}
	}
	return false
}

// BusyIntervals переводит записи в интервалы занятости
func BusyIntervals(appointments []*domain.Appointment, fallbackDurationMinutes int) []Interval {
	busy := make([]Interval, 0, len(appointments))
	for _, a := range appointments {
		if a.Time.Minutes() < 0 {
			continue
		}
		busy = append(busy, appointmentInterval(a, fallbackDurationMinutes))
	}
	return busy
}

// SortHours копия блоков, упорядоченная по времени начала
func SortHours(hours []*domain.BusinessHour) []*domain.BusinessHour {
	sorted := make([]*domain.BusinessHour, len(hours))
	copy(sorted, hours)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.IsBefore(sorted[j].StartTime)
	})
	return sorted
}

func appointmentInterval(a *domain.Appointment, fallbackDurationMinutes int) Interval {
	start := a.Time.Minutes()
	return Interval{Start: start, End: start + a.DurationOr(fallbackDurationMinutes)}
}

func overlapsAny(slot Interval, busy []Interval) bool {
	for _, b := range busy {
		if slot.Overlaps(b) {
			return true
		}
	}
	return false
}
