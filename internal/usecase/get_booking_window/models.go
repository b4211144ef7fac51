package get_booking_window

import "time"

// Response окно записи для клиента
type Response struct {
	SameDayPolicy  string      // Политика записи на сегодня
	MaxMonthsAhead int         // Горизонт записи в месяцах
	EarliestDate   time.Time   // Первая доступная дата
	LatestDate     time.Time   // Последняя доступная дата
	OpenDates      []time.Time // Даты с рабочими часами и без блокировки на весь день
}
