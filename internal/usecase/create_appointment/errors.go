package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrOutsideBookingWindow возвращается, когда дата вне окна записи (политика и горизонт)
	ErrOutsideBookingWindow = errors.New("create_appointment: date is outside the booking window")

	// ErrSlotNotAvailable возвращается, когда выбранное время занято, заблокировано или вне рабочих часов
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
