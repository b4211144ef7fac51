package hours

import "errors"

var (
	// ErrBusinessHourNotFound возвращается, когда блок рабочих часов не найден
	ErrBusinessHourNotFound = errors.New("business hour not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrOverlap возвращается, когда блок пересекается с другим блоком того же дня
	ErrOverlap = errors.New("business hour overlaps another block on the same day")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
