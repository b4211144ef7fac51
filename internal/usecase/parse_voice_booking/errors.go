package parse_voice_booking

import "errors"

var (
	// ErrNothingRecognized возвращается, когда в тексте не найдено ни имени, ни даты, ни времени, ни услуги
	ErrNothingRecognized = errors.New("parse_voice_booking: nothing recognized")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("parse_voice_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("parse_voice_booking: internal error")
)
