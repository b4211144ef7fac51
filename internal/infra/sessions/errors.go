package sessions

import "errors"

var (
	// ErrEmptyTokenID возвращается, когда у токена нет jti
	ErrEmptyTokenID = errors.New("sessions: empty token id")

	// ErrStore возвращается при ошибке хранилища отозванных токенов
	ErrStore = errors.New("sessions: store error")
)
