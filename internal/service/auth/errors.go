package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неизвестном пользователе или неверном пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountNotConfirmed возвращается, когда учетная запись еще не подтверждена владельцем
	ErrAccountNotConfirmed = errors.New("account not confirmed")

	// ErrUsernameTaken возвращается, когда имя пользователя уже занято
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
