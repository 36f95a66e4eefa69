package emailjs

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("emailjs client: internal error")

	// ErrInvalidResponse возвращается при неуспешном ответе сервиса
	ErrInvalidResponse = errors.New("emailjs client: invalid response")
)
