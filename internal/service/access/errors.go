package access

import "errors"

var (
	// ErrGateUnavailable возвращается, когда флаг администратора не удалось прочитать
	ErrGateUnavailable = errors.New("access: admin gate unavailable")
)
