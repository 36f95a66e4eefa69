package profiles

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = errors.New("profiles: profile not found")

	// ErrUnauthenticated возвращается, когда нет сессии
	ErrUnauthenticated = errors.New("profiles: authentication required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("profiles: invalid input data")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("profiles: store error")
)
