package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("rooms: room not found")

	// ErrUnauthenticated возвращается, когда нет сессии
	ErrUnauthenticated = errors.New("rooms: authentication required")

	// ErrAccessDenied возвращается, когда у пользователя нет прав администратора
	ErrAccessDenied = errors.New("rooms: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("rooms: invalid input data")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("rooms: store error")
)
