package create_booking

import "errors"

var (
	// ErrUnauthenticated возвращается, когда бронирование создается без сессии
	ErrUnauthenticated = errors.New("create_booking: unauthenticated")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomNotAvailable возвращается, когда на даты уже есть активное бронирование
	ErrRoomNotAvailable = errors.New("create_booking: room is not available for these dates")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("create_booking: store error")
)
