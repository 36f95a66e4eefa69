package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных датах
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("check_availability: room not found")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("check_availability: store error")
)
