package sessionstore

import "errors"

var (
	// ErrStoreUnavailable возвращается при недоступности хранилища сессий
	ErrStoreUnavailable = errors.New("sessionstore: store unavailable")
)
