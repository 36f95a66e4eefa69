package identity

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("identity: invalid input data")

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("identity: email already registered")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("identity: invalid credentials")

	// ErrNoSession возвращается для отсутствующего, просроченного или отозванного токена
	ErrNoSession = errors.New("identity: no active session")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("identity: store error")
)
