package lifecycle

import "errors"

var (
	// ErrAccessDenied возвращается, когда клиент обращается к чужому бронированию
	ErrAccessDenied = errors.New("lifecycle: access denied")

	// ErrBlackoutNotFound возвращается при открытии дня, который не был закрыт
	ErrBlackoutNotFound = errors.New("lifecycle: blackout not found")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("lifecycle: internal error")
)
