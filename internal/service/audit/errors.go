package audit

import "errors"

var (
	// ErrInvalidEntry возвращается, когда у записи нет брони или действия
	ErrInvalidEntry = errors.New("audit: invalid entry")

	// ErrInternal возвращается при ошибках хранилища или экспорта
	ErrInternal = errors.New("audit: internal error")
)
