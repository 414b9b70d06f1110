package conduct

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("conduct: invalid input data")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("conduct: internal error")
)
