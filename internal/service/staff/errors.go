package staff

import "errors"

var (
	// ErrGroomerNotFound возвращается, когда грумер не найден
	ErrGroomerNotFound = errors.New("groomer not found")

	// ErrAbsenceNotFound возвращается, когда заявка на отсутствие не найдена
	ErrAbsenceNotFound = errors.New("absence not found")

	// ErrAbsenceAlreadyDecided возвращается при повторном решении по заявке
	ErrAbsenceAlreadyDecided = errors.New("absence already decided")

	// ErrAbsenceAlreadyExists возвращается, когда на дату уже есть заявка
	ErrAbsenceAlreadyExists = errors.New("absence already requested for this date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
