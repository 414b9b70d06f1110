package booking

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrInvalidStatus возвращается, когда сохранённый статус не распознан
	ErrInvalidStatus = errors.New("booking.repository: invalid booking status")

	// ErrEncode возвращается при ошибке сериализации JSONB-колонок
	ErrEncode = errors.New("booking.repository: failed to encode json column")
)
