package conduct

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("conduct.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("conduct.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("conduct.repository: failed to scan row")

	// ErrDecode возвращается, когда история предупреждений не читается
	ErrDecode = errors.New("conduct.repository: failed to decode warnings")
)
