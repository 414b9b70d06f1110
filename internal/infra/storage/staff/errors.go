package staff

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("staff.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("staff.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("staff.repository: failed to scan row")

	// ErrInvalidMaxDailyBookings возвращается при отрицательном лимите бронирований
	ErrInvalidMaxDailyBookings = errors.New("staff.repository: invalid max daily bookings")
)
