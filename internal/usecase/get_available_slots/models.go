package get_available_slots

import (
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	CustomerID string    // для логирования, не влияет на результат
	Date       time.Time // Дата (без времени)
}

// Response модель ответа со списком слотов дня
type Response struct {
	Date         time.Time
	Closed       bool   // день закрыт администратором
	ClosedReason string
	Slots        []Slot
}

// Slot модель временного слота
type Slot struct {
	Slot              domain.TimeSlot
	StartTime         string // "09:00"
	EndTime           string // "12:00"
	AvailableGroomers int    // грумеры, которые могут взять слот
	TotalGroomers     int    // активные грумеры
	Bookable          bool
	Reason            string // почему слот недоступен
}
