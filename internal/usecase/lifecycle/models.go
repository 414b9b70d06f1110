package lifecycle

import (
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/scheduling"
)

// Actions used for metrics labels and error context
const (
	ActionCreate      = "create"
	ActionAssign      = "assign"
	ActionAutoAssign  = "auto_assign"
	ActionConfirm     = "confirm"
	ActionStart       = "start"
	ActionComplete    = "complete"
	ActionCancel      = "cancel"
	ActionReschedule  = "reschedule"
	ActionNoShow      = "no_show"
	ActionAddAddOn    = "add_addon"
	ActionRemoveAddOn = "remove_addon"
	ActionAttachMedia = "attach_media"
	ActionSetFeatured = "set_featured"
	ActionCloseDate   = "close_date"
	ActionReopenDate  = "reopen_date"
)

// CreateRequest запрос на создание бронирования
type CreateRequest struct {
	CustomerID       string
	CustomerName     string
	Phone            string
	Pet              domain.Pet
	PackageID        string
	AddOnKeys        []string
	SingleServiceIDs []string
	Date             time.Time
	Slot             domain.TimeSlot
	Notes            *string
	Source           string  // online / walk_in
	GroomerID        *string // только для записи администратором
	AutoAssign       bool
	Actor            domain.Actor
}

// CreateResponse результат создания
type CreateResponse struct {
	Booking  *domain.Booking
	Warnings []string // предупреждения прайсинга и назначения
}

// CancelRequest запрос на отмену
type CancelRequest struct {
	BookingID string
	Note      string
	Actor     domain.Actor
}

// RescheduleRequest запрос на перенос.
// CancelConflicting - второй шаг подтверждения: отменить занимающую слот бронь.
type RescheduleRequest struct {
	BookingID         string
	Date              time.Time
	Slot              domain.TimeSlot
	GroomerID         *string
	PackageID         *string
	CancelConflicting bool
	Actor             domain.Actor
}

// AddOnRequest добавление доп. услуги во время обслуживания
type AddOnRequest struct {
	BookingID string
	Key       string
	Actor     domain.Actor
}

// RemoveAddOnRequest удаление доп. услуги; AddOnID - id или ключ
type RemoveAddOnRequest struct {
	BookingID string
	AddOnID   string
	Actor     domain.Actor
}

// MediaRequest фото до/после
type MediaRequest struct {
	BookingID string
	Before    *string
	After     *string
	Actor     domain.Actor
}

// CloseDateRequest закрытие дня
type CloseDateRequest struct {
	Date   time.Time
	Reason string
	Actor  domain.Actor
}

// CloseDateResponse результат закрытия дня
type CloseDateResponse struct {
	Blackout  *domain.CalendarBlackout
	Cancelled []*domain.Booking
}

// DayView админский вид назначения на день
type DayView struct {
	Date     time.Time
	Bookings []*domain.Booking
	Load     []scheduling.GroomerLoad
	Closed   *domain.CalendarBlackout
}
