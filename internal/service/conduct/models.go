package conduct

import "github.com/bestbuddies/grooming-booking/internal/domain"

// Options пороги политики
type Options struct {
	HardLimit      int
	WatchThreshold int
	BanLiftFee     float64
}

// ReviewLevel how urgently an admin should look at a customer
type ReviewLevel string

const (
	ReviewNone      ReviewLevel = "none"
	ReviewWatchlist ReviewLevel = "watchlist"
	ReviewAtLimit   ReviewLevel = "at_limit"
	ReviewBanned    ReviewLevel = "banned"
)

// WarningRequest запрос на выдачу предупреждения
type WarningRequest struct {
	CustomerID string
	Reason     string
	BookingID  *string
	IssuedBy   string
}

// BanRequest запрос на блокировку
type BanRequest struct {
	CustomerID string
	Reason     string
	Actor      string
}

// LiftBanRequest запрос на снятие блокировки; FeePaid - подтверждение администратора об оплате
type LiftBanRequest struct {
	CustomerID string
	FeePaid    bool
	Actor      string
}

// ReviewItem запись клиента с уровнем внимания
type ReviewItem struct {
	Record *domain.ConductRecord
	Level  ReviewLevel
}
