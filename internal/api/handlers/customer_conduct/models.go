package customer_conduct

import (
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/conduct"
)

// WarningRequest HTTP request model
type WarningRequest struct {
	Reason    string  `json:"reason"`
	BookingID *string `json:"bookingId,omitempty"`
}

// BanRequest HTTP request model
type BanRequest struct {
	Reason string `json:"reason"`
}

// LiftBanRequest HTTP request model
type LiftBanRequest struct {
	FeePaid bool `json:"feePaid"`
}

// WarningResponse одно предупреждение
type WarningResponse struct {
	Reason    string    `json:"reason"`
	BookingID *string   `json:"bookingId,omitempty"`
	IssuedBy  string    `json:"issuedBy"`
	IssuedAt  time.Time `json:"issuedAt"`
}

// ConductResponse запись клиента
type ConductResponse struct {
	CustomerID    string            `json:"customerId"`
	WarningCount  int               `json:"warningCount"`
	Warnings      []WarningResponse `json:"warnings"`
	IsBanned      bool              `json:"isBanned"`
	BanReason     *string           `json:"banReason,omitempty"`
	BannedAt      *time.Time        `json:"bannedAt,omitempty"`
	LiftedAt      *time.Time        `json:"liftedAt,omitempty"`
	LastWarningAt *time.Time        `json:"lastWarningAt,omitempty"`
	ReviewLevel   string            `json:"reviewLevel"`
	BanLiftFee    float64           `json:"banLiftFee"`
}

// EnforceResponse результат проверки лимита
type EnforceResponse struct {
	Banned bool            `json:"banned"`
	Record ConductResponse `json:"record"`
}

// ReviewListResponse клиенты, требующие внимания
type ReviewListResponse struct {
	Customers []ConductResponse `json:"customers"`
}

func fromDomainRecord(r *domain.ConductRecord, level conduct.ReviewLevel, fee float64) ConductResponse {
	resp := ConductResponse{
		CustomerID:    r.CustomerID,
		WarningCount:  r.WarningCount,
		Warnings:      make([]WarningResponse, 0, len(r.Warnings)),
		IsBanned:      r.IsBanned,
		BanReason:     r.BanReason,
		BannedAt:      r.BannedAt,
		LiftedAt:      r.LiftedAt,
		LastWarningAt: r.LastWarningAt,
		ReviewLevel:   string(level),
		BanLiftFee:    fee,
	}
	for _, w := range r.Warnings {
		resp.Warnings = append(resp.Warnings, WarningResponse{
			Reason:    w.Reason,
			BookingID: w.BookingID,
			IssuedBy:  w.IssuedBy,
			IssuedAt:  w.IssuedAt,
		})
	}
	return resp
}
