package models

import (
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Actor              domain.Actor `json:"-"`
	CancellationReason string       `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на перевод бронирования в новый статус
type UpdateStatusRequest struct {
	Actor  domain.Actor `json:"-"`
	Status string       `json:"status"`
	Notes  string       `json:"notes,omitempty"` // для completed
}

// GetCustomerBookingsRequest запрос на получение бронирований клиента
type GetCustomerBookingsRequest struct {
	CustomerID      string
	Status          *string
	IncludeInactive bool
}

// GetBookingsRequest запрос администратора с гибкой фильтрацией
type GetBookingsRequest struct {
	GroomerID       *string
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		GroomerID:       r.GroomerID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
		// фильтр по неактивному статусу подразумевает неактивные брони
		if !status.OccupiesSlot() {
			filter.IncludeInactive = true
		}
	}

	return filter, nil
}

// Response модели

// AddOnResponse доп. услуга брони
type AddOnResponse struct {
	ID    string  `json:"id,omitempty"`
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// CostResponse снимок стоимости
type CostResponse struct {
	PackagePrice   float64         `json:"packagePrice"`
	ServicesTotal  float64         `json:"servicesTotal"`
	AddOns         []AddOnResponse `json:"addOns"`
	AddOnsTotal    float64         `json:"addOnsTotal"`
	Subtotal       float64         `json:"subtotal"`
	BookingFee     float64         `json:"bookingFee"`
	BalanceOnVisit float64         `json:"balanceOnVisit"`
	TotalAmount    float64         `json:"totalAmount"`
	WeightLabel    string          `json:"weightLabel,omitempty"`
	Incomplete     bool            `json:"incomplete"`
	Locked         bool            `json:"locked"`
}

// PetResponse данные питомца
type PetResponse struct {
	Name          string `json:"name"`
	Species       string `json:"species,omitempty"`
	Breed         string `json:"breed,omitempty"`
	WeightBracket string `json:"weightBracket,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string      `json:"id"`
	ShortCode    string      `json:"shortCode"`
	CustomerID   string      `json:"customerId"`
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone,omitempty"`
	Pet          PetResponse `json:"pet"`

	PackageID      string   `json:"packageId"`
	PackageName    string   `json:"packageName"`
	SingleServices []string `json:"singleServices,omitempty"`

	GroomerID   *string `json:"groomerId,omitempty"`
	GroomerName string  `json:"groomerName,omitempty"`
	BookingDate string  `json:"bookingDate"` // "2024-06-01"
	TimeSlot    string  `json:"timeSlot"`    // "9am-12pm"
	Status      string  `json:"status"`
	Source      string  `json:"source"`

	Cost       CostResponse    `json:"cost"`
	AddOns     []AddOnResponse `json:"addOns"`
	BasePrice  *float64        `json:"basePrice,omitempty"`
	TotalPrice float64         `json:"totalPrice"`

	Notes            *string `json:"notes,omitempty"`
	CancellationNote *string `json:"cancellationNote,omitempty"`
	CompletionNote   *string `json:"completionNote,omitempty"`
	BeforeMedia      *string `json:"beforeMedia,omitempty"`
	AfterMedia       *string `json:"afterMedia,omitempty"`
	Featured         bool    `json:"featured"`
	RescheduledFrom  *string `json:"rescheduledFrom,omitempty"`

	CancelledAt *string   `json:"cancelledAt,omitempty"` // ISO 8601 format
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// AuditEntryResponse запись журнала
type AuditEntryResponse struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Message   string    `json:"message"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse журнал брони
type HistoryResponse struct {
	BookingID string               `json:"bookingId"`
	Entries   []AuditEntryResponse `json:"entries"`
}

// GroomerLoadResponse загрузка грумера за день
type GroomerLoadResponse struct {
	GroomerID   string            `json:"groomerId"`
	GroomerName string            `json:"groomerName"`
	DailyCount  int               `json:"dailyCount"`
	Capacity    int               `json:"capacity"`
	Absent      bool              `json:"absent"`
	Slots       map[string]string `json:"slots"` // слот -> id брони
}

// DayViewResponse админский обзор дня
type DayViewResponse struct {
	Date         string                `json:"date"`
	Closed       bool                  `json:"closed"`
	ClosedReason string                `json:"closedReason,omitempty"`
	Bookings     []BookingResponse     `json:"bookings"`
	Load         []GroomerLoadResponse `json:"load"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:           b.ID,
		ShortCode:    b.ShortCode,
		CustomerID:   b.CustomerID,
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		Pet: PetResponse{
			Name:          b.Pet.Name,
			Species:       b.Pet.Species,
			Breed:         b.Pet.Breed,
			WeightBracket: b.Pet.WeightBracket,
		},
		PackageID:        b.PackageID,
		PackageName:      b.PackageName,
		SingleServices:   b.SingleServices,
		GroomerID:        b.GroomerID,
		GroomerName:      b.GroomerName,
		BookingDate:      b.Date.Format(domain.DateFormat),
		TimeSlot:         string(b.Slot),
		Status:           string(b.Status),
		Source:           b.Source,
		Cost:             fromCost(b.Cost),
		AddOns:           fromAddOns(b.AddOns),
		BasePrice:        b.BasePrice,
		TotalPrice:       b.TotalPrice,
		Notes:            b.Notes,
		CancellationNote: b.CancellationNote,
		CompletionNote:   b.CompletionNote,
		BeforeMedia:      b.BeforeMedia,
		AfterMedia:       b.AfterMedia,
		Featured:         b.Featured,
		RescheduledFrom:  b.RescheduledFrom,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}

// FromAuditEntries конвертирует журнал в DTO
func FromAuditEntries(bookingID string, entries []*domain.AuditEntry) *HistoryResponse {
	resp := &HistoryResponse{
		BookingID: bookingID,
		Entries:   make([]AuditEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, AuditEntryResponse{
			ID:        e.ID,
			Action:    e.Action,
			Message:   e.Message,
			Actor:     e.Actor,
			Timestamp: e.Timestamp,
		})
	}
	return resp
}

func fromCost(c domain.CostSnapshot) CostResponse {
	return CostResponse{
		PackagePrice:   c.PackagePrice,
		ServicesTotal:  c.ServicesTotal,
		AddOns:         fromAddOns(c.AddOns),
		AddOnsTotal:    c.AddOnsTotal,
		Subtotal:       c.Subtotal,
		BookingFee:     c.BookingFee,
		BalanceOnVisit: c.BalanceOnVisit,
		TotalAmount:    c.TotalAmount,
		WeightLabel:    c.WeightLabel,
		Incomplete:     c.Incomplete,
		Locked:         c.Locked,
	}
}

func fromAddOns(addOns []domain.SelectedAddOn) []AddOnResponse {
	out := make([]AddOnResponse, 0, len(addOns))
	for _, a := range addOns {
		out = append(out, AddOnResponse{ID: a.ID, Key: a.Key, Label: a.Label, Price: a.Price})
	}
	return out
}
