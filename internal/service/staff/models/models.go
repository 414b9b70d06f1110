package models

import (
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// Request модели

// CreateGroomerRequest запрос на добавление грумера
type CreateGroomerRequest struct {
	Name             string `json:"name"`
	Specialty        string `json:"specialty"`
	MaxDailyBookings int    `json:"maxDailyBookings"` // 0 = значение из конфигурации
}

// UpdateGroomerRequest запрос на обновление грумера.
// Все поля опциональны - обновляются только переданные значения.
type UpdateGroomerRequest struct {
	Name             *string `json:"name,omitempty"`
	Specialty        *string `json:"specialty,omitempty"`
	MaxDailyBookings *int    `json:"maxDailyBookings,omitempty"`
	Active           *bool   `json:"active,omitempty"`
}

// RequestAbsenceRequest заявка на отсутствие
type RequestAbsenceRequest struct {
	GroomerID string    `json:"-"`
	Date      time.Time `json:"-"`
	RawDate   string    `json:"date"` // "2024-06-01"
	Reason    string    `json:"reason"`
}

// DecideAbsenceRequest решение по заявке
type DecideAbsenceRequest struct {
	Approve bool `json:"approve"`
}

// Response модели

// GroomerResponse ответ с данными грумера
type GroomerResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Specialty        string `json:"specialty,omitempty"`
	MaxDailyBookings int    `json:"maxDailyBookings"`
	Capacity         int    `json:"capacity"` // с учётом значения по умолчанию
	Active           bool   `json:"active"`
}

// GroomerListResponse ответ со списком грумеров
type GroomerListResponse struct {
	Groomers []GroomerResponse `json:"groomers"`
}

// AbsenceResponse ответ с данными отсутствия
type AbsenceResponse struct {
	ID        string    `json:"id"`
	GroomerID string    `json:"groomerId"`
	Date      string    `json:"date"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AbsenceListResponse ответ со списком отсутствий
type AbsenceListResponse struct {
	Absences []AbsenceResponse `json:"absences"`
}

// Методы конвертации

// FromDomainGroomer конвертирует domain модель в DTO
func FromDomainGroomer(g *domain.Groomer, defaultCapacity int) *GroomerResponse {
	if g == nil {
		return nil
	}
	return &GroomerResponse{
		ID:               g.ID,
		Name:             g.Name,
		Specialty:        g.Specialty,
		MaxDailyBookings: g.MaxDailyBookings,
		Capacity:         g.Capacity(defaultCapacity),
		Active:           g.Active,
	}
}

// FromDomainGroomerList конвертирует список domain моделей в DTO
func FromDomainGroomerList(groomers []*domain.Groomer, defaultCapacity int) *GroomerListResponse {
	resp := &GroomerListResponse{Groomers: make([]GroomerResponse, 0, len(groomers))}
	for _, g := range groomers {
		resp.Groomers = append(resp.Groomers, *FromDomainGroomer(g, defaultCapacity))
	}
	return resp
}

// FromDomainAbsence конвертирует domain модель в DTO
func FromDomainAbsence(a *domain.Absence) *AbsenceResponse {
	if a == nil {
		return nil
	}
	return &AbsenceResponse{
		ID:        a.ID,
		GroomerID: a.GroomerID,
		Date:      a.Date.Format(domain.DateFormat),
		Status:    string(a.Status),
		Reason:    a.Reason,
		CreatedAt: a.CreatedAt,
	}
}

// FromDomainAbsenceList конвертирует список domain моделей в DTO
func FromDomainAbsenceList(absences []*domain.Absence) *AbsenceListResponse {
	resp := &AbsenceListResponse{Absences: make([]AbsenceResponse, 0, len(absences))}
	for _, a := range absences {
		resp.Absences = append(resp.Absences, *FromDomainAbsence(a))
	}
	return resp
}
