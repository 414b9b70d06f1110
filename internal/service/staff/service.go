package staff

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/staff/models"
)

// Service сервис управления грумерами и их отсутствиями
type Service struct {
	repo            StaffRepository
	defaultCapacity int
	timeProvider    TimeProvider
	newID           func() string
	logger          Logger
}

// NewService создает новый экземпляр сервиса персонала
func NewService(repo StaffRepository, defaultCapacity int, logger Logger) *Service {
	if defaultCapacity <= 0 {
		defaultCapacity = domain.DefaultGroomerDailyLimit
	}
	return &Service{
		repo:            repo,
		defaultCapacity: defaultCapacity,
		timeProvider:    &RealTimeProvider{},
		newID:           uuid.NewString,
		logger:          logger,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// ListGroomers возвращает всех грумеров в порядке добавления
func (s *Service) ListGroomers(ctx context.Context) (*models.GroomerListResponse, error) {
	s.logger.Info("ListGroomers: fetching groomers")

	groomers, err := s.repo.LoadGroomers(ctx)
	if err != nil {
		s.logger.Error("ListGroomers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListGroomers - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListGroomers: successfully fetched %d groomers", len(groomers))
	return models.FromDomainGroomerList(groomers, s.defaultCapacity), nil
}

// CreateGroomer добавляет грумера в конец очереди назначения
func (s *Service) CreateGroomer(ctx context.Context, req *models.CreateGroomerRequest) (*models.GroomerResponse, error) {
	s.logger.Info("CreateGroomer: name=%s, maxDaily=%d", req.Name, req.MaxDailyBookings)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.MaxDailyBookings < 0 {
		return nil, fmt.Errorf("%w: maxDailyBookings must not be negative", ErrInvalidInput)
	}

	groomers, err := s.repo.LoadGroomers(ctx)
	if err != nil {
		s.logger.Error("CreateGroomer: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateGroomer - load groomers: %v", ErrInternal, err)
	}
	order := 0
	for _, g := range groomers {
		if g.Order >= order {
			order = g.Order + 1
		}
	}

	g := &domain.Groomer{
		ID:               s.newID(),
		Name:             name,
		Specialty:        strings.TrimSpace(req.Specialty),
		MaxDailyBookings: req.MaxDailyBookings,
		Order:            order,
		Active:           true,
	}
	if err := s.repo.SaveGroomer(ctx, g); err != nil {
		s.logger.Error("CreateGroomer: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateGroomer - save groomer: %v", ErrInternal, err)
	}

	s.logger.Info("CreateGroomer: successfully created groomer id=%s", g.ID)
	return models.FromDomainGroomer(g, s.defaultCapacity), nil
}

// UpdateGroomer частично обновляет грумера.
// Снижение лимита не отменяет уже существующие брони.
func (s *Service) UpdateGroomer(ctx context.Context, id string, req *models.UpdateGroomerRequest) (*models.GroomerResponse, error) {
	s.logger.Info("UpdateGroomer: updating groomer id=%s", id)

	g, err := s.findGroomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		g.Name = name
	}
	if req.Specialty != nil {
		g.Specialty = strings.TrimSpace(*req.Specialty)
	}
	if req.MaxDailyBookings != nil {
		if *req.MaxDailyBookings < 0 {
			return nil, fmt.Errorf("%w: maxDailyBookings must not be negative", ErrInvalidInput)
		}
		g.MaxDailyBookings = *req.MaxDailyBookings
	}
	if req.Active != nil {
		g.Active = *req.Active
	}

	if err := s.repo.SaveGroomer(ctx, g); err != nil {
		s.logger.Error("UpdateGroomer: repository error for groomer id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateGroomer - save groomer: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateGroomer: successfully updated groomer id=%s", id)
	return models.FromDomainGroomer(g, s.defaultCapacity), nil
}

// ListAbsences возвращает отсутствия (все или одного грумера)
func (s *Service) ListAbsences(ctx context.Context, groomerID *string) (*models.AbsenceListResponse, error) {
	absences, err := s.repo.LoadAbsences(ctx)
	if err != nil {
		s.logger.Error("ListAbsences: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAbsences - repository error: %v", ErrInternal, err)
	}
	if groomerID == nil {
		return models.FromDomainAbsenceList(absences), nil
	}

	filtered := make([]*domain.Absence, 0, len(absences))
	for _, a := range absences {
		if a.GroomerID == *groomerID {
			filtered = append(filtered, a)
		}
	}
	return models.FromDomainAbsenceList(filtered), nil
}

// RequestAbsence создаёт заявку на отсутствие в статусе pending.
// Пока заявка не одобрена, грумер остаётся доступен для назначения.
func (s *Service) RequestAbsence(ctx context.Context, req *models.RequestAbsenceRequest) (*models.AbsenceResponse, error) {
	s.logger.Info("RequestAbsence: groomer=%s, date=%s", req.GroomerID, req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if domain.DateKey(req.Date) < domain.DateKey(s.timeProvider.Now()) {
		return nil, fmt.Errorf("%w: date is in the past", ErrInvalidInput)
	}
	if _, err := s.findGroomer(ctx, req.GroomerID); err != nil {
		return nil, err
	}

	absences, err := s.repo.LoadAbsences(ctx)
	if err != nil {
		s.logger.Error("RequestAbsence: repository error: %v", err)
		return nil, fmt.Errorf("%w: RequestAbsence - load absences: %v", ErrInternal, err)
	}
	for _, a := range absences {
		if a.GroomerID == req.GroomerID && domain.SameDay(a.Date, req.Date) && a.Status != domain.AbsenceRejected {
			s.logger.Warn("RequestAbsence: groomer=%s already has absence id=%s on %s",
				req.GroomerID, a.ID, req.Date.Format(domain.DateFormat))
			return nil, ErrAbsenceAlreadyExists
		}
	}

	a := &domain.Absence{
		ID:        s.newID(),
		GroomerID: req.GroomerID,
		Date:      domain.DayOf(req.Date),
		Status:    domain.AbsencePending,
		Reason:    strings.TrimSpace(req.Reason),
		CreatedAt: s.timeProvider.Now(),
	}
	if err := s.repo.SaveAbsence(ctx, a); err != nil {
		s.logger.Error("RequestAbsence: repository error: %v", err)
		return nil, fmt.Errorf("%w: RequestAbsence - save absence: %v", ErrInternal, err)
	}

	s.logger.Info("RequestAbsence: created absence id=%s", a.ID)
	return models.FromDomainAbsence(a), nil
}

// DecideAbsence одобряет или отклоняет заявку.
// Одобрение не снимает грумера с уже назначенных броней.
func (s *Service) DecideAbsence(ctx context.Context, id string, req *models.DecideAbsenceRequest) (*models.AbsenceResponse, error) {
	s.logger.Info("DecideAbsence: absence=%s, approve=%v", id, req.Approve)

	absences, err := s.repo.LoadAbsences(ctx)
	if err != nil {
		s.logger.Error("DecideAbsence: repository error: %v", err)
		return nil, fmt.Errorf("%w: DecideAbsence - load absences: %v", ErrInternal, err)
	}

	var absence *domain.Absence
	for _, a := range absences {
		if a.ID == id {
			absence = a
			break
		}
	}
	if absence == nil {
		s.logger.Warn("DecideAbsence: absence id=%s not found", id)
		return nil, ErrAbsenceNotFound
	}
	if absence.Status != domain.AbsencePending {
		s.logger.Warn("DecideAbsence: absence id=%s already %s", id, absence.Status)
		return nil, ErrAbsenceAlreadyDecided
	}

	absence.Status = domain.AbsenceRejected
	if req.Approve {
		absence.Status = domain.AbsenceApproved
	}
	if err := s.repo.SaveAbsence(ctx, absence); err != nil {
		s.logger.Error("DecideAbsence: repository error: %v", err)
		return nil, fmt.Errorf("%w: DecideAbsence - save absence: %v", ErrInternal, err)
	}

	s.logger.Info("DecideAbsence: absence id=%s is %s", id, absence.Status)
	return models.FromDomainAbsence(absence), nil
}

func (s *Service) findGroomer(ctx context.Context, id string) (*domain.Groomer, error) {
	groomers, err := s.repo.LoadGroomers(ctx)
	if err != nil {
		s.logger.Error("findGroomer: repository error: %v", err)
		return nil, fmt.Errorf("%w: load groomers: %v", ErrInternal, err)
	}
	for _, g := range groomers {
		if g.ID == id {
			return g, nil
		}
	}
	s.logger.Warn("findGroomer: groomer id=%s not found", id)
	return nil, ErrGroomerNotFound
}
