package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

// AppointmentService runs appointment CRUD inside the caller's access scope.
type AppointmentService struct {
	repo    ports.AppointmentRepository
	doctors ports.DoctorRepository
	logger  zerolog.Logger
	now     func() time.Time
}

func NewAppointmentService(repo ports.AppointmentRepository, doctors ports.DoctorRepository, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, doctors: doctors, logger: logger, now: time.Now}
}

// List returns the appointments visible to caller, newest first.
func (s *AppointmentService) List(ctx context.Context, caller *domain.User) ([]*domain.Appointment, error) {
	scope, err := AppointmentReadScope(caller)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, scope)
}

// Get returns one appointment if it lies inside caller's scope.
func (s *AppointmentService) Get(ctx context.Context, caller *domain.User, id string) (*domain.Appointment, error) {
	scope, err := AppointmentLookupScope(caller, id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindOne(ctx, scope)
}

// Create books an appointment for caller.
func (s *AppointmentService) Create(ctx context.Context, caller *domain.User, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	appt, err := NewAppointmentFor(caller, input)
	if err != nil {
		return nil, err
	}
	if appt.Date.IsZero() || strings.TrimSpace(appt.TimeSlot) == "" || strings.TrimSpace(appt.Type) == "" {
		return nil, domain.NewValidationError("data, horario e tipo são obrigatórios")
	}
	if err := s.checkDoctor(ctx, appt.DoctorID); err != nil {
		return nil, err
	}

	appt.CreatedAt = s.now().UTC()
	created, err := s.repo.Create(ctx, appt)
	if err != nil {
		s.logger.Error().Err(err).Str("patient_id", caller.ID).Msg("failed to create appointment")
		return nil, err
	}

	s.logger.Info().Str("appointment_id", created.ID).Str("patient_id", caller.ID).Msg("appointment created")
	return s.repo.FindOne(ctx, ports.AppointmentFilter{ID: created.ID})
}

// Update applies changes to an appointment owned by caller.
func (s *AppointmentService) Update(ctx context.Context, caller *domain.User, id string, changes domain.AppointmentChanges) (*domain.Appointment, error) {
	guard, err := AppointmentMutationGuard(caller, id)
	if err != nil {
		return nil, err
	}
	if changes.Empty() {
		return nil, domain.NewValidationError("nenhum campo para atualizar")
	}
	if changes.DoctorID != nil {
		if err := s.checkDoctor(ctx, *changes.DoctorID); err != nil {
			return nil, err
		}
	}
	return s.repo.UpdateOne(ctx, guard, changes)
}

// Delete cancels an appointment owned by caller.
func (s *AppointmentService) Delete(ctx context.Context, caller *domain.User, id string) error {
	guard, err := AppointmentMutationGuard(caller, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteOne(ctx, guard); err != nil {
		return err
	}
	s.logger.Info().Str("appointment_id", id).Str("patient_id", caller.ID).Msg("appointment cancelled")
	return nil
}

// checkDoctor rejects references to doctor profiles that do not exist.
// An empty reference is allowed.
func (s *AppointmentService) checkDoctor(ctx context.Context, doctorID string) error {
	if doctorID == "" {
		return nil
	}
	if _, err := s.doctors.FindByID(ctx, doctorID); err != nil {
		if errors.Is(err, domain.ErrDoctorNotFound) {
			return domain.NewValidationError("médico não encontrado")
		}
		return fmt.Errorf("check doctor: %w", err)
	}
	return nil
}
