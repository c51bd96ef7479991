package service

import (
	"context"
	"fmt"

	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

// DashboardService aggregates the home screen counters. Appointment counts
// cover the appointments the caller booked as a patient, whatever the role;
// inventory and doctor counts are global.
type DashboardService struct {
	appointments ports.AppointmentRepository
	medications  ports.MedicationRepository
	doctors      ports.DoctorRepository
}

func NewDashboardService(appointments ports.AppointmentRepository, medications ports.MedicationRepository, doctors ports.DoctorRepository) *DashboardService {
	return &DashboardService{appointments: appointments, medications: medications, doctors: doctors}
}

func (s *DashboardService) Stats(ctx context.Context, caller *domain.User) (*ports.DashboardStats, error) {
	if caller == nil {
		return nil, domain.ErrMissingToken
	}
	scope := ports.AppointmentFilter{PatientID: caller.ID}

	var (
		stats ports.DashboardStats
		err   error
	)
	if stats.ScheduledAppointments, err = s.appointments.Count(ctx, scope); err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	completed := scope
	completed.Status = domain.AppointmentCompleted
	if stats.CompletedAppointments, err = s.appointments.Count(ctx, completed); err != nil {
		return nil, fmt.Errorf("count completed appointments: %w", err)
	}

	if stats.AvailableMedications, err = s.medications.CountByStatus(ctx, domain.StockAvailable); err != nil {
		return nil, fmt.Errorf("count medications: %w", err)
	}
	if stats.AvailableDoctors, err = s.doctors.Count(ctx); err != nil {
		return nil, fmt.Errorf("count doctors: %w", err)
	}

	return &stats, nil
}
