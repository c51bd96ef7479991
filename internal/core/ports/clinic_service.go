package ports

import (
	"context"
	"time"

	"github.com/postosaude/clinic-api/internal/core/domain"
)

// UserService exposes identity lookups. Both operations are admin-only.
type UserService interface {
	List(ctx context.Context, caller *domain.User) ([]*domain.User, error)
	Get(ctx context.Context, caller *domain.User, id string) (*domain.User, error)
}

// DirectoryService exposes the public reference data.
type DirectoryService interface {
	ListDoctors(ctx context.Context, specialty string) ([]*domain.Doctor, error)
	GetDoctor(ctx context.Context, id string) (*domain.Doctor, error)
	ListFacilities(ctx context.Context, neighborhood string) ([]*domain.Facility, error)
	GetFacility(ctx context.Context, id string) (*domain.Facility, error)
}

// CreateMedicationInput carries the fields accepted when stocking a new
// medication. Status is never accepted; it is derived from Quantity.
type CreateMedicationInput struct {
	Name        string
	Type        string
	Description string
	FacilityID  string
	Quantity    int
}

// MedicationService defines use-case operations for the inventory.
type MedicationService interface {
	List(ctx context.Context, filter MedicationFilter) ([]*domain.Medication, error)
	Get(ctx context.Context, id string) (*domain.Medication, error)
	Create(ctx context.Context, caller *domain.User, input CreateMedicationInput) (*domain.Medication, error)
	UpdateQuantity(ctx context.Context, caller *domain.User, id string, quantity int) (*domain.Medication, error)
}

// CreateAppointmentInput carries the client-supplied appointment fields.
// The patient is always the caller, so it has no field here.
type CreateAppointmentInput struct {
	DoctorID  string
	Date      time.Time
	TimeSlot  string
	Type      string
	Specialty string
	Notes     string
}

// AppointmentService defines the role-scoped appointment operations.
type AppointmentService interface {
	List(ctx context.Context, caller *domain.User) ([]*domain.Appointment, error)
	Get(ctx context.Context, caller *domain.User, id string) (*domain.Appointment, error)
	Create(ctx context.Context, caller *domain.User, input CreateAppointmentInput) (*domain.Appointment, error)
	Update(ctx context.Context, caller *domain.User, id string, changes domain.AppointmentChanges) (*domain.Appointment, error)
	Delete(ctx context.Context, caller *domain.User, id string) error
}

// DashboardStats is the summary shown on the caller's home screen.
type DashboardStats struct {
	ScheduledAppointments int64 `json:"consultasAgendadas"`
	CompletedAppointments int64 `json:"consultasRealizadas"`
	AvailableMedications  int64 `json:"medicamentosDisponiveis"`
	AvailableDoctors      int64 `json:"medicosDisponiveis"`
}

type DashboardService interface {
	Stats(ctx context.Context, caller *domain.User) (*DashboardStats, error)
}
