package ports

import (
	"context"
	"time"

	"github.com/postosaude/clinic-api/internal/core/domain"
)

// AppointmentFilter restricts appointment queries. Empty fields are not
// applied, so the zero value matches every appointment.
type AppointmentFilter struct {
	ID        string
	PatientID string
	DoctorID  string
	Status    string
}

// MedicationFilter carries the query parameters for listing medications.
type MedicationFilter struct {
	Name       string // case-insensitive substring
	Type       string
	Status     string
	FacilityID string
}

// DoctorRepository reads practitioner profiles. Doctors are seeded, never
// written through the API.
type DoctorRepository interface {
	List(ctx context.Context, specialty string) ([]*domain.Doctor, error)
	FindByID(ctx context.Context, id string) (*domain.Doctor, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error)
}

// FacilityRepository reads health posts.
type FacilityRepository interface {
	List(ctx context.Context, neighborhood string) ([]*domain.Facility, error)
	FindByID(ctx context.Context, id string) (*domain.Facility, error)
	Create(ctx context.Context, f *domain.Facility) (*domain.Facility, error)
}

// MedicationRepository defines persistence operations for the inventory.
type MedicationRepository interface {
	// List returns the medications matching filter sorted by name.
	List(ctx context.Context, filter MedicationFilter) ([]*domain.Medication, error)
	FindByID(ctx context.Context, id string) (*domain.Medication, error)
	Create(ctx context.Context, m *domain.Medication) (*domain.Medication, error)
	// UpdateStock sets quantity, status and updatedAt in a single write and
	// returns the updated document.
	UpdateStock(ctx context.Context, id string, quantity int, status domain.StockStatus, updatedAt time.Time) (*domain.Medication, error)
	CountByStatus(ctx context.Context, status domain.StockStatus) (int64, error)
}

// AppointmentRepository defines persistence operations for appointments.
// Every lookup and mutation is restricted by an AppointmentFilter; a filter
// that matches nothing yields domain.ErrAppointmentNotFound.
type AppointmentRepository interface {
	// List returns the matching appointments, newest first.
	List(ctx context.Context, filter AppointmentFilter) ([]*domain.Appointment, error)
	FindOne(ctx context.Context, filter AppointmentFilter) (*domain.Appointment, error)
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	UpdateOne(ctx context.Context, filter AppointmentFilter, changes domain.AppointmentChanges) (*domain.Appointment, error)
	DeleteOne(ctx context.Context, filter AppointmentFilter) error
	Count(ctx context.Context, filter AppointmentFilter) (int64, error)
}
