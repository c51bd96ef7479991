package service

import (
	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

// AppointmentReadScope returns the filter limiting which appointments
// caller may see.
//
// Doctors are matched on their identity id, not on their doctor profile id.
// Appointments reference the profile, so unless the two ids coincide a
// doctor's scope matches nothing.
func AppointmentReadScope(caller *domain.User) (ports.AppointmentFilter, error) {
	if caller == nil {
		return ports.AppointmentFilter{}, domain.ErrMissingToken
	}
	switch caller.Role {
	case domain.RolePatient:
		return ports.AppointmentFilter{PatientID: caller.ID}, nil
	case domain.RoleDoctor:
		return ports.AppointmentFilter{DoctorID: caller.ID}, nil
	case domain.RoleAdmin:
		return ports.AppointmentFilter{}, nil
	default:
		return ports.AppointmentFilter{}, domain.ErrForbidden
	}
}

// AppointmentLookupScope narrows the read scope to a single appointment.
func AppointmentLookupScope(caller *domain.User, id string) (ports.AppointmentFilter, error) {
	scope, err := AppointmentReadScope(caller)
	if err != nil {
		return ports.AppointmentFilter{}, err
	}
	scope.ID = id
	return scope, nil
}

// AppointmentMutationGuard returns the filter an update or delete must
// match. Only the owning patient matches; every other caller gets a filter
// that finds nothing, which surfaces as not found rather than forbidden.
func AppointmentMutationGuard(caller *domain.User, id string) (ports.AppointmentFilter, error) {
	if caller == nil {
		return ports.AppointmentFilter{}, domain.ErrMissingToken
	}
	return ports.AppointmentFilter{ID: id, PatientID: caller.ID}, nil
}

// NewAppointmentFor builds the appointment caller is allowed to create from
// input. The patient is always the caller and the status always pending,
// whatever the request carried. The doctor reference is kept verbatim.
func NewAppointmentFor(caller *domain.User, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	if caller == nil {
		return nil, domain.ErrMissingToken
	}
	return &domain.Appointment{
		PatientID: caller.ID,
		DoctorID:  input.DoctorID,
		Date:      input.Date,
		TimeSlot:  input.TimeSlot,
		Type:      input.Type,
		Specialty: input.Specialty,
		Status:    domain.AppointmentPending,
		Notes:     input.Notes,
	}, nil
}

// RequireAdmin guards identity listing and lookup.
func RequireAdmin(caller *domain.User) error {
	if caller == nil {
		return domain.ErrMissingToken
	}
	if caller.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// AuthorizeMedicationWrite accepts any authenticated identity. Inventory
// writes carry no ownership.
func AuthorizeMedicationWrite(caller *domain.User) error {
	if caller == nil {
		return domain.ErrMissingToken
	}
	return nil
}
