package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories. Each mirrors the filtering the Mongo
// repositories perform so the services can be tested end to end.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users map[string]*domain.User // by id
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	stored := cloneUser(user)
	stored.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[stored.ID] = cloneUser(stored)
	return stored, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

type stubDoctorRepo struct {
	doctors map[string]*domain.Doctor
}

func newStubDoctorRepo(doctors ...*domain.Doctor) *stubDoctorRepo {
	r := &stubDoctorRepo{doctors: make(map[string]*domain.Doctor)}
	for _, d := range doctors {
		r.doctors[d.ID] = d
	}
	return r
}

func (r *stubDoctorRepo) List(_ context.Context, specialty string) ([]*domain.Doctor, error) {
	var out []*domain.Doctor
	for _, d := range r.doctors {
		if specialty == "" || d.Specialty == specialty {
			clone := *d
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubDoctorRepo) FindByID(_ context.Context, id string) (*domain.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, domain.ErrDoctorNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *stubDoctorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.doctors)), nil
}

func (r *stubDoctorRepo) Create(_ context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	clone := *d
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("doctor-%d", len(r.doctors)+1)
	}
	r.doctors[clone.ID] = &clone
	return &clone, nil
}

type stubFacilityRepo struct {
	facilities map[string]*domain.Facility
}

func newStubFacilityRepo(facilities ...*domain.Facility) *stubFacilityRepo {
	r := &stubFacilityRepo{facilities: make(map[string]*domain.Facility)}
	for _, f := range facilities {
		r.facilities[f.ID] = f
	}
	return r
}

func (r *stubFacilityRepo) List(_ context.Context, neighborhood string) ([]*domain.Facility, error) {
	var out []*domain.Facility
	for _, f := range r.facilities {
		if neighborhood == "" || f.Neighborhood == neighborhood {
			clone := *f
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubFacilityRepo) FindByID(_ context.Context, id string) (*domain.Facility, error) {
	f, ok := r.facilities[id]
	if !ok {
		return nil, domain.ErrFacilityNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *stubFacilityRepo) Create(_ context.Context, f *domain.Facility) (*domain.Facility, error) {
	clone := *f
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("posto-%d", len(r.facilities)+1)
	}
	r.facilities[clone.ID] = &clone
	return &clone, nil
}

type stubMedicationRepo struct {
	meds      map[string]*domain.Medication
	updateErr error
	seq       int
}

func newStubMedicationRepo(meds ...*domain.Medication) *stubMedicationRepo {
	r := &stubMedicationRepo{meds: make(map[string]*domain.Medication)}
	for _, m := range meds {
		r.meds[m.ID] = m
	}
	return r
}

func (r *stubMedicationRepo) List(_ context.Context, f ports.MedicationFilter) ([]*domain.Medication, error) {
	var out []*domain.Medication
	for _, m := range r.meds {
		if f.Name != "" && !strings.Contains(strings.ToLower(m.Name), strings.ToLower(f.Name)) {
			continue
		}
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if f.Status != "" && string(m.Status) != f.Status {
			continue
		}
		if f.FacilityID != "" && m.FacilityID != f.FacilityID {
			continue
		}
		clone := *m
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubMedicationRepo) FindByID(_ context.Context, id string) (*domain.Medication, error) {
	m, ok := r.meds[id]
	if !ok {
		return nil, domain.ErrMedicationNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMedicationRepo) Create(_ context.Context, m *domain.Medication) (*domain.Medication, error) {
	r.seq++
	clone := *m
	clone.ID = fmt.Sprintf("med-%d", r.seq)
	r.meds[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubMedicationRepo) UpdateStock(_ context.Context, id string, quantity int, status domain.StockStatus, updatedAt time.Time) (*domain.Medication, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	m, ok := r.meds[id]
	if !ok {
		return nil, domain.ErrMedicationNotFound
	}
	m.Quantity = quantity
	m.Status = status
	m.UpdatedAt = updatedAt
	clone := *m
	return &clone, nil
}

func (r *stubMedicationRepo) CountByStatus(_ context.Context, status domain.StockStatus) (int64, error) {
	var n int64
	for _, m := range r.meds {
		if m.Status == status {
			n++
		}
	}
	return n, nil
}

type stubAppointmentRepo struct {
	appts      map[string]*domain.Appointment
	seq        int
	lastFilter ports.AppointmentFilter
}

func newStubAppointmentRepo(appts ...*domain.Appointment) *stubAppointmentRepo {
	r := &stubAppointmentRepo{appts: make(map[string]*domain.Appointment)}
	for _, a := range appts {
		r.appts[a.ID] = a
	}
	return r
}

func matchAppointment(a *domain.Appointment, f ports.AppointmentFilter) bool {
	if f.ID != "" && a.ID != f.ID {
		return false
	}
	if f.PatientID != "" && a.PatientID != f.PatientID {
		return false
	}
	if f.DoctorID != "" && a.DoctorID != f.DoctorID {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	return true
}

func (r *stubAppointmentRepo) List(_ context.Context, f ports.AppointmentFilter) ([]*domain.Appointment, error) {
	r.lastFilter = f
	var out []*domain.Appointment
	for _, a := range r.appts {
		if matchAppointment(a, f) {
			clone := *a
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubAppointmentRepo) FindOne(_ context.Context, f ports.AppointmentFilter) (*domain.Appointment, error) {
	r.lastFilter = f
	for _, a := range r.appts {
		if matchAppointment(a, f) {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAppointmentNotFound
}

func (r *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	r.seq++
	clone := *a
	clone.ID = fmt.Sprintf("appt-%d", r.seq)
	r.appts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAppointmentRepo) UpdateOne(_ context.Context, f ports.AppointmentFilter, c domain.AppointmentChanges) (*domain.Appointment, error) {
	r.lastFilter = f
	for _, a := range r.appts {
		if !matchAppointment(a, f) {
			continue
		}
		if c.DoctorID != nil {
			a.DoctorID = *c.DoctorID
		}
		if c.Date != nil {
			a.Date = *c.Date
		}
		if c.TimeSlot != nil {
			a.TimeSlot = *c.TimeSlot
		}
		if c.Type != nil {
			a.Type = *c.Type
		}
		if c.Specialty != nil {
			a.Specialty = *c.Specialty
		}
		if c.Status != nil {
			a.Status = *c.Status
		}
		if c.Notes != nil {
			a.Notes = *c.Notes
		}
		clone := *a
		return &clone, nil
	}
	return nil, domain.ErrAppointmentNotFound
}

func (r *stubAppointmentRepo) DeleteOne(_ context.Context, f ports.AppointmentFilter) error {
	r.lastFilter = f
	for id, a := range r.appts {
		if matchAppointment(a, f) {
			delete(r.appts, id)
			return nil
		}
	}
	return domain.ErrAppointmentNotFound
}

func (r *stubAppointmentRepo) Count(_ context.Context, f ports.AppointmentFilter) (int64, error) {
	var n int64
	for _, a := range r.appts {
		if matchAppointment(a, f) {
			n++
		}
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func patient(id string) *domain.User {
	return &domain.User{ID: id, Name: "Paciente " + id, Role: domain.RolePatient}
}

func doctorUser(id string) *domain.User {
	return &domain.User{ID: id, Name: "Dr. " + id, Role: domain.RoleDoctor}
}

func admin() *domain.User {
	return &domain.User{ID: "admin-1", Name: "Administrador", Role: domain.RoleAdmin}
}
