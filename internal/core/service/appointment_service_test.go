package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

func strPtr(s string) *string { return &s }

func seededAppointments() *stubAppointmentRepo {
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	return newStubAppointmentRepo(
		&domain.Appointment{ID: "a1", PatientID: "p1", DoctorID: "doc-1", Status: domain.AppointmentPending, CreatedAt: base},
		&domain.Appointment{ID: "a2", PatientID: "p1", DoctorID: "doc-2", Status: domain.AppointmentCompleted, CreatedAt: base.Add(time.Hour)},
		&domain.Appointment{ID: "a3", PatientID: "p2", DoctorID: "doc-1", Status: domain.AppointmentPending, CreatedAt: base.Add(2 * time.Hour)},
	)
}

func newAppointmentSvc(repo *stubAppointmentRepo) *AppointmentService {
	doctors := newStubDoctorRepo(
		&domain.Doctor{ID: "doc-1", UserID: "u-doc-1", Specialty: "Cardiologia"},
		&domain.Doctor{ID: "doc-2", UserID: "u-doc-2", Specialty: "Dermatologia"},
	)
	return NewAppointmentService(repo, doctors, zerolog.Nop())
}

func TestAppointmentService_Create_ForcesCaller(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := newAppointmentSvc(repo)

	appt, err := svc.Create(context.Background(), patient("p1"), ports.CreateAppointmentInput{
		DoctorID: "doc-1",
		Date:     time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC),
		TimeSlot: "09:00",
		Type:     "consulta",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if appt.PatientID != "p1" || appt.Status != domain.AppointmentPending {
		t.Errorf("unexpected appointment: %+v", appt)
	}
	if appt.CreatedAt.IsZero() {
		t.Error("expected creation time to be set")
	}
}

func TestAppointmentService_Create_Validation(t *testing.T) {
	svc := newAppointmentSvc(newStubAppointmentRepo())
	date := time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC)

	cases := []ports.CreateAppointmentInput{
		{TimeSlot: "09:00", Type: "consulta"},
		{Date: date, Type: "consulta"},
		{Date: date, TimeSlot: "09:00"},
		{Date: date, TimeSlot: "09:00", Type: "consulta", DoctorID: "doc-missing"},
	}
	for _, in := range cases {
		_, err := svc.Create(context.Background(), patient("p1"), in)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Create(%+v): expected ValidationError, got %v", in, err)
		}
	}
}

func TestAppointmentService_List_PatientScope(t *testing.T) {
	svc := newAppointmentSvc(seededAppointments())

	got, err := svc.List(context.Background(), patient("p1"))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(got))
	}
	if got[0].ID != "a2" {
		t.Errorf("expected newest first, got %s", got[0].ID)
	}
	for _, a := range got {
		if a.PatientID != "p1" {
			t.Errorf("leaked appointment %s of patient %s", a.ID, a.PatientID)
		}
	}
}

func TestAppointmentService_List_AdminSeesAll(t *testing.T) {
	svc := newAppointmentSvc(seededAppointments())

	got, err := svc.List(context.Background(), admin())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 appointments, got %d", len(got))
	}
}

// A doctor's scope compares the doctor reference with the identity id. The
// seeded appointments reference doctor profiles whose ids differ from their
// identities, so the doctor sees nothing.
func TestAppointmentService_List_DoctorScopeUsesIdentityID(t *testing.T) {
	repo := seededAppointments()
	svc := newAppointmentSvc(repo)

	got, err := svc.List(context.Background(), doctorUser("u-doc-1"))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no appointments for mismatched ids, got %d", len(got))
	}
	if repo.lastFilter.DoctorID != "u-doc-1" {
		t.Errorf("expected filter on identity id, got %+v", repo.lastFilter)
	}

	// When the profile id coincides with the identity id the scope matches.
	got, _ = svc.List(context.Background(), doctorUser("doc-1"))
	if len(got) != 2 {
		t.Errorf("expected 2 appointments for coinciding ids, got %d", len(got))
	}
}

func TestAppointmentService_OtherPatientGetsNotFound(t *testing.T) {
	repo := seededAppointments()
	svc := newAppointmentSvc(repo)
	ctx := context.Background()
	intruder := patient("p2")

	if _, err := svc.Get(ctx, intruder, "a1"); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Errorf("Get: expected ErrAppointmentNotFound, got %v", err)
	}
	if _, err := svc.Update(ctx, intruder, "a1", domain.AppointmentChanges{Notes: strPtr("x")}); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Errorf("Update: expected ErrAppointmentNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, intruder, "a1"); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Errorf("Delete: expected ErrAppointmentNotFound, got %v", err)
	}
	if _, ok := repo.appts["a1"]; !ok {
		t.Error("appointment must survive a foreign delete")
	}
}

func TestAppointmentService_AdminCannotMutate(t *testing.T) {
	svc := newAppointmentSvc(seededAppointments())

	if err := svc.Delete(context.Background(), admin(), "a1"); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Errorf("expected ErrAppointmentNotFound for admin delete, got %v", err)
	}
}

func TestAppointmentService_Update(t *testing.T) {
	svc := newAppointmentSvc(seededAppointments())
	ctx := context.Background()

	updated, err := svc.Update(ctx, patient("p1"), "a1", domain.AppointmentChanges{
		TimeSlot: strPtr("14:00"),
		DoctorID: strPtr("doc-2"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.TimeSlot != "14:00" || updated.DoctorID != "doc-2" {
		t.Errorf("changes not applied: %+v", updated)
	}
	if updated.PatientID != "p1" {
		t.Errorf("patient reference changed: %s", updated.PatientID)
	}

	if _, err := svc.Update(ctx, patient("p1"), "a1", domain.AppointmentChanges{}); err == nil {
		t.Error("expected error for empty changes")
	}

	_, err = svc.Update(ctx, patient("p1"), "a1", domain.AppointmentChanges{DoctorID: strPtr("doc-missing")})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for unknown doctor, got %v", err)
	}
}

func TestAppointmentService_Delete(t *testing.T) {
	repo := seededAppointments()
	svc := newAppointmentSvc(repo)

	if err := svc.Delete(context.Background(), patient("p1"), "a1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := repo.appts["a1"]; ok {
		t.Error("appointment still present after delete")
	}
	if err := svc.Delete(context.Background(), patient("p1"), "a1"); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Errorf("second delete: expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestAppointmentService_Anonymous(t *testing.T) {
	svc := newAppointmentSvc(seededAppointments())

	if _, err := svc.List(context.Background(), nil); !errors.Is(err, domain.ErrMissingToken) {
		t.Errorf("expected ErrMissingToken, got %v", err)
	}
}
