package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

type stubDirectoryService struct {
	doctors    []*domain.Doctor
	facilities []*domain.Facility
	lastQuery  string
}

var _ ports.DirectoryService = (*stubDirectoryService)(nil)

func (s *stubDirectoryService) ListDoctors(ctx context.Context, specialty string) ([]*domain.Doctor, error) {
	s.lastQuery = specialty
	return s.doctors, nil
}

func (s *stubDirectoryService) GetDoctor(ctx context.Context, id string) (*domain.Doctor, error) {
	for _, d := range s.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, domain.ErrDoctorNotFound
}

func (s *stubDirectoryService) ListFacilities(ctx context.Context, neighborhood string) ([]*domain.Facility, error) {
	s.lastQuery = neighborhood
	return s.facilities, nil
}

func (s *stubDirectoryService) GetFacility(ctx context.Context, id string) (*domain.Facility, error) {
	for _, f := range s.facilities {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, domain.ErrFacilityNotFound
}

func newStubDirectory() *stubDirectoryService {
	return &stubDirectoryService{
		doctors: []*domain.Doctor{{
			ID:        "d1",
			UserID:    "u1",
			User:      &domain.DoctorContact{ID: "u1", Name: "Dr. João Santos", Email: "joao@email.com"},
			Specialty: "Clínico Geral",
			License:   "CRM-SP 123456",
		}},
		facilities: []*domain.Facility{{ID: "f1", Name: "UBS Vila Mariana", Neighborhood: "Vila Mariana"}},
	}
}

func TestDirectoryHandler_ListDoctors(t *testing.T) {
	stub := newStubDirectory()
	handler := NewDirectoryHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/medicos?especialidade=Cardiologia", "", nil)
	if err := handler.ListDoctors(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.lastQuery != "Cardiologia" {
		t.Fatalf("expected specialty filter, got %q", stub.lastQuery)
	}

	var resp []map[string]any
	decodeBody(t, rec, &resp)
	if len(resp) != 1 || resp[0]["crm"] != "CRM-SP 123456" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	contact, ok := resp[0]["usuario"].(map[string]any)
	if !ok || contact["nome"] != "Dr. João Santos" {
		t.Fatalf("expected populated usuario, got %+v", resp[0]["usuario"])
	}
	if _, leaked := contact["senha"]; leaked {
		t.Fatal("doctor contact must not expose password")
	}
}

func TestDirectoryHandler_GetDoctor_NotFound(t *testing.T) {
	handler := NewDirectoryHandler(newStubDirectory())

	c, _ := newTestContext(http.MethodGet, "/api/medicos/zz", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("zz")

	if err := handler.GetDoctor(c); !errors.Is(err, domain.ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestDirectoryHandler_Facilities(t *testing.T) {
	stub := newStubDirectory()
	handler := NewDirectoryHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/postos?bairro=Vila%20Mariana", "", nil)
	if err := handler.ListFacilities(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.lastQuery != "Vila Mariana" {
		t.Fatalf("expected bairro filter, got %q", stub.lastQuery)
	}
	var list []map[string]any
	decodeBody(t, rec, &list)
	if len(list) != 1 || list[0]["nome"] != "UBS Vila Mariana" {
		t.Fatalf("unexpected payload: %+v", list)
	}

	c, rec = newTestContext(http.MethodGet, "/api/postos/f1", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("f1")
	if err := handler.GetFacility(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
