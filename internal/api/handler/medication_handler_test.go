package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

type stubMedicationService struct {
	listFn   func(ctx context.Context, f ports.MedicationFilter) ([]*domain.Medication, error)
	getFn    func(ctx context.Context, id string) (*domain.Medication, error)
	createFn func(ctx context.Context, caller *domain.User, in ports.CreateMedicationInput) (*domain.Medication, error)
	updateFn func(ctx context.Context, caller *domain.User, id string, quantity int) (*domain.Medication, error)
}

func (s *stubMedicationService) List(ctx context.Context, f ports.MedicationFilter) ([]*domain.Medication, error) {
	return s.listFn(ctx, f)
}

func (s *stubMedicationService) Get(ctx context.Context, id string) (*domain.Medication, error) {
	return s.getFn(ctx, id)
}

func (s *stubMedicationService) Create(ctx context.Context, caller *domain.User, in ports.CreateMedicationInput) (*domain.Medication, error) {
	return s.createFn(ctx, caller, in)
}

func (s *stubMedicationService) UpdateQuantity(ctx context.Context, caller *domain.User, id string, quantity int) (*domain.Medication, error) {
	return s.updateFn(ctx, caller, id, quantity)
}

func TestMedicationHandler_List_PassesQueryFilters(t *testing.T) {
	var got ports.MedicationFilter
	stub := &stubMedicationService{
		listFn: func(ctx context.Context, f ports.MedicationFilter) ([]*domain.Medication, error) {
			got = f
			return []*domain.Medication{{ID: "m1", Name: "Dipirona 500mg", Status: domain.StockLow}}, nil
		},
	}
	handler := NewMedicationHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/medicamentos?nome=dipi&tipo=Analgesico&status=baixa&postoId=f1", "", nil)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	want := ports.MedicationFilter{Name: "dipi", Type: "Analgesico", Status: "baixa", FacilityID: "f1"}
	if got != want {
		t.Fatalf("expected filter %+v, got %+v", want, got)
	}

	var resp []map[string]any
	decodeBody(t, rec, &resp)
	if len(resp) != 1 || resp[0]["status"] != "baixa" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestMedicationHandler_UpdateQuantity(t *testing.T) {
	stub := &stubMedicationService{
		updateFn: func(ctx context.Context, caller *domain.User, id string, quantity int) (*domain.Medication, error) {
			if id != "m1" || quantity != 5 {
				t.Fatalf("unexpected args: %s %d", id, quantity)
			}
			return &domain.Medication{ID: id, Quantity: quantity, Status: domain.DeriveStockStatus(quantity)}, nil
		},
	}
	handler := NewMedicationHandler(stub)

	c, rec := newTestContext(http.MethodPatch, "/api/medicamentos/m1", `{"quantidade":5,"status":"disponivel"}`, patientUser())
	c.SetParamNames("id")
	c.SetParamValues("m1")

	if err := handler.UpdateQuantity(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	decodeBody(t, rec, &resp)
	if resp["status"] != "baixa" {
		t.Fatalf("expected derived status baixa, got %v", resp["status"])
	}
}

func TestMedicationHandler_UpdateQuantity_Validation(t *testing.T) {
	stub := &stubMedicationService{
		updateFn: func(ctx context.Context, caller *domain.User, id string, quantity int) (*domain.Medication, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewMedicationHandler(stub)

	for _, body := range []string{`{}`, `{"quantidade":-1}`, `{"status":"esgotado"}`} {
		c, _ := newTestContext(http.MethodPatch, "/api/medicamentos/m1", body, patientUser())
		c.SetParamNames("id")
		c.SetParamValues("m1")

		var verr *domain.ValidationError
		if err := handler.UpdateQuantity(c); !errors.As(err, &verr) {
			t.Errorf("body %s: expected ValidationError, got %v", body, err)
		}
	}
}

func TestMedicationHandler_UpdateQuantity_Zero(t *testing.T) {
	stub := &stubMedicationService{
		updateFn: func(ctx context.Context, caller *domain.User, id string, quantity int) (*domain.Medication, error) {
			return &domain.Medication{ID: id, Quantity: quantity, Status: domain.DeriveStockStatus(quantity)}, nil
		},
	}
	handler := NewMedicationHandler(stub)

	c, rec := newTestContext(http.MethodPatch, "/api/medicamentos/m1", `{"quantidade":0}`, patientUser())
	c.SetParamNames("id")
	c.SetParamValues("m1")

	if err := handler.UpdateQuantity(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	decodeBody(t, rec, &resp)
	if resp["status"] != "esgotado" {
		t.Fatalf("expected esgotado, got %v", resp["status"])
	}
}

func TestMedicationHandler_Create(t *testing.T) {
	stub := &stubMedicationService{
		createFn: func(ctx context.Context, caller *domain.User, in ports.CreateMedicationInput) (*domain.Medication, error) {
			if in.Name != "Amoxicilina 500mg" || in.FacilityID != "f1" || in.Quantity != 50 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Medication{ID: "m2", Name: in.Name, Quantity: in.Quantity, Status: domain.DeriveStockStatus(in.Quantity)}, nil
		},
	}
	handler := NewMedicationHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/medicamentos",
		`{"nome":"Amoxicilina 500mg","tipo":"Antibiótico","postoSaude":"f1","quantidade":50}`, patientUser())
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestMedicationHandler_Get_NotFound(t *testing.T) {
	stub := &stubMedicationService{
		getFn: func(ctx context.Context, id string) (*domain.Medication, error) {
			return nil, domain.ErrMedicationNotFound
		},
	}
	handler := NewMedicationHandler(stub)

	c, _ := newTestContext(http.MethodGet, "/api/medicamentos/nope", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	if err := handler.Get(c); !errors.Is(err, domain.ErrMedicationNotFound) {
		t.Fatalf("expected ErrMedicationNotFound, got %v", err)
	}
}
