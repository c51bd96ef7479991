package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

type stubStockRequestService struct {
	submitFn func(ctx context.Context, caller *domain.User, in ports.StockRequestInput) (*ports.StockRequestResult, error)
	listFn   func(ctx context.Context, caller *domain.User) ([]*domain.StockRequest, error)
}

func (s *stubStockRequestService) Submit(ctx context.Context, caller *domain.User, in ports.StockRequestInput) (*ports.StockRequestResult, error) {
	return s.submitFn(ctx, caller, in)
}

func (s *stubStockRequestService) List(ctx context.Context, caller *domain.User) ([]*domain.StockRequest, error) {
	return s.listFn(ctx, caller)
}

func submitResult(duplicate bool) func(ctx context.Context, caller *domain.User, in ports.StockRequestInput) (*ports.StockRequestResult, error) {
	return func(ctx context.Context, caller *domain.User, in ports.StockRequestInput) (*ports.StockRequestResult, error) {
		return &ports.StockRequestResult{
			Request: &domain.StockRequest{
				Protocol:     "SOL-20240315-ABC123",
				UserID:       caller.ID,
				MedicationID: in.MedicationID,
				FacilityID:   in.FacilityID,
			},
			Duplicate: duplicate,
		}, nil
	}
}

func TestStockRequestHandler_Submit_Created(t *testing.T) {
	handler := NewStockRequestHandler(&stubStockRequestService{submitFn: submitResult(false)})

	c, rec := newTestContext(http.MethodPost, "/api/solicitacoes-medicamento", `{"medicamentoId":"m1","postoId":"f1"}`, patientUser())
	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	decodeBody(t, rec, &resp)
	if resp["mensagem"] != "Solicitação registrada com sucesso" || resp["protocolo"] != "SOL-20240315-ABC123" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp["medicamentoId"] != "m1" || resp["postoId"] != "f1" {
		t.Fatalf("unexpected echo of ids: %+v", resp)
	}
}

func TestStockRequestHandler_Submit_Duplicate(t *testing.T) {
	handler := NewStockRequestHandler(&stubStockRequestService{submitFn: submitResult(true)})

	c, rec := newTestContext(http.MethodPost, "/api/solicitacoes-medicamento", `{"medicamentoId":"m1","postoId":"f1"}`, patientUser())
	if err := handler.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	decodeBody(t, rec, &resp)
	if resp["mensagem"] != "Solicitação já registrada" || resp["protocolo"] != "SOL-20240315-ABC123" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestStockRequestHandler_Submit_Validation(t *testing.T) {
	stub := &stubStockRequestService{
		submitFn: func(ctx context.Context, caller *domain.User, in ports.StockRequestInput) (*ports.StockRequestResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewStockRequestHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/solicitacoes-medicamento", `{"medicamentoId":"m1"}`, patientUser())
	var verr *domain.ValidationError
	if err := handler.Submit(c); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestStockRequestHandler_Submit_ServiceError(t *testing.T) {
	stub := &stubStockRequestService{
		submitFn: func(ctx context.Context, caller *domain.User, in ports.StockRequestInput) (*ports.StockRequestResult, error) {
			return nil, domain.ErrMedicationNotFound
		},
	}
	handler := NewStockRequestHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/solicitacoes-medicamento", `{"medicamentoId":"m1","postoId":"f1"}`, patientUser())
	if err := handler.Submit(c); !errors.Is(err, domain.ErrMedicationNotFound) {
		t.Fatalf("expected ErrMedicationNotFound, got %v", err)
	}
}

func TestStockRequestHandler_List(t *testing.T) {
	stub := &stubStockRequestService{
		listFn: func(ctx context.Context, caller *domain.User) ([]*domain.StockRequest, error) {
			return []*domain.StockRequest{{ID: "r1", Protocol: "SOL-1", UserID: caller.ID}}, nil
		},
	}
	handler := NewStockRequestHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/solicitacoes-medicamento", "", patientUser())
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	decodeBody(t, rec, &resp)
	if len(resp) != 1 || resp[0]["protocolo"] != "SOL-1" || resp[0]["usuario"] != "p1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
