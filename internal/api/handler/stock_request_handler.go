package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/postosaude/clinic-api/internal/api/metrics"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

// StockRequestHandler handles medication requests placed by patients.
type StockRequestHandler struct {
	service ports.StockRequestService
}

// NewStockRequestHandler creates a StockRequestHandler backed by service.
func NewStockRequestHandler(service ports.StockRequestService) *StockRequestHandler {
	return &StockRequestHandler{service: service}
}

type stockRequestRequest struct {
	MedicationID string `json:"medicamentoId" validate:"required"`
	FacilityID   string `json:"postoId"       validate:"required"`
}

type stockRequestResponse struct {
	Message      string `json:"mensagem"`
	Protocol     string `json:"protocolo"`
	MedicationID string `json:"medicamentoId"`
	FacilityID   string `json:"postoId"`
}

// Submit handles POST /solicitacoes-medicamento. A repeat of the same
// request inside the dedup window returns 200 with the first protocol.
//
// @Summary      Request a medication
// @Tags         solicitacoes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      stockRequestRequest  true  "Medication and health post"
// @Success      201   {object}  stockRequestResponse
// @Success      200   {object}  stockRequestResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /solicitacoes-medicamento [post]
func (h *StockRequestHandler) Submit(c echo.Context) error {
	user, err := caller(c)
	if err != nil {
		return err
	}
	var req stockRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.service.Submit(c.Request().Context(), user, ports.StockRequestInput{
		MedicationID: req.MedicationID,
		FacilityID:   req.FacilityID,
	})
	if err != nil {
		return err
	}

	resp := stockRequestResponse{
		Message:      "Solicitação registrada com sucesso",
		Protocol:     res.Request.Protocol,
		MedicationID: res.Request.MedicationID,
		FacilityID:   res.Request.FacilityID,
	}
	if res.Duplicate {
		metrics.StockRequestsTotal.WithLabelValues("duplicate").Inc()
		resp.Message = "Solicitação já registrada"
		return c.JSON(http.StatusOK, resp)
	}

	metrics.StockRequestsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, resp)
}

// List handles GET /solicitacoes-medicamento.
//
// @Summary      List medication requests
// @Tags         solicitacoes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.StockRequest
// @Failure      401  {object}  map[string]string
// @Router       /solicitacoes-medicamento [get]
func (h *StockRequestHandler) List(c echo.Context) error {
	user, err := caller(c)
	if err != nil {
		return err
	}
	reqs, err := h.service.List(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reqs)
}
