package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/postosaude/clinic-api/internal/api/metrics"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

// MedicationHandler handles HTTP requests for the medication inventory.
type MedicationHandler struct {
	service ports.MedicationService
}

func NewMedicationHandler(service ports.MedicationService) *MedicationHandler {
	return &MedicationHandler{service: service}
}

// --- Request types ---

type createMedicationRequest struct {
	Name        string `json:"nome"        validate:"required"`
	Type        string `json:"tipo"`
	Description string `json:"descricao"`
	FacilityID  string `json:"postoSaude"`
	Quantity    int    `json:"quantidade"  validate:"gte=0"`
}

// updateStockRequest only accepts a quantity; status is always derived.
type updateStockRequest struct {
	Quantity *int `json:"quantidade" validate:"required,gte=0"`
}

// List handles GET /medicamentos.
//
// @Summary      List medications
// @Tags         medicamentos
// @Produce      json
// @Param        nome     query     string  false  "Case-insensitive name substring"
// @Param        tipo     query     string  false  "Type"
// @Param        status   query     string  false  "disponivel, baixa or esgotado"
// @Param        postoId  query     string  false  "Health post id"
// @Success      200      {array}   domain.Medication
// @Failure      400      {object}  map[string]string
// @Router       /medicamentos [get]
func (h *MedicationHandler) List(c echo.Context) error {
	meds, err := h.service.List(c.Request().Context(), ports.MedicationFilter{
		Name:       c.QueryParam("nome"),
		Type:       c.QueryParam("tipo"),
		Status:     c.QueryParam("status"),
		FacilityID: c.QueryParam("postoId"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meds)
}

// Get handles GET /medicamentos/:id.
//
// @Summary      Get a medication
// @Tags         medicamentos
// @Produce      json
// @Param        id   path      string  true  "Medication id"
// @Success      200  {object}  domain.Medication
// @Failure      404  {object}  map[string]string
// @Router       /medicamentos/{id} [get]
func (h *MedicationHandler) Get(c echo.Context) error {
	med, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, med)
}

// Create handles POST /medicamentos.
//
// @Summary      Stock a new medication
// @Tags         medicamentos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMedicationRequest  true  "Medication"
// @Success      201   {object}  domain.Medication
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /medicamentos [post]
func (h *MedicationHandler) Create(c echo.Context) error {
	user, err := caller(c)
	if err != nil {
		return err
	}
	var req createMedicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	med, err := h.service.Create(c.Request().Context(), user, ports.CreateMedicationInput{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		FacilityID:  req.FacilityID,
		Quantity:    req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, med)
}

// UpdateQuantity handles PATCH /medicamentos/:id.
//
// @Summary      Update stock level
// @Description  Sets the quantity; the status is recomputed from it.
// @Tags         medicamentos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Medication id"
// @Param        body  body      updateStockRequest  true  "New quantity"
// @Success      200   {object}  domain.Medication
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /medicamentos/{id} [patch]
func (h *MedicationHandler) UpdateQuantity(c echo.Context) error {
	user, err := caller(c)
	if err != nil {
		return err
	}
	var req updateStockRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	med, err := h.service.UpdateQuantity(c.Request().Context(), user, c.Param("id"), *req.Quantity)
	if err != nil {
		return err
	}

	metrics.StockUpdatesTotal.WithLabelValues(string(med.Status)).Inc()
	return c.JSON(http.StatusOK, med)
}
