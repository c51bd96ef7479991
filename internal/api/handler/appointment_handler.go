package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/postosaude/clinic-api/internal/api/metrics"
	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for appointment operations.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// --- Request / Response types ---

// createAppointmentRequest has no patient or status field: both are set by
// the server whatever the client sends.
type createAppointmentRequest struct {
	DoctorID  string `json:"medicoId"`
	Date      string `json:"data"          validate:"required"`
	TimeSlot  string `json:"horario"       validate:"required"`
	Type      string `json:"tipo"          validate:"required"`
	Specialty string `json:"especialidade"`
	Notes     string `json:"observacoes"`
}

// updateAppointmentRequest lists the fields a patient may change. Absent
// fields are left untouched.
type updateAppointmentRequest struct {
	DoctorID  *string `json:"medicoId"`
	Date      *string `json:"data"`
	TimeSlot  *string `json:"horario"`
	Type      *string `json:"tipo"`
	Specialty *string `json:"especialidade"`
	Status    *string `json:"status"`
	Notes     *string `json:"observacoes"`
}

type messageResponse struct {
	Message string `json:"mensagem"`
}

// dateLayouts are the accepted encodings of an appointment date.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, domain.NewValidationError("data inválida")
}

// List handles GET /consultas.
//
// @Summary      List appointments visible to the caller
// @Tags         consultas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Appointment
// @Failure      401  {object}  map[string]string
// @Router       /consultas [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	user, err := caller(c)
	if err != nil {
		return err
	}
	appts, err := h.service.List(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appts)
}

// Get handles GET /consultas/:id.
//
// @Summary      Get an appointment
// @Tags         consultas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  domain.Appointment
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /consultas/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	user, err := caller(c)
	if err != nil {
		return err
	}
	appt, err := h.service.Get(c.Request().Context(), user, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appt)
}

// Create handles POST /consultas.
//
// @Summary      Book an appointment
// @Tags         consultas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /consultas [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	user, err := caller(c)
	if err != nil {
		return err
	}
	var req createAppointmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	appt, err := h.service.Create(c.Request().Context(), user, ports.CreateAppointmentInput{
		DoctorID:  req.DoctorID,
		Date:      date,
		TimeSlot:  req.TimeSlot,
		Type:      req.Type,
		Specialty: req.Specialty,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.AppointmentsCreatedTotal.WithLabelValues(appt.Type).Inc()
	return c.JSON(http.StatusCreated, appt)
}

// Update handles PATCH /consultas/:id.
//
// @Summary      Change an appointment
// @Description  Only the patient who booked the appointment may change it.
// @Tags         consultas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Appointment id"
// @Param        body  body      updateAppointmentRequest  true  "Fields to change"
// @Success      200   {object}  domain.Appointment
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /consultas/{id} [patch]
func (h *AppointmentHandler) Update(c echo.Context) error {
	user, err := caller(c)
	if err != nil {
		return err
	}
	var req updateAppointmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	changes := domain.AppointmentChanges{
		DoctorID:  req.DoctorID,
		TimeSlot:  req.TimeSlot,
		Type:      req.Type,
		Specialty: req.Specialty,
		Status:    req.Status,
		Notes:     req.Notes,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return err
		}
		changes.Date = &date
	}

	appt, err := h.service.Update(c.Request().Context(), user, c.Param("id"), changes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appt)
}

// Delete handles DELETE /consultas/:id.
//
// @Summary      Cancel an appointment
// @Tags         consultas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /consultas/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	user, err := caller(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Consulta cancelada com sucesso"})
}
