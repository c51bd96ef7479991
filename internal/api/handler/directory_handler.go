package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/postosaude/clinic-api/internal/core/ports"
)

// DirectoryHandler serves the public doctor and health post listings.
type DirectoryHandler struct {
	service ports.DirectoryService
}

func NewDirectoryHandler(service ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// ListDoctors handles GET /medicos.
//
// @Summary      List doctors
// @Tags         medicos
// @Produce      json
// @Param        especialidade  query     string  false  "Specialty"
// @Success      200            {array}   domain.Doctor
// @Router       /medicos [get]
func (h *DirectoryHandler) ListDoctors(c echo.Context) error {
	doctors, err := h.service.ListDoctors(c.Request().Context(), c.QueryParam("especialidade"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}

// GetDoctor handles GET /medicos/:id.
//
// @Summary      Get a doctor
// @Tags         medicos
// @Produce      json
// @Param        id   path      string  true  "Doctor id"
// @Success      200  {object}  domain.Doctor
// @Failure      404  {object}  map[string]string
// @Router       /medicos/{id} [get]
func (h *DirectoryHandler) GetDoctor(c echo.Context) error {
	doctor, err := h.service.GetDoctor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctor)
}

// ListFacilities handles GET /postos.
//
// @Summary      List health posts
// @Tags         postos
// @Produce      json
// @Param        bairro  query     string  false  "Neighborhood"
// @Success      200     {array}   domain.Facility
// @Router       /postos [get]
func (h *DirectoryHandler) ListFacilities(c echo.Context) error {
	facilities, err := h.service.ListFacilities(c.Request().Context(), c.QueryParam("bairro"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, facilities)
}

// GetFacility handles GET /postos/:id.
//
// @Summary      Get a health post
// @Tags         postos
// @Produce      json
// @Param        id   path      string  true  "Health post id"
// @Success      200  {object}  domain.Facility
// @Failure      404  {object}  map[string]string
// @Router       /postos/{id} [get]
func (h *DirectoryHandler) GetFacility(c echo.Context) error {
	facility, err := h.service.GetFacility(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, facility)
}
