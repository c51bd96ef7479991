package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/postosaude/clinic-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Details
// is only set on internal errors.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"detalhes,omitempty"`
}

// knownErrors maps domain sentinels to their status and client message.
var knownErrors = []struct {
	err    error
	status int
	msg    string
}{
	{domain.ErrMissingToken, http.StatusUnauthorized, "Token não fornecido"},
	{domain.ErrInvalidToken, http.StatusUnauthorized, "Token inválido"},
	{domain.ErrUnknownIdentity, http.StatusUnauthorized, "Usuário não encontrado"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Email ou senha incorretos"},
	{domain.ErrForbidden, http.StatusForbidden, "Acesso negado. Requer permissão de administrador."},
	{domain.ErrEmailTaken, http.StatusBadRequest, "Email já cadastrado"},
	{domain.ErrUserNotFound, http.StatusNotFound, "Usuário não encontrado"},
	{domain.ErrDoctorNotFound, http.StatusNotFound, "Médico não encontrado"},
	{domain.ErrFacilityNotFound, http.StatusNotFound, "Posto não encontrado"},
	{domain.ErrMedicationNotFound, http.StatusNotFound, "Medicamento não encontrado"},
	{domain.ErrAppointmentNotFound, http.StatusNotFound, "Consulta não encontrada"},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors and reports them to Sentry when it is configured.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			log.Debug().Err(he.Internal).Str("path", c.Path()).Msg("request rejected")
		}
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, errorResponse{Error: verr.Message}
	}

	for _, k := range knownErrors {
		if errors.Is(err, k.err) {
			return k.status, errorResponse{Error: k.msg}
		}
	}

	// Unexpected error: log the real cause and surface it as detail.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("method", c.Request().Method)
		scope.SetTag("route", c.Path())
		sentry.CaptureException(err)
	})

	return http.StatusInternalServerError, errorResponse{
		Error:   "Erro interno do servidor",
		Details: err.Error(),
	}
}
