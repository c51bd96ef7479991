package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/postosaude/clinic-api/internal/api/middleware"
	"github.com/postosaude/clinic-api/internal/core/domain"
)

// caller returns the identity injected by the Auth middleware. A missing
// identity means the route was mounted without Auth.
func caller(c echo.Context) (*domain.User, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil, domain.ErrMissingToken
	}
	return user, nil
}

// bindAndValidate decodes the request into req and runs the registered
// validator over it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.NewValidationError("payload inválido")
	}
	return c.Validate(req)
}
