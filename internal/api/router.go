package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/postosaude/clinic-api/internal/api/handler"
	"github.com/postosaude/clinic-api/internal/api/metrics"
	"github.com/postosaude/clinic-api/internal/api/middleware"
	"github.com/postosaude/clinic-api/internal/core/domain"
	"github.com/postosaude/clinic-api/internal/core/ports"
	"github.com/postosaude/clinic-api/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Auth          ports.AuthService
	Authenticator ports.Authenticator
	Users         ports.UserService
	Directory     ports.DirectoryService
	Medications   ports.MedicationService
	Appointments  ports.AppointmentService
	StockRequests ports.StockRequestService
	Dashboard     ports.DashboardService
	Health        *handlers.HealthHandler

	// AllowedOrigins is the CORS allow list; nil allows any origin.
	AllowedOrigins []string
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: corsOrigins(deps.AllowedOrigins),
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderXRequestID},
	}))
	e.Use(metrics.Middleware())

	// --- Operational endpoints ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authenticated := middleware.Auth(deps.Authenticator)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	api := e.Group("/api")

	// --- Health probes (no auth required) ---
	api.GET("", deps.Health.Banner)
	api.GET("/health", deps.Health.Liveness)
	api.GET("/health/ready", deps.Health.Readiness)

	// --- Auth ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	api.POST("/auth/registro", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// --- Users ---
	userHandler := handler.NewUserHandler(deps.Users)
	api.GET("/usuarios", userHandler.List, authenticated, adminOnly)
	api.GET("/usuarios/me", userHandler.Me, authenticated)
	api.GET("/usuarios/:id", userHandler.Get, authenticated, adminOnly)

	// --- Doctors and health posts (public) ---
	directoryHandler := handler.NewDirectoryHandler(deps.Directory)
	api.GET("/medicos", directoryHandler.ListDoctors)
	api.GET("/medicos/:id", directoryHandler.GetDoctor)
	api.GET("/postos", directoryHandler.ListFacilities)
	api.GET("/postos/:id", directoryHandler.GetFacility)

	// --- Medications ---
	medicationHandler := handler.NewMedicationHandler(deps.Medications)
	api.GET("/medicamentos", medicationHandler.List)
	api.GET("/medicamentos/:id", medicationHandler.Get)
	api.POST("/medicamentos", medicationHandler.Create, authenticated)
	api.PATCH("/medicamentos/:id", medicationHandler.UpdateQuantity, authenticated)

	// --- Appointments ---
	appointmentHandler := handler.NewAppointmentHandler(deps.Appointments)
	consultas := api.Group("/consultas", authenticated)
	consultas.GET("", appointmentHandler.List)
	consultas.POST("", appointmentHandler.Create)
	consultas.GET("/:id", appointmentHandler.Get)
	consultas.PATCH("/:id", appointmentHandler.Update)
	consultas.DELETE("/:id", appointmentHandler.Delete)

	// --- Medication requests ---
	stockRequestHandler := handler.NewStockRequestHandler(deps.StockRequests)
	api.POST("/solicitacoes-medicamento", stockRequestHandler.Submit, authenticated)
	api.GET("/solicitacoes-medicamento", stockRequestHandler.List, authenticated)

	// --- Dashboard ---
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)
	api.GET("/stats/dashboard", dashboardHandler.Stats, authenticated)

	return e
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// requestLogger emits one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= http.StatusInternalServerError {
				evt = log.Warn()
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
