package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	apiVersion   = "1.0.0"
	probeTimeout = 3 * time.Second

	dbConnected    = "Conectado"
	dbDisconnected = "Desconectado"
)

var errNotConfigured = errors.New("not configured")

// PingFunc reports whether a dependency is reachable.
type PingFunc func(ctx context.Context) error

// MongoPing pings the primary of client.
func MongoPing(client *mongo.Client) PingFunc {
	return func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	}
}

// RedisPing pings client. A nil client yields a nil PingFunc, which the
// readiness probe reports as disabled.
func RedisPing(client *redis.Client) PingFunc {
	if client == nil {
		return nil
	}
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

// HealthHandler serves the API banner and the liveness and readiness probes.
type HealthHandler struct {
	mongo PingFunc
	redis PingFunc
	now   func() time.Time
}

func NewHealthHandler(mongo, redis PingFunc) *HealthHandler {
	return &HealthHandler{mongo: mongo, redis: redis, now: time.Now}
}

type bannerResponse struct {
	Message  string `json:"mensagem"`
	Version  string `json:"versao"`
	Database string `json:"database"`
}

type livenessResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Banner handles GET /api.
func (h *HealthHandler) Banner(c echo.Context) error {
	return c.JSON(http.StatusOK, bannerResponse{
		Message:  "API do Sistema de Saúde - FUNCIONANDO!",
		Version:  apiVersion,
		Database: h.databaseState(c.Request().Context()),
	})
}

// Liveness handles GET /api/health. It always answers 200; the database
// field reports the Mongo connection state.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, livenessResponse{
		Status:    "OK",
		Timestamp: h.now().UTC(),
		Database:  h.databaseState(c.Request().Context()),
	})
}

// Readiness handles GET /api/health/ready. Mongo is required; Redis only
// when it was configured.
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), probeTimeout)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	if err := ping(ctx, h.mongo); err != nil {
		deps["mongodb"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["mongodb"] = dependencyStatus{Status: "ok"}
	}

	if h.redis == nil {
		deps["redis"] = dependencyStatus{Status: "disabled"}
	} else if err := h.redis(ctx); err != nil {
		deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["redis"] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}

func (h *HealthHandler) databaseState(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := ping(ctx, h.mongo); err != nil {
		return dbDisconnected
	}
	return dbConnected
}

func ping(ctx context.Context, fn PingFunc) error {
	if fn == nil {
		return errNotConfigured
	}
	return fn(ctx)
}
