// Package handler provides HTTP handlers for all API endpoints.
// Handlers call the scout pipeline directly; there is no service layer.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/riftscout/internal/api/respond"
	"github.com/albapepper/riftscout/internal/audit"
	"github.com/albapepper/riftscout/internal/config"
	"github.com/albapepper/riftscout/internal/discord"
	"github.com/albapepper/riftscout/internal/scout"
)

// Scouter runs one scout. *scout.Scout satisfies it.
type Scouter interface {
	Scout(ctx context.Context, gameName, tagLine string) (*scout.Report, error)
}

// VersionSource exposes the current content version. *ddragon.Store
// satisfies it.
type VersionSource interface {
	Version() string
}

// HealthChecker verifies database connectivity. *db.Pool satisfies it.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Deps are the collaborators a Handler needs. DB, Audit and Webhook may be
// nil when the matching feature is not configured.
type Deps struct {
	Scout    Scouter
	Versions VersionSource
	DB       HealthChecker
	Audit    *audit.Store
	Webhook  *discord.WebhookClient
	Logger   *slog.Logger
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	scout    Scouter
	versions VersionSource
	db       HealthChecker
	audit    *audit.Store
	webhook  *discord.WebhookClient
	cfg      *config.Config
	logger   *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(deps Deps, cfg *config.Config) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		scout:    deps.Scout,
		versions: deps.Versions,
		db:       deps.DB,
		audit:    deps.Audit,
		webhook:  deps.Webhook,
		cfg:      cfg,
		logger:   logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, and enabled features.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Riftscout API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"features": map[string]bool{
			"audit_log":       h.audit.Enabled(),
			"discord_webhook": h.webhook.Enabled(),
		},
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Description Verifies Postgres connectivity for the audit log.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "disabled",
			"database":  "not configured",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	if err := h.db.HealthCheck(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetContentVersion returns the Data Dragon version used for asset links.
// @Summary Current content version
// @Description Returns the Data Dragon version used to build champion and profile icon URLs.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/content-version [get]
func (h *Handler) GetContentVersion(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]string{
		"version": h.versions.Version(),
	})
}
