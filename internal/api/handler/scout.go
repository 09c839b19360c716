package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/riftscout/internal/api/respond"
	"github.com/albapepper/riftscout/internal/audit"
	"github.com/albapepper/riftscout/internal/discord"
	"github.com/albapepper/riftscout/internal/scout"
)

// GetScout scouts a player by Riot ID.
// @Summary Scout a player
// @Description Resolves a Riot ID and reports either the live game with each opponent's recent record, or the player's latest completed match. Each call hits the Riot API; nothing is cached.
// @Tags scout
// @Produce json
// @Param gameName path string true "Riot ID game name"
// @Param tagLine path string true "Riot ID tag line (leading # optional)"
// @Param format query string false "Response format" Enums(json, discord) default(json)
// @Param notify query bool false "Also post the result to the configured Discord webhook"
// @Success 200 {object} scout.Report
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Failure 504 {object} respond.ErrorResponse
// @Router /api/v1/scout/{gameName}/{tagLine} [get]
func (h *Handler) GetScout(w http.ResponseWriter, r *http.Request) {
	gameName := chi.URLParam(r, "gameName")
	tagLine := chi.URLParam(r, "tagLine")
	format := r.URL.Query().Get("format")
	notify, _ := strconv.ParseBool(r.URL.Query().Get("notify"))

	if format != "" && format != "json" && format != "discord" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_FORMAT", "format must be 'json' or 'discord'")
		return
	}
	if notify && !h.webhook.Enabled() {
		respond.WriteError(w, http.StatusBadRequest, "WEBHOOK_NOT_CONFIGURED", "notify requires DISCORD_WEBHOOK_URL")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.ScoutTimeout)
	defer cancel()

	start := time.Now()
	report, err := h.scout.Scout(ctx, gameName, tagLine)
	elapsed := time.Since(start)

	_ = h.audit.Record(r.Context(), audit.NewEntry(gameName, tagLine, report, err, elapsed))

	var payload discord.WebhookPayload
	if err != nil {
		payload = discord.NewErrorPayload(scout.UserMessage(err))
	} else {
		payload = discord.NewReportPayload(report, time.Now())
	}
	if notify {
		if sendErr := h.webhook.Send(r.Context(), payload); sendErr != nil {
			h.logger.Warn("Webhook delivery failed", "game_name", gameName, "error", sendErr)
			// Upstream error text stays in the logs in production
			detail := sendErr.Error()
			if h.cfg.IsProduction() {
				detail = ""
			}
			respond.WriteErrorDetail(w, http.StatusBadGateway, "WEBHOOK_FAILED",
				"Scout finished but the Discord webhook rejected it", detail)
			return
		}
	}

	if err != nil {
		status, code := scoutErrorStatus(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("Scout failed", "game_name", gameName, "tag_line", tagLine, "error", err)
		}
		respond.WriteError(w, status, code, scout.UserMessage(err))
		return
	}

	if format == "discord" {
		respond.WriteFresh(w, payload)
		return
	}
	respond.WriteFresh(w, report)
}

// scoutErrorStatus maps a pipeline error to an HTTP status and error code.
func scoutErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, scout.ErrInvalidRiotID):
		return http.StatusBadRequest, "INVALID_RIOT_ID"
	case errors.Is(err, scout.ErrNotFound):
		return http.StatusNotFound, "ACCOUNT_NOT_FOUND"
	case errors.Is(err, scout.ErrNoRecentMatches):
		return http.StatusNotFound, "NO_RECENT_MATCHES"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "SCOUT_TIMEOUT"
	default:
		return http.StatusBadGateway, "SCOUT_FAILED"
	}
}

// GetScoutHistory lists recent scout requests from the audit log.
// @Summary Recent scout requests
// @Description Returns the latest scout requests (who was scouted, outcome, duration). Requires DATABASE_URL.
// @Tags scout
// @Produce json
// @Param limit query int false "Max entries (1-500, default 50)"
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} respond.ErrorResponse
// @Router /api/v1/scout/history [get]
func (h *Handler) GetScoutHistory(w http.ResponseWriter, r *http.Request) {
	if !h.audit.Enabled() {
		respond.WriteError(w, http.StatusServiceUnavailable, "AUDIT_DISABLED", "Audit log requires DATABASE_URL")
		return
	}

	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n >= 1 && n <= 500 {
			limit = n
		}
	}

	entries, err := h.audit.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to read audit log", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "AUDIT_READ_FAILED", "Could not read scout history")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
		"count":   len(entries),
	})
}
