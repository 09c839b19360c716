package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/riftscout/internal/api/respond"
	"github.com/albapepper/riftscout/internal/config"
	"github.com/albapepper/riftscout/internal/discord"
	"github.com/albapepper/riftscout/internal/scout"
)

type fakeScouter struct {
	report   *scout.Report
	err      error
	gotName  string
	gotTag   string
	deadline bool
}

func (f *fakeScouter) Scout(ctx context.Context, gameName, tagLine string) (*scout.Report, error) {
	f.gotName, f.gotTag = gameName, tagLine
	_, f.deadline = ctx.Deadline()
	return f.report, f.err
}

type fixedVersion string

func (v fixedVersion) Version() string { return string(v) }

type fakeDB struct{ err error }

func (f fakeDB) HealthCheck(context.Context) error { return f.err }

func newTestRouter(deps Deps) http.Handler {
	return newTestRouterWithConfig(deps, &config.Config{ScoutTimeout: 5 * time.Second})
}

func newTestRouterWithConfig(deps Deps, cfg *config.Config) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if deps.Versions == nil {
		deps.Versions = fixedVersion("14.20.1")
	}
	h := New(deps, cfg)

	r := chi.NewRouter()
	r.Get("/health/db", h.HealthCheckDB)
	r.Get("/api/v1/content-version", h.GetContentVersion)
	r.Get("/api/v1/scout/history", h.GetScoutHistory)
	r.Get("/api/v1/scout/{gameName}/{tagLine}", h.GetScout)
	return r
}

func liveReport() *scout.Report {
	return &scout.Report{
		Kind:   scout.KindLive,
		Player: scout.PlayerIdentity{GameName: "Tester", TagLine: "NA1", PUUID: "me"},
		Live: &scout.LiveReport{
			SelfRank:  "GOLD II",
			Opponents: []scout.OpponentRecord{{DisplayName: "Enemy#NA1", Wins: 3, Losses: 1}},
		},
	}
}

func TestGetScout_JSON(t *testing.T) {
	fs := &fakeScouter{report: liveReport()}
	srv := httptest.NewServer(newTestRouter(Deps{Scout: fs}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/scout/Hide%20on%20bush/KR1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if fs.gotName != "Hide on bush" || fs.gotTag != "KR1" {
		t.Errorf("scout called with %q %q", fs.gotName, fs.gotTag)
	}
	if !fs.deadline {
		t.Error("scout context should carry a deadline")
	}
	if cc := resp.Header.Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", cc)
	}

	var got scout.Report
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Kind != scout.KindLive || got.Live == nil || got.Live.SelfRank != "GOLD II" {
		t.Errorf("report = %+v", got)
	}
}

func TestGetScout_DiscordFormat(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(Deps{Scout: &fakeScouter{report: liveReport()}}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/scout/Tester/NA1?format=discord")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var payload discord.WebhookPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Embeds) != 1 || payload.Embeds[0].Title != "Details for Tester (GOLD II)" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestGetScout_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
		msg    string
	}{
		{"not found", fmt.Errorf("%w: x#y", scout.ErrNotFound), http.StatusNotFound, "ACCOUNT_NOT_FOUND", "Account not found"},
		{"no matches", scout.ErrNoRecentMatches, http.StatusNotFound, "NO_RECENT_MATCHES", "No recent matches found."},
		{"invalid", scout.ErrInvalidRiotID, http.StatusBadRequest, "INVALID_RIOT_ID", "Please provide a Riot ID as Name#Tag."},
		{"timeout", fmt.Errorf("%w: %w", scout.ErrPipelineAborted, context.DeadlineExceeded), http.StatusGatewayTimeout, "SCOUT_TIMEOUT", "Error: scout timed out, try again shortly."},
		{"aborted", fmt.Errorf("%w: %w", scout.ErrPipelineAborted, errors.New("boom")), http.StatusBadGateway, "SCOUT_FAILED", "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(newTestRouter(Deps{Scout: &fakeScouter{err: tt.err}}))
			defer srv.Close()

			resp, err := http.Get(srv.URL + "/api/v1/scout/Tester/NA1")
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var body respond.ErrorResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error.Code != tt.code || body.Error.Message != tt.msg {
				t.Errorf("error = %+v, want %s / %q", body.Error, tt.code, tt.msg)
			}
		})
	}
}

func TestGetScout_InvalidFormat(t *testing.T) {
	fs := &fakeScouter{report: liveReport()}
	srv := httptest.NewServer(newTestRouter(Deps{Scout: fs}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/scout/Tester/NA1?format=xml")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if fs.gotName != "" {
		t.Error("scout should not run for an invalid format")
	}
}

func TestGetScout_NotifyWithoutWebhook(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(Deps{Scout: &fakeScouter{report: liveReport()}}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/scout/Tester/NA1?notify=true")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetScout_NotifyPostsWebhook(t *testing.T) {
	var posted atomic.Int32
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posted.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer hook.Close()

	deps := Deps{
		Scout:   &fakeScouter{err: fmt.Errorf("%w: x#y", scout.ErrNotFound)},
		Webhook: discord.NewWebhookClient(hook.URL),
	}
	srv := httptest.NewServer(newTestRouter(deps))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/scout/Tester/NA1?notify=1")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if posted.Load() != 1 {
		t.Errorf("webhook posts = %d, want 1 (errors are delivered too)", posted.Load())
	}
}

func TestGetScoutHistory_Disabled(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(Deps{Scout: &fakeScouter{}}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/scout/history")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}

func TestGetContentVersion(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(Deps{Scout: &fakeScouter{}}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/content-version")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["version"] != "14.20.1" {
		t.Errorf("version = %q, want 14.20.1", body["version"])
	}
}

func TestHealthCheckDB(t *testing.T) {
	tests := []struct {
		name   string
		db     HealthChecker
		status int
	}{
		{"not configured", nil, http.StatusServiceUnavailable},
		{"healthy", fakeDB{}, http.StatusOK},
		{"unreachable", fakeDB{err: errors.New("dial tcp")}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestRouter(Deps{Scout: &fakeScouter{}, DB: tt.db}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/db", nil))
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestGetScout_WebhookFailureDetail(t *testing.T) {
	hook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer hook.Close()

	tests := []struct {
		environment string
		wantDetail  bool
	}{
		{"development", true},
		{"production", false},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			deps := Deps{
				Scout:   &fakeScouter{report: liveReport()},
				Webhook: discord.NewWebhookClient(hook.URL),
			}
			cfg := &config.Config{ScoutTimeout: 5 * time.Second, Environment: tt.environment}

			rec := httptest.NewRecorder()
			newTestRouterWithConfig(deps, cfg).ServeHTTP(rec,
				httptest.NewRequest(http.MethodGet, "/api/v1/scout/Tester/NA1?notify=true", nil))

			if rec.Code != http.StatusBadGateway {
				t.Fatalf("status = %d, want 502", rec.Code)
			}
			var body respond.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error.Code != "WEBHOOK_FAILED" {
				t.Errorf("code = %q, want WEBHOOK_FAILED", body.Error.Code)
			}
			if got := body.Error.Detail != ""; got != tt.wantDetail {
				t.Errorf("detail = %q, want present=%v", body.Error.Detail, tt.wantDetail)
			}
		})
	}
}
