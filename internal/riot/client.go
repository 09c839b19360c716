// Package riot provides the HTTP client for the Riot Games API endpoints the
// scout consumes: account, summoner, match, league and spectator.
//
// Account and match lookups go to the regional host, summoner, league and
// spectator lookups go to the platform host. Rate limiting is handled via a
// token bucket limiter shared by both hosts.
package riot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

const (
	defaultRegionalURL = "https://americas.api.riotgames.com"
	defaultPlatformURL = "https://na1.api.riotgames.com"

	defaultTimeout     = 30 * time.Second
	defaultRetryWait   = time.Second
	maxAttempts        = 3
	errorBodyMaxLength = 200
)

// ErrNotFound is returned when the Riot API answers 404: unknown account,
// unknown match, or a summoner that is not currently in a game.
var ErrNotFound = errors.New("riot: not found")

// StatusError is returned for any non-200, non-404 response.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("riot %s returned %d: %s", e.Path, e.StatusCode, e.Body)
}

// Client is a rate-limited Riot API client.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	regionalURL string
	platformURL string
	limiter     *rate.Limiter
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithRegionalURL sets the host used for account and match lookups.
func WithRegionalURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.regionalURL = strings.TrimRight(u, "/")
		}
	}
}

// WithPlatformURL sets the host used for summoner, league and spectator lookups.
func WithPlatformURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.platformURL = strings.TrimRight(u, "/")
		}
	}
}

// WithRateLimit sets the token bucket used before every request.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *Client) {
		if requestsPerSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
}

// WithHTTPClient replaces the underlying http.Client (useful for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a Riot API client with rate limiting.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: defaultTimeout},
		apiKey:      apiKey,
		regionalURL: defaultRegionalURL,
		platformURL: defaultPlatformURL,
		limiter:     rate.NewLimiter(rate.Limit(15), 20),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// --------------------------------------------------------------------------
// Endpoints
// --------------------------------------------------------------------------

// GetAccountByRiotID resolves a Riot ID (gameName#tagLine) to an account.
func (c *Client) GetAccountByRiotID(ctx context.Context, gameName, tagLine string) (*Account, error) {
	path := fmt.Sprintf("/riot/account/v1/accounts/by-riot-id/%s/%s",
		url.PathEscape(gameName), url.PathEscape(tagLine))

	var account Account
	if err := c.getJSON(ctx, c.regionalURL, path, &account); err != nil {
		return nil, err
	}
	if account.PUUID == "" {
		return nil, fmt.Errorf("%s: empty account: %w", path, ErrNotFound)
	}
	return &account, nil
}

// GetSummonerByPUUID fetches the platform summoner record for a PUUID.
func (c *Client) GetSummonerByPUUID(ctx context.Context, puuid string) (*Summoner, error) {
	path := "/lol/summoner/v4/summoners/by-puuid/" + url.PathEscape(puuid)

	var summoner Summoner
	if err := c.getJSON(ctx, c.platformURL, path, &summoner); err != nil {
		return nil, err
	}
	return &summoner, nil
}

// GetMatchIDs fetches up to count recent match IDs for a player, newest
// first. A malformed or empty body yields an empty slice, not an error.
func (c *Client) GetMatchIDs(ctx context.Context, puuid string, count int) ([]string, error) {
	path := fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids", url.PathEscape(puuid))
	params := url.Values{}
	params.Set("start", "0")
	params.Set("count", strconv.Itoa(count))

	body, err := c.get(ctx, c.regionalURL, path+"?"+params.Encode())
	if err != nil {
		return nil, err
	}
	ids := ParseMatchIDs(body)
	if count > 0 && len(ids) > count {
		ids = ids[:count]
	}
	return ids, nil
}

// GetMatch fetches match details.
func (c *Client) GetMatch(ctx context.Context, matchID string) (*Match, error) {
	path := "/lol/match/v5/matches/" + url.PathEscape(matchID)

	var match Match
	if err := c.getJSON(ctx, c.regionalURL, path, &match); err != nil {
		return nil, err
	}
	if match.Info == nil {
		return nil, fmt.Errorf("decode %s: missing info", path)
	}
	return &match, nil
}

// GetLeagueEntries fetches all ranked queue standings for a summoner.
func (c *Client) GetLeagueEntries(ctx context.Context, summonerID string) ([]LeagueEntry, error) {
	path := "/lol/league/v4/entries/by-summoner/" + url.PathEscape(summonerID)

	var entries []LeagueEntry
	if err := c.getJSON(ctx, c.platformURL, path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetActiveGame fetches the in-progress game for a summoner. Returns an
// error wrapping ErrNotFound when the summoner is not in a game.
func (c *Client) GetActiveGame(ctx context.Context, summonerID string) (*CurrentGame, error) {
	path := "/lol/spectator/v4/active-games/by-summoner/" + url.PathEscape(summonerID)

	var game CurrentGame
	if err := c.getJSON(ctx, c.platformURL, path, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// --------------------------------------------------------------------------
// Transport
// --------------------------------------------------------------------------

func (c *Client) getJSON(ctx context.Context, baseURL, path string, out interface{}) error {
	body, err := c.get(ctx, baseURL, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// get performs a rate-limited GET request, retrying on 429.
func (c *Client) get(ctx context.Context, baseURL, path string) ([]byte, error) {
	for attempt := 1; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("X-Riot-Token", c.apiKey)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("http request %s: %w", path, err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read response body: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil

		case resp.StatusCode == http.StatusNotFound:
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)

		case resp.StatusCode == http.StatusTooManyRequests && attempt < maxAttempts:
			wait := retryAfter(resp.Header.Get("Retry-After"))
			c.logger.Warn("Riot rate limited", "path", path, "attempt", attempt, "wait", wait)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}

		default:
			return nil, &StatusError{Path: path, StatusCode: resp.StatusCode, Body: truncate(body, errorBodyMaxLength)}
		}
	}
}

func retryAfter(header string) time.Duration {
	if header == "" {
		return defaultRetryWait
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return defaultRetryWait
	}
	return time.Duration(seconds) * time.Second
}

// ParseMatchIDs decodes a match-id list leniently. A JSON array of strings
// is taken as-is; a bracketed list that fails strict decoding is split on
// commas with quotes stripped. Anything else is treated as empty.
func ParseMatchIDs(body []byte) []string {
	trimmed := strings.TrimSpace(string(body))
	if !strings.HasPrefix(trimmed, "[") {
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal([]byte(trimmed), &ids); err != nil {
		clean := strings.NewReplacer("[", "", "]", "", `"`, "").Replace(trimmed)
		ids = strings.Split(clean, ",")
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
