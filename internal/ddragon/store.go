// Package ddragon tracks the current Data Dragon content version and builds
// static asset URLs (champion squares, profile icons) from it.
package ddragon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

const defaultBaseURL = "https://ddragon.leagueoflegends.com"

// Store holds the process-wide content version. Readers never block; a
// refresh swaps in a new value and a failed refresh leaves the old one.
type Store struct {
	baseURL    string
	httpClient *http.Client
	version    atomic.Pointer[string]
}

// NewStore creates a Store seeded with the fallback version.
func NewStore(baseURL, fallback string) *Store {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	s := &Store{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	s.version.Store(&fallback)
	return s
}

// Version returns the current content version.
func (s *Store) Version() string {
	return *s.version.Load()
}

// Refresh fetches versions.json and stores its first entry. On any error the
// previous version stays in place.
func (s *Store) Refresh(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/versions.json", nil)
	if err != nil {
		return s.Version(), fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return s.Version(), fmt.Errorf("fetch versions: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return s.Version(), fmt.Errorf("read versions: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return s.Version(), fmt.Errorf("versions.json returned %d", resp.StatusCode)
	}

	var versions []string
	if err := json.Unmarshal(body, &versions); err != nil {
		return s.Version(), fmt.Errorf("decode versions: %w", err)
	}
	if len(versions) == 0 || strings.TrimSpace(versions[0]) == "" {
		return s.Version(), fmt.Errorf("versions.json is empty")
	}

	latest := strings.TrimSpace(versions[0])
	s.version.Store(&latest)
	return latest, nil
}

// ChampionIconURL returns the square portrait URL for a champion. Asset file
// names drop the spaces found in some display names.
func (s *Store) ChampionIconURL(championName string) string {
	name := strings.ReplaceAll(championName, " ", "")
	return fmt.Sprintf("%s/cdn/%s/img/champion/%s.png", s.baseURL, s.Version(), name)
}

// ProfileIconURL returns the summoner profile icon URL.
func (s *Store) ProfileIconURL(iconID int) string {
	return s.baseURL + "/cdn/" + s.Version() + "/img/profileicon/" + strconv.Itoa(iconID) + ".png"
}
