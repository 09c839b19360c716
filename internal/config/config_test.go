package config

import (
	"testing"
	"time"
)

func TestLoad_RequiresRiotKey(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when RIOT_API_KEY is empty")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("API_PORT", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RiotRegionalURL != DefaultRegionalURL {
		t.Errorf("RiotRegionalURL = %q, want %q", cfg.RiotRegionalURL, DefaultRegionalURL)
	}
	if cfg.RiotPlatformURL != DefaultPlatformURL {
		t.Errorf("RiotPlatformURL = %q, want %q", cfg.RiotPlatformURL, DefaultPlatformURL)
	}
	if cfg.DDragonURL != DefaultDDragonURL {
		t.Errorf("DDragonURL = %q, want %q", cfg.DDragonURL, DefaultDDragonURL)
	}
	if cfg.ScoutMatchCount != 10 {
		t.Errorf("ScoutMatchCount = %d, want 10", cfg.ScoutMatchCount)
	}
	if cfg.ScoutMaxConcurrentOpponents != 5 {
		t.Errorf("ScoutMaxConcurrentOpponents = %d, want 5", cfg.ScoutMaxConcurrentOpponents)
	}
	if cfg.APIPort != 8000 {
		t.Errorf("APIPort = %d, want 8000 (PORT default)", cfg.APIPort)
	}
	if cfg.VersionRefreshInterval != time.Hour {
		t.Errorf("VersionRefreshInterval = %v, want 1h", cfg.VersionRefreshInterval)
	}
	if cfg.AuditEnabled() {
		t.Error("audit should be disabled without DATABASE_URL")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("API_PORT", "9090")
	t.Setenv("SCOUT_TIMEOUT", "10s")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DATABASE_URL", "postgres://localhost/riftscout")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIPort != 9090 {
		t.Errorf("APIPort = %d, want 9090", cfg.APIPort)
	}
	if cfg.ScoutTimeout != 10*time.Second {
		t.Errorf("ScoutTimeout = %v, want 10s", cfg.ScoutTimeout)
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "https://b.example" {
		t.Errorf("CORSAllowOrigins = %q, want 2 trimmed entries", cfg.CORSAllowOrigins)
	}
	if !cfg.AuditEnabled() {
		t.Error("audit should be enabled with DATABASE_URL")
	}
	if !cfg.IsProduction() {
		t.Error("expected production environment")
	}
}

func TestLoadOptional_NoKey(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "")
	t.Setenv("SCOUT_MATCH_COUNT", "0")

	cfg, err := LoadOptional()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ScoutMatchCount != 10 {
		t.Errorf("ScoutMatchCount = %d, want clamp to 10", cfg.ScoutMatchCount)
	}
}

func TestLoad_ScoutKnobsClamped(t *testing.T) {
	tests := []struct {
		matchCount, concurrency   string
		wantMatches, wantParallel int
	}{
		{"100", "9", 10, 5},
		{"-3", "0", 10, 5},
		{"4", "2", 4, 2},
	}

	for _, tt := range tests {
		t.Setenv("RIOT_API_KEY", "RGAPI-test")
		t.Setenv("SCOUT_MATCH_COUNT", tt.matchCount)
		t.Setenv("SCOUT_MAX_CONCURRENT_OPPONENTS", tt.concurrency)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ScoutMatchCount != tt.wantMatches {
			t.Errorf("SCOUT_MATCH_COUNT=%s: ScoutMatchCount = %d, want %d", tt.matchCount, cfg.ScoutMatchCount, tt.wantMatches)
		}
		if cfg.ScoutMaxConcurrentOpponents != tt.wantParallel {
			t.Errorf("SCOUT_MAX_CONCURRENT_OPPONENTS=%s: ScoutMaxConcurrentOpponents = %d, want %d", tt.concurrency, cfg.ScoutMaxConcurrentOpponents, tt.wantParallel)
		}
	}
}

func TestLoad_URLOverrides(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("RIOT_REGIONAL_URL", "https://europe.api.riotgames.com")
	t.Setenv("DDRAGON_URL", "http://localhost:9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RiotRegionalURL != "https://europe.api.riotgames.com" {
		t.Errorf("RiotRegionalURL = %q", cfg.RiotRegionalURL)
	}
	if cfg.DDragonURL != "http://localhost:9999" {
		t.Errorf("DDragonURL = %q", cfg.DDragonURL)
	}
	if cfg.RiotPlatformURL != DefaultPlatformURL {
		t.Errorf("RiotPlatformURL = %q, want default", cfg.RiotPlatformURL)
	}
}
