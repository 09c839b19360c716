package audit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/albapepper/riftscout/internal/config"
	"github.com/albapepper/riftscout/internal/db"
	"github.com/albapepper/riftscout/internal/scout"
)

func TestOutcomeFor(t *testing.T) {
	tests := []struct {
		name   string
		report *scout.Report
		err    error
		want   string
	}{
		{"live", &scout.Report{Kind: scout.KindLive}, nil, OutcomeLive},
		{"recent", &scout.Report{Kind: scout.KindRecent}, nil, OutcomeRecent},
		{"not found", nil, fmt.Errorf("%w: a#b", scout.ErrNotFound), OutcomeNotFound},
		{"no matches", nil, scout.ErrNoRecentMatches, OutcomeNoMatches},
		{"invalid", nil, scout.ErrInvalidRiotID, OutcomeInvalid},
		{"aborted", nil, fmt.Errorf("%w: boom", scout.ErrPipelineAborted), OutcomeError},
		{"nil report", nil, nil, OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutcomeFor(tt.report, tt.err); got != tt.want {
				t.Errorf("OutcomeFor = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewEntry(t *testing.T) {
	e := NewEntry("Tester", "#NA1", &scout.Report{Kind: scout.KindRecent}, nil, 1500*time.Millisecond)

	if e.TagLine != "NA1" {
		t.Errorf("TagLine = %q, want NA1", e.TagLine)
	}
	if e.DurationMs != 1500 {
		t.Errorf("DurationMs = %d, want 1500", e.DurationMs)
	}
	if e.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected a generated id")
	}
}

func TestNilStore(t *testing.T) {
	var s *Store
	ctx := context.Background()

	if s.Enabled() {
		t.Error("nil store should be disabled")
	}
	if err := s.Record(ctx, Entry{}); err != nil {
		t.Errorf("Record on nil store: %v", err)
	}
	if _, err := s.Recent(ctx, 10); !errors.Is(err, ErrDisabled) {
		t.Errorf("Recent on nil store: got %v, want ErrDisabled", err)
	}
	if n, err := s.Purge(ctx, time.Hour); n != 0 || err != nil {
		t.Errorf("Purge on nil store = %d, %v", n, err)
	}
	if New(nil, nil) != nil {
		t.Error("New(nil) should return a nil store")
	}
}

// TestStore_Integration requires a real Postgres. Skipped unless
// DATABASE_URL is set.
func TestStore_Integration(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping audit integration test")
	}

	ctx := context.Background()
	pool, err := db.New(ctx, &config.Config{
		DatabaseURL:    dsn,
		DBPoolMinConns: 1,
		DBPoolMaxConns: 2,
		DBPoolMaxLife:  time.Minute,
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	store := New(pool.Pool, nil)
	entry := NewEntry("IntegrationTester", "TEST", &scout.Report{Kind: scout.KindLive}, nil, time.Second)
	if err := store.Record(ctx, entry); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := store.Recent(ctx, 500)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	found := false
	for _, e := range entries {
		if e.ID == entry.ID {
			found = true
			if e.Outcome != OutcomeLive || e.GameName != "IntegrationTester" {
				t.Errorf("stored entry = %+v", e)
			}
		}
	}
	if !found {
		t.Error("recorded entry not returned by Recent")
	}

	if _, err := pool.Exec(ctx, "DELETE FROM scout_requests WHERE id = $1", entry.ID); err != nil {
		t.Errorf("cleanup: %v", err)
	}
}
