// Package audit records one row per scout request in Postgres. It stores who
// was scouted and how the request ended, never the fetched match data.
//
// A nil *Store is valid and records nothing, so callers need no branching
// when DATABASE_URL is unset.
package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/riftscout/internal/scout"
)

// Outcome values stored in scout_requests.outcome.
const (
	OutcomeLive      = "live"
	OutcomeRecent    = "recent"
	OutcomeNotFound  = "not_found"
	OutcomeNoMatches = "no_matches"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
)

// ErrDisabled is returned by reads on a nil Store.
var ErrDisabled = errors.New("audit log disabled")

// Entry is one scout request.
type Entry struct {
	ID         uuid.UUID `json:"id"`
	GameName   string    `json:"game_name"`
	TagLine    string    `json:"tag_line"`
	Outcome    string    `json:"outcome"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store writes and reads audit entries.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// New creates a Store. Returns nil when pool is nil.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	if pool == nil {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{pool: pool, logger: logger}
}

// Enabled reports whether entries are persisted.
func (s *Store) Enabled() bool {
	return s != nil
}

// OutcomeFor classifies a scout result.
func OutcomeFor(report *scout.Report, err error) string {
	switch {
	case errors.Is(err, scout.ErrInvalidRiotID):
		return OutcomeInvalid
	case errors.Is(err, scout.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, scout.ErrNoRecentMatches):
		return OutcomeNoMatches
	case err != nil || report == nil:
		return OutcomeError
	case report.Kind == scout.KindLive:
		return OutcomeLive
	default:
		return OutcomeRecent
	}
}

// NewEntry builds an entry for a finished scout.
func NewEntry(gameName, tagLine string, report *scout.Report, err error, elapsed time.Duration) Entry {
	return Entry{
		ID:         uuid.New(),
		GameName:   gameName,
		TagLine:    scout.CleanTag(tagLine),
		Outcome:    OutcomeFor(report, err),
		DurationMs: elapsed.Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}
}

// Record inserts an entry. Failures are logged and returned; callers
// typically ignore them since the audit log must not fail a scout.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if s == nil {
		return nil
	}
	_, err := s.pool.Exec(ctx, "audit_insert", e.ID, e.GameName, e.TagLine, e.Outcome, e.DurationMs, e.CreatedAt)
	if err != nil {
		s.logger.Warn("Failed to record scout request", "game_name", e.GameName, "error", err)
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// Recent returns the latest entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if s == nil {
		return nil, ErrDisabled
	}
	if limit < 1 || limit > 500 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx, "audit_recent", limit)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.GameName, &e.TagLine, &e.Outcome, &e.DurationMs, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return entries, nil
}

// Purge deletes entries older than retention and returns how many went.
func (s *Store) Purge(ctx context.Context, retention time.Duration) (int64, error) {
	if s == nil {
		return 0, nil
	}
	tag, err := s.pool.Exec(ctx, "audit_purge", time.Now().UTC().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("purge audit entries: %w", err)
	}
	return tag.RowsAffected(), nil
}
