// Package maintenance runs periodic background tasks as Go tickers: content
// version refresh and audit log retention.
package maintenance

import (
	"context"
	"log/slog"
	"time"
)

// VersionRefresher is satisfied by *ddragon.Store.
type VersionRefresher interface {
	Refresh(ctx context.Context) (string, error)
}

// AuditPurger is satisfied by *audit.Store.
type AuditPurger interface {
	Purge(ctx context.Context, retention time.Duration) (int64, error)
}

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	VersionRefreshInterval time.Duration // Data Dragon versions.json
	AuditPurgeInterval     time.Duration // Delete expired audit rows
	AuditRetention         time.Duration
}

// DefaultConfig returns sensible production defaults.
func DefaultConfig() Config {
	return Config{
		VersionRefreshInterval: 1 * time.Hour,
		AuditPurgeInterval:     6 * time.Hour,
		AuditRetention:         30 * 24 * time.Hour,
	}
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`. A nil purger disables the
// audit task.
func Start(ctx context.Context, versions VersionRefresher, purger AuditPurger, cfg Config, logger *slog.Logger) {
	logger.Info("Maintenance tickers started",
		"version_refresh", cfg.VersionRefreshInterval,
		"audit_purge", cfg.AuditPurgeInterval)

	tickers := make([]*time.Ticker, 0, 2)
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	// Version refresh: a failed refresh keeps the previous version
	if cfg.VersionRefreshInterval > 0 && versions != nil {
		t := time.NewTicker(cfg.VersionRefreshInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, "version_refresh", func() { refreshVersion(ctx, versions, logger) })
	}

	// Audit purge: drop rows past retention
	if cfg.AuditPurgeInterval > 0 && cfg.AuditRetention > 0 && purger != nil {
		t := time.NewTicker(cfg.AuditPurgeInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, "audit_purge", func() { purgeAudit(ctx, purger, cfg.AuditRetention, logger) })
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, name string, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// --------------------------------------------------------------------------
// Task implementations
// --------------------------------------------------------------------------

func refreshVersion(ctx context.Context, versions VersionRefresher, logger *slog.Logger) {
	version, err := versions.Refresh(ctx)
	if err != nil {
		logger.Warn("Version refresh failed, keeping previous", "version", version, "error", err)
		return
	}
	logger.Debug("Content version refreshed", "version", version)
}

func purgeAudit(ctx context.Context, purger AuditPurger, retention time.Duration, logger *slog.Logger) {
	n, err := purger.Purge(ctx, retention)
	if err != nil {
		logger.Warn("Audit purge failed", "error", err)
	} else if n > 0 {
		logger.Info("Audit purge: removed old entries", "count", n)
	}
}
