package maintenance

import (
	"context"
	"log/slog"
	"time"
)

// WarmUp refreshes the content version once before the server starts taking
// traffic. A failure is logged and the fallback version stays in use.
func WarmUp(ctx context.Context, versions VersionRefresher, timeout time.Duration, logger *slog.Logger) string {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	version, err := versions.Refresh(ctx)
	dur := time.Since(start).Round(time.Millisecond)

	if err != nil {
		logger.Warn("Initial version refresh failed, using fallback",
			"version", version, "duration", dur, "error", err)
		return version
	}
	logger.Info("Content version loaded", "version", version, "duration", dur)
	return version
}
