package scout

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Scout produces a report for gameName#tagLine.
//
// Stages run in order: identity, match history, summoner + rank, live
// lookup, then either opponent analysis or the latest-match fallback.
// Returned errors match ErrInvalidRiotID, ErrNotFound or ErrNoRecentMatches,
// or are wrapped in ErrPipelineAborted. Cancelling ctx abandons all
// in-flight lookups.
func (s *Scout) Scout(ctx context.Context, gameName, tagLine string) (*Report, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "scout",
		trace.WithAttributes(
			attribute.String("riot.game_name", gameName),
			attribute.String("riot.tag_line", tagLine),
		))

	report, err := s.run(ctx, gameName, tagLine)
	if err != nil && !surfaced(err) {
		err = fmt.Errorf("%w: %w", ErrPipelineAborted, err)
	}
	endSpan(span, err)

	if err != nil {
		s.logger.Info("Scout failed", "game_name", gameName, "tag_line", tagLine, "error", err, "elapsed", time.Since(start))
		return nil, err
	}
	s.logger.Info("Scout complete", "game_name", gameName, "tag_line", tagLine, "kind", report.Kind, "elapsed", time.Since(start))
	return report, nil
}

func (s *Scout) run(ctx context.Context, gameName, tagLine string) (*Report, error) {
	stageCtx, span := s.tracer.Start(ctx, "scout.identity")
	player, err := s.resolveIdentity(stageCtx, gameName, tagLine)
	endSpan(span, err)
	if err != nil {
		return nil, err
	}

	stageCtx, span = s.tracer.Start(ctx, "scout.history")
	matches, err := s.fetchHistory(stageCtx, player.PUUID)
	span.SetAttributes(attribute.Int("scout.matches", len(matches)))
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	latest := matches[0]

	stageCtx, span = s.tracer.Start(ctx, "scout.rank")
	summonerID := s.resolveSummoner(stageCtx, player, latest)
	rank := s.resolveRank(stageCtx, summonerID)
	span.SetAttributes(attribute.String("scout.rank", rank))
	endSpan(span, nil)

	stageCtx, span = s.tracer.Start(ctx, "scout.live")
	outcome, err := s.resolveLive(stageCtx, summonerID, player, latest)
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if outcome.Fallback != nil {
		return s.buildRecentReport(player, *outcome.Fallback), nil
	}

	stageCtx, span = s.tracer.Start(ctx, "scout.opponents",
		trace.WithAttributes(attribute.Int("scout.opponents", len(outcome.Roster.Opponents))))
	records, err := s.analyzeOpponents(stageCtx, outcome.Roster.Opponents)
	endSpan(span, err)
	if err != nil {
		return nil, err
	}

	return buildLiveReport(player, rank, records), nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
