package scout

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// fetchHistory lists the player's recent match ids and resolves them.
// Returns ErrNoRecentMatches when nothing usable came back.
func (s *Scout) fetchHistory(ctx context.Context, puuid string) ([]MatchSummary, error) {
	ids, err := s.source.GetMatchIDs(ctx, puuid, s.matchCount)
	if err != nil {
		return nil, fmt.Errorf("%w: list match ids: %w", ErrUpstream, err)
	}

	matches := s.fetchMatches(ctx, ids)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %d ids, none resolved", ErrNoRecentMatches, len(ids))
	}

	s.logger.Debug("Match history fetched", "requested", len(ids), "resolved", len(matches), "latest", matches[0].MatchID)
	return matches, nil
}

// fetchMatches resolves match ids concurrently. Failed lookups are dropped.
// The result is sorted newest first; ties keep id-list order.
func (s *Scout) fetchMatches(ctx context.Context, ids []string) []MatchSummary {
	results := make([]*MatchSummary, len(ids))

	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			match, err := s.source.GetMatch(ctx, id)
			if err != nil || match == nil || match.Info == nil {
				s.logger.Warn("Dropping match detail", "match_id", id, "error", err)
				return nil
			}
			summary := toMatchSummary(match)
			results[i] = &summary
			return nil
		})
	}
	_ = g.Wait()

	matches := make([]MatchSummary, 0, len(ids))
	for _, m := range results {
		if m != nil {
			matches = append(matches, *m)
		}
	}
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].EndedAt > matches[b].EndedAt
	})
	return matches
}
