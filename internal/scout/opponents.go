package scout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// analyzeOpponents tallies every opponent's recent record with at most
// maxConcurrentOpponents analyses in flight. Records come back in
// completion order, not roster order.
func (s *Scout) analyzeOpponents(ctx context.Context, opponents []OpponentRef) ([]OpponentRecord, error) {
	records := make(chan OpponentRecord, len(opponents))

	var g errgroup.Group
	g.SetLimit(s.maxConcurrentOpponents)
	for _, opp := range opponents {
		g.Go(func() error {
			records <- s.analyzeOpponent(ctx, opp)
			return nil
		})
	}
	_ = g.Wait()
	close(records)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]OpponentRecord, 0, len(opponents))
	for r := range records {
		out = append(out, r)
	}
	return out, nil
}

// analyzeOpponent counts wins and losses over the opponent's fetchable
// recent matches. A match the opponent cannot be found in counts as a loss.
// A failed id listing yields 0W - 0L.
func (s *Scout) analyzeOpponent(ctx context.Context, opp OpponentRef) OpponentRecord {
	record := OpponentRecord{DisplayName: opp.DisplayName}
	if opp.PlayerID == "" {
		return record
	}

	ids, err := s.source.GetMatchIDs(ctx, opp.PlayerID, s.matchCount)
	if err != nil {
		s.logger.Warn("Opponent history unavailable", "opponent", opp.DisplayName, "error", err)
		return record
	}

	for _, m := range s.fetchMatches(ctx, ids) {
		if p, ok := m.Participant(opp.PlayerID); ok && p.Won {
			record.Wins++
		} else {
			record.Losses++
		}
	}
	return record
}
