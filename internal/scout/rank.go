package scout

import (
	"context"
	"strings"
)

const (
	// SoloQueue is the only ranked queue reported.
	SoloQueue = "RANKED_SOLO_5x5"

	RankUnranked = "Unranked"
	RankUnknown  = "Rank Unknown (API Error)"
)

// resolveSummoner finds the summoner id used by the league and spectator
// lookups. Falls back to the id recorded in the latest match; returns ""
// when neither is available.
func (s *Scout) resolveSummoner(ctx context.Context, player PlayerIdentity, latest MatchSummary) string {
	summoner, err := s.source.GetSummonerByPUUID(ctx, player.PUUID)
	if err == nil && summoner != nil && strings.TrimSpace(summoner.ID) != "" {
		return strings.TrimSpace(summoner.ID)
	}
	if err != nil {
		s.logger.Warn("Summoner lookup failed, using latest match", "puuid", player.PUUID, "error", err)
	}

	if p, ok := latest.Participant(player.PUUID); ok && p.SummonerID != "" {
		return p.SummonerID
	}
	return ""
}

// resolveRank never fails: upstream errors become RankUnknown and a missing
// solo queue entry becomes RankUnranked.
func (s *Scout) resolveRank(ctx context.Context, summonerID string) string {
	if summonerID == "" {
		return RankUnknown
	}

	entries, err := s.source.GetLeagueEntries(ctx, summonerID)
	if err != nil {
		s.logger.Warn("Rank lookup failed", "summoner_id", summonerID, "error", err)
		return RankUnknown
	}

	for _, e := range entries {
		if e.QueueType == SoloQueue {
			return e.Tier + " " + e.Rank
		}
	}
	return RankUnranked
}
