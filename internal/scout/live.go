package scout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/albapepper/riftscout/internal/riot"
)

const (
	NoticeNotInGame  = "User is not currently in a game."
	NoticeRestricted = "Live Game not found (API Restricted)."

	summonerPrefixLen = 5
)

// LiveOutcome is the result of the live lookup. Exactly one field is set:
// Roster when a game is in progress, Fallback otherwise.
type LiveOutcome struct {
	Roster   *LiveMatchRoster
	Fallback *RecentFallback
}

// RecentFallback is the requester's line from the latest completed match,
// with the reason the live lookup did not produce a roster.
type RecentFallback struct {
	Match  MatchSummary
	Stat   ParticipantStat
	Notice string
}

// resolveLive looks up the in-progress game. Any lookup failure recovers to
// the latest completed match; only invariant violations are returned.
func (s *Scout) resolveLive(ctx context.Context, summonerID string, player PlayerIdentity, latest MatchSummary) (LiveOutcome, error) {
	notice := NoticeRestricted

	if summonerID != "" {
		game, err := s.source.GetActiveGame(ctx, summonerID)
		switch {
		case err == nil && game != nil:
			roster, err := buildRoster(game, player.PUUID)
			if err != nil {
				return LiveOutcome{}, err
			}
			return LiveOutcome{Roster: &roster}, nil
		case errors.Is(err, riot.ErrNotFound):
			notice = NoticeNotInGame
		default:
			s.logger.Warn("Live game lookup failed", "summoner_id", summonerID, "error", err)
		}
	}

	stat, ok := latest.Participant(player.PUUID)
	if !ok {
		return LiveOutcome{}, fmt.Errorf("%w: %s not in %s", ErrParticipantMissing, player.RiotID(), latest.MatchID)
	}

	s.logger.Info("Using latest match", "match_id", latest.MatchID, "notice", notice)
	return LiveOutcome{Fallback: &RecentFallback{Match: latest, Stat: stat, Notice: notice}}, nil
}

func buildRoster(game *riot.CurrentGame, puuid string) (LiveMatchRoster, error) {
	selfTeam, found := 0, false
	for _, p := range game.Participants {
		if p.PUUID == puuid {
			selfTeam, found = p.TeamID, true
			break
		}
	}
	if !found {
		return LiveMatchRoster{}, fmt.Errorf("%w: game %d", ErrPlayerNotInRoster, game.GameID)
	}

	roster := LiveMatchRoster{SelfTeamID: selfTeam}
	for _, p := range game.Participants {
		if p.TeamID == selfTeam {
			continue
		}
		roster.Opponents = append(roster.Opponents, OpponentRef{
			PlayerID:    p.PUUID,
			SummonerRef: strings.TrimSpace(p.SummonerID),
			DisplayName: opponentDisplayName(p.RiotID, p.SummonerName, p.SummonerID, p.PUUID),
		})
	}
	return roster, nil
}

// opponentDisplayName prefers a public name. Otherwise it shows a short
// prefix of the summoner id (or player id); ids too short to truncate are
// shown whole.
func opponentDisplayName(riotID, summonerName, summonerID, playerID string) string {
	if name := strings.TrimSpace(riotID); name != "" {
		return name
	}
	if name := strings.TrimSpace(summonerName); name != "" {
		return name
	}

	id := strings.TrimSpace(summonerID)
	if id == "" {
		id = strings.TrimSpace(playerID)
	}
	switch {
	case id == "":
		return "Unknown Summoner"
	case len(id) <= summonerPrefixLen:
		return "Summoner (" + id + ")"
	default:
		return "Summoner (" + id[:summonerPrefixLen] + "...)"
	}
}
