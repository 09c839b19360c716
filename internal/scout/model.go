package scout

import (
	"strings"
	"time"

	"github.com/albapepper/riftscout/internal/riot"
)

// PlayerIdentity is the resolved requester. PUUID is the stable player id.
type PlayerIdentity struct {
	GameName string `json:"game_name"`
	TagLine  string `json:"tag_line"`
	PUUID    string `json:"puuid"`
}

// RiotID renders the identity as "Name #Tag".
func (p PlayerIdentity) RiotID() string {
	return p.GameName + " #" + p.TagLine
}

// MatchSummary is one fetched match, scoped to a single scout invocation.
// Participants holds at most one entry per player id.
type MatchSummary struct {
	MatchID      string
	EndedAt      int64 // epoch ms
	Mode         string
	Participants []ParticipantStat
}

// Participant returns the stat line for a player id.
func (m MatchSummary) Participant(playerID string) (ParticipantStat, bool) {
	for _, p := range m.Participants {
		if p.PlayerID == playerID {
			return p, true
		}
	}
	return ParticipantStat{}, false
}

// ParticipantStat is one player's line in a finished match.
type ParticipantStat struct {
	PlayerID             string
	SummonerID           string
	DisplayName          string
	ChampionName         string
	Kills                int
	Deaths               int
	Assists              int
	DamageDealt          int
	DamageTaken          int
	MinionsKilled        int
	NeutralMinionsKilled int
	GoldEarned           int
	VisionScore          int
	ProfileIconID        int
	Won                  bool
}

// LiveMatchRoster is the opposing side of an in-progress game. Opponents
// never share SelfTeamID.
type LiveMatchRoster struct {
	SelfTeamID int
	Opponents  []OpponentRef
}

// OpponentRef identifies an enemy in a live game and how to label them.
type OpponentRef struct {
	PlayerID    string
	SummonerRef string
	DisplayName string
}

// OpponentRecord is an opponent's recent win/loss tally.
type OpponentRecord struct {
	DisplayName string `json:"display_name"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
}

// WinRate returns wins/(wins+losses), or 0 when no games were counted.
func (r OpponentRecord) WinRate() float64 {
	total := r.Wins + r.Losses
	if total == 0 {
		return 0
	}
	return float64(r.Wins) / float64(total)
}

// --------------------------------------------------------------------------
// Report
// --------------------------------------------------------------------------

// ReportKind tags which branch of a Report is populated.
type ReportKind string

const (
	KindLive   ReportKind = "live"
	KindRecent ReportKind = "recent"
)

// Report is the tagged result of a scout: exactly one of Live or Recent is
// set, matching Kind. It holds copies only, never references into fetched
// match data.
type Report struct {
	Kind   ReportKind         `json:"kind"`
	Player PlayerIdentity     `json:"player"`
	Notice string             `json:"notice,omitempty"`
	Live   *LiveReport        `json:"live,omitempty"`
	Recent *RecentMatchReport `json:"recent,omitempty"`
}

// LiveReport is the requester's rank plus each opponent's recent record.
type LiveReport struct {
	SelfRank  string           `json:"self_rank"`
	Opponents []OpponentRecord `json:"opponents"`
}

// RecentMatchReport summarises the requester's latest completed match.
type RecentMatchReport struct {
	MatchID        string    `json:"match_id"`
	Won            bool      `json:"won"`
	Mode           string    `json:"mode"`
	ChampionName   string    `json:"champion_name"`
	Kills          int       `json:"kills"`
	Deaths         int       `json:"deaths"`
	Assists        int       `json:"assists"`
	KDA            string    `json:"kda"`
	CS             int       `json:"cs"`
	Gold           int       `json:"gold"`
	DamageDealt    int       `json:"damage_dealt"`
	DamageTaken    int       `json:"damage_taken"`
	Vision         int       `json:"vision"`
	MatchDate      time.Time `json:"match_date"`
	ThumbnailURL   string    `json:"thumbnail_url"`
	ProfileIconURL string    `json:"profile_icon_url"`
}

// --------------------------------------------------------------------------
// Conversion from transport types
// --------------------------------------------------------------------------

func toMatchSummary(m *riot.Match) MatchSummary {
	summary := MatchSummary{
		MatchID: m.Metadata.MatchID,
		EndedAt: m.Info.GameEndTimestamp,
		Mode:    m.Info.GameMode,
	}

	seen := make(map[string]struct{}, len(m.Info.Participants))
	summary.Participants = make([]ParticipantStat, 0, len(m.Info.Participants))
	for _, p := range m.Info.Participants {
		if _, dup := seen[p.PUUID]; dup {
			continue
		}
		seen[p.PUUID] = struct{}{}
		summary.Participants = append(summary.Participants, ParticipantStat{
			PlayerID:             p.PUUID,
			SummonerID:           strings.TrimSpace(p.SummonerID),
			DisplayName:          matchDisplayName(p),
			ChampionName:         p.ChampionName,
			Kills:                p.Kills,
			Deaths:               p.Deaths,
			Assists:              p.Assists,
			DamageDealt:          p.TotalDamageDealtToChampions,
			DamageTaken:          p.TotalDamageTaken,
			MinionsKilled:        p.TotalMinionsKilled,
			NeutralMinionsKilled: p.NeutralMinionsKilled,
			GoldEarned:           p.GoldEarned,
			VisionScore:          p.VisionScore,
			ProfileIconID:        p.ProfileIcon,
			Won:                  p.Win,
		})
	}
	return summary
}

func matchDisplayName(p riot.MatchParticipant) string {
	if p.RiotIDGameName != "" {
		if p.RiotIDTagline != "" {
			return p.RiotIDGameName + "#" + p.RiotIDTagline
		}
		return p.RiotIDGameName
	}
	return p.SummonerName
}
