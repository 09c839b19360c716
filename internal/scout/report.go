package scout

import (
	"fmt"
	"time"
)

func buildLiveReport(player PlayerIdentity, rank string, records []OpponentRecord) *Report {
	opponents := make([]OpponentRecord, len(records))
	copy(opponents, records)

	return &Report{
		Kind:   KindLive,
		Player: player,
		Live: &LiveReport{
			SelfRank:  rank,
			Opponents: opponents,
		},
	}
}

func (s *Scout) buildRecentReport(player PlayerIdentity, fb RecentFallback) *Report {
	stat := fb.Stat
	return &Report{
		Kind:   KindRecent,
		Player: player,
		Notice: fb.Notice,
		Recent: &RecentMatchReport{
			MatchID:        fb.Match.MatchID,
			Won:            stat.Won,
			Mode:           fb.Match.Mode,
			ChampionName:   stat.ChampionName,
			Kills:          stat.Kills,
			Deaths:         stat.Deaths,
			Assists:        stat.Assists,
			KDA:            fmt.Sprintf("%d/%d/%d", stat.Kills, stat.Deaths, stat.Assists),
			CS:             stat.MinionsKilled + stat.NeutralMinionsKilled,
			Gold:           stat.GoldEarned,
			DamageDealt:    stat.DamageDealt,
			DamageTaken:    stat.DamageTaken,
			Vision:         stat.VisionScore,
			MatchDate:      time.UnixMilli(fb.Match.EndedAt).UTC(),
			ThumbnailURL:   s.assets.ChampionIconURL(stat.ChampionName),
			ProfileIconURL: s.assets.ProfileIconURL(stat.ProfileIconID),
		},
	}
}
