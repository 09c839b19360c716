// Package scout resolves a Riot ID into a scouting report: either the live
// game the player is in, with the recent record of everyone on the other
// team, or a summary of the player's most recent completed match.
//
// Each call to Scout is independent. Nothing fetched survives the call; the
// only shared input is the content version behind the Assets resolver.
package scout

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/albapepper/riftscout/internal/riot"
)

// Upper bounds for Options. Values outside [1, max] are clamped to max.
const (
	MaxMatchCount          = 10
	MaxConcurrentOpponents = 5
)

// Source is the set of Riot lookups the pipeline depends on. *riot.Client
// satisfies it.
type Source interface {
	GetAccountByRiotID(ctx context.Context, gameName, tagLine string) (*riot.Account, error)
	GetSummonerByPUUID(ctx context.Context, puuid string) (*riot.Summoner, error)
	GetMatchIDs(ctx context.Context, puuid string, count int) ([]string, error)
	GetMatch(ctx context.Context, matchID string) (*riot.Match, error)
	GetLeagueEntries(ctx context.Context, summonerID string) ([]riot.LeagueEntry, error)
	GetActiveGame(ctx context.Context, summonerID string) (*riot.CurrentGame, error)
}

// Assets builds static asset references. *ddragon.Store satisfies it.
type Assets interface {
	ChampionIconURL(championName string) string
	ProfileIconURL(iconID int) string
}

// Options tunes a Scout. Zero or out-of-range counts take the Max* values.
type Options struct {
	MatchCount             int
	MaxConcurrentOpponents int
	Logger                 *slog.Logger
	Tracer                 trace.Tracer
}

// Scout runs the scouting pipeline. Safe for concurrent use.
type Scout struct {
	source                 Source
	assets                 Assets
	matchCount             int
	maxConcurrentOpponents int
	logger                 *slog.Logger
	tracer                 trace.Tracer
}

// New creates a Scout.
func New(source Source, assets Assets, opts Options) *Scout {
	s := &Scout{
		source:                 source,
		assets:                 assets,
		matchCount:             opts.MatchCount,
		maxConcurrentOpponents: opts.MaxConcurrentOpponents,
		logger:                 opts.Logger,
		tracer:                 opts.Tracer,
	}
	if s.matchCount < 1 || s.matchCount > MaxMatchCount {
		s.matchCount = MaxMatchCount
	}
	if s.maxConcurrentOpponents < 1 || s.maxConcurrentOpponents > MaxConcurrentOpponents {
		s.maxConcurrentOpponents = MaxConcurrentOpponents
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("github.com/albapepper/riftscout/internal/scout")
	}
	if s.assets == nil {
		s.assets = noAssets{}
	}
	return s
}

type noAssets struct{}

func (noAssets) ChampionIconURL(string) string { return "" }
func (noAssets) ProfileIconURL(int) string     { return "" }
