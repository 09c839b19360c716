package scout

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/albapepper/riftscout/internal/riot"
)

// fakeSource is an in-memory Source. Missing map entries answer
// riot.ErrNotFound. GetMatchIDs tracks how many calls overlap.
type fakeSource struct {
	account    *riot.Account
	accountErr error

	summoner    *riot.Summoner
	summonerErr error

	matchIDs    map[string][]string
	matchIDsErr map[string]error
	matches     map[string]*riot.Match

	leagues   []riot.LeagueEntry
	leagueErr error

	game    *riot.CurrentGame
	gameErr error

	matchIDsDelay time.Duration

	mu            sync.Mutex
	inFlight      int
	maxInFlight   int
	accountCalls  int
	matchIDCalls  int
	leagueCalls   int
	gameCalls     int
	leagueQueried string
}

func (f *fakeSource) GetAccountByRiotID(ctx context.Context, gameName, tagLine string) (*riot.Account, error) {
	f.mu.Lock()
	f.accountCalls++
	f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.accountErr != nil {
		return nil, f.accountErr
	}
	if f.account == nil {
		return nil, riot.ErrNotFound
	}
	return f.account, nil
}

func (f *fakeSource) GetSummonerByPUUID(ctx context.Context, puuid string) (*riot.Summoner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.summonerErr != nil {
		return nil, f.summonerErr
	}
	if f.summoner == nil {
		return nil, riot.ErrNotFound
	}
	return f.summoner, nil
}

func (f *fakeSource) GetMatchIDs(ctx context.Context, puuid string, count int) ([]string, error) {
	f.mu.Lock()
	f.matchIDCalls++
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if f.matchIDsDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.matchIDsDelay):
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := f.matchIDsErr[puuid]; err != nil {
		return nil, err
	}
	ids := f.matchIDs[puuid]
	if len(ids) > count {
		ids = ids[:count]
	}
	return ids, nil
}

func (f *fakeSource) GetMatch(ctx context.Context, matchID string) (*riot.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, ok := f.matches[matchID]
	if !ok {
		return nil, riot.ErrNotFound
	}
	return m, nil
}

func (f *fakeSource) GetLeagueEntries(ctx context.Context, summonerID string) ([]riot.LeagueEntry, error) {
	f.mu.Lock()
	f.leagueCalls++
	f.leagueQueried = summonerID
	f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.leagues, f.leagueErr
}

func (f *fakeSource) GetActiveGame(ctx context.Context, summonerID string) (*riot.CurrentGame, error) {
	f.mu.Lock()
	f.gameCalls++
	f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.gameErr != nil {
		return nil, f.gameErr
	}
	if f.game == nil {
		return nil, riot.ErrNotFound
	}
	return f.game, nil
}

type fakeAssets struct{}

func (fakeAssets) ChampionIconURL(name string) string { return "champ:" + name }
func (fakeAssets) ProfileIconURL(id int) string       { return "icon:" + strconv.Itoa(id) }

func newTestScout(src Source) *Scout {
	return New(src, fakeAssets{}, Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func participant(puuid string, team int, won bool) riot.MatchParticipant {
	return riot.MatchParticipant{
		PUUID:        puuid,
		SummonerID:   "sum-" + puuid,
		TeamID:       team,
		ChampionName: "Lee Sin",
		Win:          won,
	}
}

func match(id string, endedAt int64, participants ...riot.MatchParticipant) *riot.Match {
	return &riot.Match{
		Metadata: riot.MatchMetadata{MatchID: id},
		Info: &riot.MatchInfo{
			GameEndTimestamp: endedAt,
			GameMode:         "CLASSIC",
			Participants:     participants,
		},
	}
}
