package scout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/albapepper/riftscout/internal/riot"
)

// CleanTag strips every '#' and surrounding whitespace from a tag line.
func CleanTag(tag string) string {
	return strings.TrimSpace(strings.ReplaceAll(tag, "#", ""))
}

// ParseRiotID splits "Name#Tag" into its parts. The split is on the last
// '#', since game names may not contain one but users paste odd things.
func ParseRiotID(riotID string) (gameName, tagLine string, err error) {
	idx := strings.LastIndex(riotID, "#")
	if idx < 0 {
		return "", "", ErrInvalidRiotID
	}
	gameName = strings.TrimSpace(riotID[:idx])
	tagLine = CleanTag(riotID[idx+1:])
	if gameName == "" || tagLine == "" {
		return "", "", ErrInvalidRiotID
	}
	return gameName, tagLine, nil
}

func (s *Scout) resolveIdentity(ctx context.Context, gameName, tagLine string) (PlayerIdentity, error) {
	gameName = strings.TrimSpace(gameName)
	tagLine = CleanTag(tagLine)
	if gameName == "" || tagLine == "" {
		return PlayerIdentity{}, ErrInvalidRiotID
	}

	account, err := s.source.GetAccountByRiotID(ctx, gameName, tagLine)
	switch {
	case errors.Is(err, riot.ErrNotFound):
		return PlayerIdentity{}, fmt.Errorf("%w: %s#%s", ErrNotFound, gameName, tagLine)
	case err != nil:
		return PlayerIdentity{}, fmt.Errorf("%w: resolve account: %w", ErrUpstream, err)
	case account == nil || account.PUUID == "":
		return PlayerIdentity{}, fmt.Errorf("%w: %s#%s", ErrNotFound, gameName, tagLine)
	}

	return PlayerIdentity{
		GameName: gameName,
		TagLine:  tagLine,
		PUUID:    account.PUUID,
	}, nil
}
