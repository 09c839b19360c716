package scout

import (
	"context"
	"errors"
	"strings"
)

// Pipeline error taxonomy. Callers match with errors.Is.
var (
	ErrInvalidRiotID      = errors.New("riot id must be Name#Tag")
	ErrNotFound           = errors.New("account not found")
	ErrUpstream           = errors.New("upstream error")
	ErrNoRecentMatches    = errors.New("no recent matches")
	ErrPlayerNotInRoster  = errors.New("player not in live roster")
	ErrParticipantMissing = errors.New("player missing from match participants")
	ErrPipelineAborted    = errors.New("scout aborted")
)

// surfaced reports whether err is one of the failures shown to the caller
// as-is rather than folded into ErrPipelineAborted.
func surfaced(err error) bool {
	return errors.Is(err, ErrInvalidRiotID) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrNoRecentMatches)
}

// UserMessage converts a pipeline error into the text shown to the person
// who asked for the scout.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidRiotID):
		return "Please provide a Riot ID as Name#Tag."
	case errors.Is(err, ErrNotFound):
		return "Account not found"
	case errors.Is(err, ErrNoRecentMatches):
		return "No recent matches found."
	case errors.Is(err, context.DeadlineExceeded):
		return "Error: scout timed out, try again shortly."
	case errors.Is(err, context.Canceled):
		return "Error: scout was cancelled."
	}

	msg := err.Error()
	msg = strings.TrimPrefix(msg, ErrPipelineAborted.Error()+": ")
	return "Error: " + msg
}
