package scoreboard

import "errors"

// Validation failures returned by scoreboard operations. Every operation
// returns the first failing check wrapped with detail; match with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownTeam     = errors.New("unknown team")
	ErrDuplicateMatch  = errors.New("match already in progress")
	ErrTeamBusy        = errors.New("team already playing")
	ErrNoSuchMatch     = errors.New("no active match for pairing")
	ErrInvalidScore    = errors.New("score must be an integer >= 0")
)
