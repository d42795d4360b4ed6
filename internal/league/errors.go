package league

import "errors"

// Stable error kinds surfaced to callers. Wrapped with context at the
// point of failure; match with errors.Is.
var (
	ErrLeagueNotFound  = errors.New("league not found")
	ErrFixtureNotFound = errors.New("fixture not found")
	ErrAlreadyPlayed   = errors.New("fixture already played")
	ErrScheduleExists  = errors.New("season schedule already generated")
	ErrTooFewTeams     = errors.New("not enough member teams to schedule")
	ErrWrongLeagueSize = errors.New("membership count does not match league size")
)
