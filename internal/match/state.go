package match

import (
	"time"

	"github.com/google/uuid"
)

// State holds the in-memory match storage.
//
// Storage is an ordered slice (insertion order) plus a busy-team index.
// State does no locking; callers that need parallelism wrap the whole
// scoreboard in a mutex.
type State struct {
	// Active matches in insertion order.
	matches []*Match

	// Teams currently participating in some active match.
	busy map[string]struct{}

	// Last stamp handed out; guarantees StartedAt is unique per match
	// even when the clock is coarser than one call.
	lastStamp int64

	// Creation sequence counter.
	nextSeq uint64
}

// NewState creates empty storage.
func NewState() *State {
	return &State{
		busy: make(map[string]struct{}),
	}
}

// Len returns the number of active matches.
func (s *State) Len() int {
	return len(s.matches)
}

// Lookup returns the active match for the exact (home, away) pairing.
func (s *State) Lookup(home, away string) (Match, bool) {
	for _, m := range s.matches {
		if m.HomeTeam == home && m.AwayTeam == away {
			return *m, true
		}
	}
	return Match{}, false
}

// Occupied reports whether team participates in any active match,
// in either role.
func (s *State) Occupied(team string) bool {
	_, ok := s.busy[team]
	return ok
}

// Active returns a copy of all active matches in insertion order.
func (s *State) Active() []Match {
	out := make([]Match, 0, len(s.matches))
	for _, m := range s.matches {
		out = append(out, *m)
	}
	return out
}

// Add creates a match with a fresh id, a unique creation stamp, and scores
// 0/0, and appends it to storage. Callers validate first; Add assumes the
// pairing is legal.
func (s *State) Add(home, away string) Match {
	stamp := time.Now().UnixMicro()
	if stamp <= s.lastStamp {
		stamp = s.lastStamp + 1
	}
	s.lastStamp = stamp
	s.nextSeq++

	m := &Match{
		ID:        uuid.New(),
		StartedAt: stamp,
		Seq:       s.nextSeq,
		HomeTeam:  home,
		AwayTeam:  away,
	}
	s.matches = append(s.matches, m)
	s.busy[home] = struct{}{}
	s.busy[away] = struct{}{}
	return *m
}

// SetScore replaces the score pair of the active (home, away) match.
// All other fields are untouched.
func (s *State) SetScore(home, away string, homeScore, awayScore int) (Match, bool) {
	for _, m := range s.matches {
		if m.HomeTeam == home && m.AwayTeam == away {
			m.HomeScore = homeScore
			m.AwayScore = awayScore
			return *m, true
		}
	}
	return Match{}, false
}

// Remove deletes the active (home, away) match permanently and frees
// both teams.
func (s *State) Remove(home, away string) (Match, bool) {
	for i, m := range s.matches {
		if m.HomeTeam == home && m.AwayTeam == away {
			s.matches = append(s.matches[:i], s.matches[i+1:]...)
			delete(s.busy, m.HomeTeam)
			delete(s.busy, m.AwayTeam)
			return *m, true
		}
	}
	return Match{}, false
}
