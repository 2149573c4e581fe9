package match

import "github.com/google/uuid"

// Match represents one game currently in progress.
type Match struct {
	ID        uuid.UUID // Primary key, generated at creation
	StartedAt int64     // Creation time (µs since epoch), unique per match
	Seq       uint64    // Creation sequence, final ordering tie-break
	HomeTeam  string    // Home side, immutable
	AwayTeam  string    // Away side, immutable
	HomeScore int       // Home goals, >= 0
	AwayScore int       // Away goals, >= 0
}

// Total returns the combined score, the primary ranking key.
func (m Match) Total() int {
	return m.HomeScore + m.AwayScore
}
