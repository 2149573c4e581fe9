package scoreboard

import (
	"fmt"
	"strings"
)

// LiveBoard renders the live ranking as text, one match per line in
// LiveScores order, with no trailing newline:
//
//	Uruguay 6 - Italy 6
//	Spain 10 - Brazil 2
func (b *Scoreboard) LiveBoard() string {
	scores := b.LiveScores()

	lines := make([]string, 0, len(scores))
	for _, s := range scores {
		lines = append(lines, fmt.Sprintf("%s %d - %s %d",
			s.HomeTeam, s.Score[0], s.AwayTeam, s.Score[1]))
	}
	return strings.Join(lines, "\n")
}
