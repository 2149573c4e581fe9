// Package scoreboard implements the Live Match Scoreboard component.
//
// The scoreboard:
//   - Tracks football matches currently in progress, entirely in memory
//   - Validates every transition (start, score update, finish) before mutating
//   - Serves ranked snapshots ordered by total score, then recency
//   - Notifies subscribers of match lifecycle changes
//
// The core does no internal locking; it is owned by a single caller. Wrap it
// with Locked when multiple goroutines share one instance.
package scoreboard
