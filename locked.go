package scoreboard

import "sync"

// Locked wraps a scoreboard for shared use across goroutines.
//
// The core Scoreboard does no locking of its own; Locked is the external
// mutual-exclusion layer for parallel runtimes. Mutations take the write
// lock, reads take the read lock.
type Locked struct {
	mu    sync.RWMutex
	board *Scoreboard
}

// NewLocked wraps board. The caller must not use board directly afterwards.
func NewLocked(board *Scoreboard) *Locked {
	return &Locked{board: board}
}

// Start begins a match between home and away (write-locked).
func (l *Locked) Start(home, away string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.board.Start(home, away)
}

// UpdateScore replaces the score of the active (home, away) match (write-locked).
func (l *Locked) UpdateScore(home, away string, homeScore, awayScore int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.board.UpdateScore(home, away, homeScore, awayScore)
}

// Finish removes the active (home, away) match (write-locked).
func (l *Locked) Finish(home, away string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.board.Finish(home, away)
}

// LiveScores returns ranked match snapshots (read-locked).
func (l *Locked) LiveScores() []Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.board.LiveScores()
}

// LiveBoard renders the live ranking as text (read-locked).
func (l *Locked) LiveBoard() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.board.LiveBoard()
}

// SubscribeChanges returns the wrapped board's change channel.
func (l *Locked) SubscribeChanges() <-chan Change {
	return l.board.SubscribeChanges()
}
