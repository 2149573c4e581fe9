package scoreboard

// ChangeBufferSize is the capacity of the Change channel.
const ChangeBufferSize = 64

// Change event types.
const (
	EventStarted      = "started"
	EventScoreUpdated = "score_updated"
	EventFinished     = "finished"
)

// Change represents a match lifecycle transition.
type Change struct {
	Home      string // Home team
	Away      string // Away team
	EventType string // "started", "score_updated", "finished"
	Score     [2]int // Score after the transition ([0,0] for "started")
}

// SubscribeChanges returns a channel of match lifecycle changes.
// The channel is buffered; if no one drains it, the oldest events are dropped.
func (b *Scoreboard) SubscribeChanges() <-chan Change {
	return b.changes
}

// notify sends a change to the changes channel (non-blocking).
func (b *Scoreboard) notify(change Change) {
	select {
	case b.changes <- change:
	default:
		// Channel full, drop oldest by consuming one and retrying.
		select {
		case <-b.changes:
			b.changes <- change
		default:
		}
		b.logger.Debug("change subscriber behind, dropped an event")
	}
}
