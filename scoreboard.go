package scoreboard

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/fieldline/scoreboard/internal/match"
	"github.com/fieldline/scoreboard/internal/team"
)

// Config holds Scoreboard configuration.
type Config struct {
	// Teams is the recognized-team roster. Empty means team.Default().
	Teams team.Set

	// Logger receives lifecycle events. Nil means slog.Default().
	Logger *slog.Logger
}

// Snapshot is an immutable copy of one match's state at query time.
// Score is [home, away].
type Snapshot struct {
	ID        string
	StartedAt int64
	HomeTeam  string
	AwayTeam  string
	Score     [2]int
}

// Scoreboard tracks matches in progress and ranks them live.
//
// Scoreboard does no internal locking; see Locked for shared use.
type Scoreboard struct {
	teams  team.Set
	logger *slog.Logger

	state   *match.State
	changes chan Change
}

// New creates an empty scoreboard.
func New(cfg Config) *Scoreboard {
	if cfg.Teams.Len() == 0 {
		cfg.Teams = team.Default()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Scoreboard{
		teams:   cfg.Teams,
		logger:  cfg.Logger,
		state:   match.NewState(),
		changes: make(chan Change, ChangeBufferSize),
	}
}

// Start begins a match between home and away with score 0-0.
//
// Checks, in order: both names non-empty and distinct (ErrInvalidArgument),
// both recognized (ErrUnknownTeam), the exact pairing not already active
// (ErrDuplicateMatch), neither team playing elsewhere (ErrTeamBusy). On any
// failure the scoreboard is unchanged.
func (b *Scoreboard) Start(home, away string) error {
	if err := validPair(home, away); err != nil {
		return err
	}
	if !b.teams.Contains(home) {
		return fmt.Errorf("%w: %s", ErrUnknownTeam, home)
	}
	if !b.teams.Contains(away) {
		return fmt.Errorf("%w: %s", ErrUnknownTeam, away)
	}
	if _, ok := b.state.Lookup(home, away); ok {
		return fmt.Errorf("%w: %s vs %s", ErrDuplicateMatch, home, away)
	}
	if b.state.Occupied(home) {
		return fmt.Errorf("%w: %s", ErrTeamBusy, home)
	}
	if b.state.Occupied(away) {
		return fmt.Errorf("%w: %s", ErrTeamBusy, away)
	}

	m := b.state.Add(home, away)
	b.notify(Change{Home: home, Away: away, EventType: EventStarted})

	b.logger.Info("match started",
		"home", home,
		"away", away,
		"id", m.ID,
		"active_matches", b.state.Len(),
	)

	return nil
}

// UpdateScore replaces the score pair of the active (home, away) match.
//
// Checks, in order: both names non-empty (ErrInvalidArgument), both scores
// >= 0 (ErrInvalidScore), the pairing active (ErrNoSuchMatch).
func (b *Scoreboard) UpdateScore(home, away string, homeScore, awayScore int) error {
	if home == "" || away == "" {
		return fmt.Errorf("%w: team names must be non-empty", ErrInvalidArgument)
	}
	if homeScore < 0 || awayScore < 0 {
		return fmt.Errorf("%w: got %d-%d", ErrInvalidScore, homeScore, awayScore)
	}

	m, ok := b.state.SetScore(home, away, homeScore, awayScore)
	if !ok {
		return fmt.Errorf("%w: %s vs %s", ErrNoSuchMatch, home, away)
	}
	b.notify(Change{
		Home:      home,
		Away:      away,
		EventType: EventScoreUpdated,
		Score:     [2]int{homeScore, awayScore},
	})

	b.logger.Info("score updated",
		"home", home,
		"away", away,
		"score", fmt.Sprintf("%d-%d", m.HomeScore, m.AwayScore),
	)

	return nil
}

// Finish removes the active (home, away) match permanently.
//
// Checks, in order: both names non-empty (ErrInvalidArgument), the pairing
// active (ErrNoSuchMatch).
func (b *Scoreboard) Finish(home, away string) error {
	if home == "" || away == "" {
		return fmt.Errorf("%w: team names must be non-empty", ErrInvalidArgument)
	}

	m, ok := b.state.Remove(home, away)
	if !ok {
		return fmt.Errorf("%w: %s vs %s", ErrNoSuchMatch, home, away)
	}
	b.notify(Change{
		Home:      home,
		Away:      away,
		EventType: EventFinished,
		Score:     [2]int{m.HomeScore, m.AwayScore},
	})

	b.logger.Info("match finished",
		"home", home,
		"away", away,
		"final_score", fmt.Sprintf("%d-%d", m.HomeScore, m.AwayScore),
		"active_matches", b.state.Len(),
	)

	return nil
}

// LiveScores returns snapshots of all active matches, ordered by total score
// descending, then start time descending (most recent first), then creation
// sequence descending. The result never aliases internal storage; an empty
// scoreboard yields an empty slice.
func (b *Scoreboard) LiveScores() []Snapshot {
	active := b.state.Active()

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Total() != active[j].Total() {
			return active[i].Total() > active[j].Total()
		}
		if active[i].StartedAt != active[j].StartedAt {
			return active[i].StartedAt > active[j].StartedAt
		}
		return active[i].Seq > active[j].Seq
	})

	out := make([]Snapshot, 0, len(active))
	for _, m := range active {
		out = append(out, Snapshot{
			ID:        m.ID.String(),
			StartedAt: m.StartedAt,
			HomeTeam:  m.HomeTeam,
			AwayTeam:  m.AwayTeam,
			Score:     [2]int{m.HomeScore, m.AwayScore},
		})
	}
	return out
}

// validPair checks the argument rules shared by Start: non-empty and distinct.
func validPair(home, away string) error {
	if home == "" || away == "" {
		return fmt.Errorf("%w: team names must be non-empty", ErrInvalidArgument)
	}
	if home == away {
		return fmt.Errorf("%w: a match needs two distinct teams, got %s twice", ErrInvalidArgument, home)
	}
	return nil
}
