package darts

import (
	"fmt"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/goserg/darts/internal/domain"
	"github.com/goserg/darts/internal/normalize"
)

// StartingTotal is the score every leg counts down from.
const StartingTotal = 501

// Match is a best-of-sets contest. It is not safe for concurrent use:
// ApplyThrow must finish before another call or query is made on the same match.
type Match struct {
	ID             uuid.UUID       `json:"id"`
	CreatedAt      time.Time       `json:"createdAt"`
	Players        []domain.Player `json:"players"`
	StartingPlayer int             `json:"startingPlayer"`
	SetsToWin      int             `json:"setsToWin"`
	LegsToWin      int             `json:"legsToWin"`
	StartingTotal  int             `json:"startingTotal"`
	Sets           []*Set          `json:"sets"`
	Stats          []MatchStats    `json:"stats"`
}

// Result describes what a call to Match.ApplyThrow changed.
type Result struct {
	Outcome        Outcome `json:"outcome"`
	LegCompleted   bool    `json:"legCompleted"`
	SetCompleted   bool    `json:"setCompleted"`
	MatchCompleted bool    `json:"matchCompleted"`
}

type Option func(*Match)

// WithStartingPlayer makes players[i] throw first in the first leg.
func WithStartingPlayer(i int) Option {
	return func(m *Match) {
		m.StartingPlayer = i
	}
}

func WithID(id uuid.UUID) Option {
	return func(m *Match) {
		m.ID = id
	}
}

func WithCreatedAt(t time.Time) Option {
	return func(m *Match) {
		m.CreatedAt = t
	}
}

// NewMatch creates a match waiting for its first dart.
func NewMatch(players []domain.Player, setsToWin, legsToWin int, opts ...Option) (*Match, error) {
	m := &Match{
		ID:            uuid.New(),
		CreatedAt:     time.Now(),
		Players:       append([]domain.Player(nil), players...),
		SetsToWin:     setsToWin,
		LegsToWin:     legsToWin,
		StartingTotal: StartingTotal,
		Sets:          []*Set{},
		Stats:         []MatchStats{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	m.ensureStarted()
	m.recomputeStats()
	return m, nil
}

func (m *Match) validate() error {
	if len(m.Players) < 1 {
		return fmt.Errorf("%w: at least one player is required", ErrInvalidConfiguration)
	}
	if m.SetsToWin < 1 {
		return fmt.Errorf("%w: sets to win must be positive, got %d", ErrInvalidConfiguration, m.SetsToWin)
	}
	if m.LegsToWin < 1 {
		return fmt.Errorf("%w: legs to win must be positive, got %d", ErrInvalidConfiguration, m.LegsToWin)
	}
	if m.StartingPlayer < 0 || m.StartingPlayer >= len(m.Players) {
		return fmt.Errorf("%w: starting player %d out of range", ErrInvalidConfiguration, m.StartingPlayer)
	}
	names := mapset.NewSet[string]()
	for _, player := range m.Players {
		name := normalize.Name(player.Name)
		if name == "" {
			return fmt.Errorf("%w: player name is empty", ErrInvalidConfiguration)
		}
		if !names.Add(name) {
			return fmt.Errorf("%w: duplicate player %q", ErrInvalidConfiguration, player.Name)
		}
	}
	return nil
}

// ApplyThrow feeds one dart into the active leg, rebuilds every statistic
// from the leg tree and starts the next leg or set when one was won.
// Darts thrown after the match is won are ignored.
func (m *Match) ApplyThrow(target Target) (Result, error) {
	if len(m.Players) == 0 {
		return Result{Outcome: OutcomeIgnored}, ErrEmptyMatchState
	}
	m.ensureStarted()
	if m.IsComplete() {
		return Result{Outcome: OutcomeIgnored}, nil
	}

	set := m.ActiveSet()
	leg := set.ActiveLeg()
	res := Result{Outcome: leg.ApplyThrow(target)}

	m.recomputeStats()

	res.LegCompleted = leg.Completed
	switch {
	case m.IsComplete():
		res.SetCompleted = true
		res.MatchCompleted = true
	case set.IsComplete():
		res.SetCompleted = true
		m.addSet()
		m.recomputeStats()
	case leg.Completed:
		set.addLeg(m.Players, m.StartingTotal)
		m.recomputeStats()
	}
	return res, nil
}

// ensureStarted adds the first set and leg to a match that has none, and a
// fresh leg to a set whose last leg is done.
func (m *Match) ensureStarted() {
	if len(m.Sets) == 0 {
		m.addSet()
		m.recomputeStats()
		return
	}
	set := m.ActiveSet()
	if leg := set.ActiveLeg(); leg == nil || (leg.Completed && !set.IsComplete()) {
		set.addLeg(m.Players, m.StartingTotal)
		m.recomputeStats()
	}
}

// addSet starts a new set. The player throwing first rotates by one per set.
func (m *Match) addSet() {
	start := (m.StartingPlayer + len(m.Sets)) % len(m.Players)
	set := newSet(start)
	m.Sets = append(m.Sets, set)
	set.addLeg(m.Players, m.StartingTotal)
}

func (m *Match) recomputeStats() {
	for _, set := range m.Sets {
		set.AddStats(m.LegsToWin, m.Players)
	}
	stats := make([]MatchStats, 0, len(m.Players))
	for _, player := range m.Players {
		acc := MatchStats{Player: player}
		for _, set := range m.Sets {
			setStats, ok := set.PlayerStats(player.Name)
			if !ok {
				continue
			}
			acc.add(setStats.Stats)
			if setStats.Won {
				acc.SetsWon++
			}
		}
		acc.average()
		stats = append(stats, acc)
	}
	m.Stats = stats
}

// IsComplete reports whether a player has won the required number of sets.
func (m *Match) IsComplete() bool {
	_, ok := m.winner()
	return ok
}

func (m *Match) winner() (domain.Player, bool) {
	for _, stat := range m.Stats {
		if stat.SetsWon >= m.SetsToWin {
			return stat.Player, true
		}
	}
	return domain.Player{}, false
}

// WinnerName is empty until the match is won.
func (m *Match) WinnerName() string {
	player, ok := m.winner()
	if !ok {
		return ""
	}
	return player.Name
}

func (m *Match) Winner() (domain.Player, bool) {
	return m.winner()
}

// ActiveSet is the last set of the match, or nil before the match started.
func (m *Match) ActiveSet() *Set {
	if len(m.Sets) == 0 {
		return nil
	}
	return m.Sets[len(m.Sets)-1]
}

func (m *Match) activeLeg() (*Leg, error) {
	if len(m.Players) == 0 {
		return nil, ErrEmptyMatchState
	}
	set := m.ActiveSet()
	if set == nil {
		return nil, ErrEmptyMatchState
	}
	leg := set.ActiveLeg()
	if leg == nil || len(leg.ScoreCards) == 0 {
		return nil, ErrEmptyMatchState
	}
	return leg, nil
}

// ActiveLeg returns the leg the next dart goes into.
func (m *Match) ActiveLeg() (*Leg, error) {
	return m.activeLeg()
}

func (m *Match) ActivePlayerName() (string, error) {
	leg, err := m.activeLeg()
	if err != nil {
		return "", err
	}
	return leg.ActivePlayerName(), nil
}

func (m *Match) ActivePlayerScore() (int, error) {
	leg, err := m.activeLeg()
	if err != nil {
		return 0, err
	}
	return leg.ActivePlayerScore(), nil
}

func (m *Match) ActivePlayerOutstandingScore() (int, error) {
	leg, err := m.activeLeg()
	if err != nil {
		return 0, err
	}
	return leg.OutstandingScore(), nil
}

func (m *Match) ActiveTurnSummary() (string, error) {
	leg, err := m.activeLeg()
	if err != nil {
		return "", err
	}
	return leg.TurnSummary(), nil
}

func (m *Match) ActiveRound() (int, error) {
	leg, err := m.activeLeg()
	if err != nil {
		return 0, err
	}
	return leg.Round(), nil
}

// ActiveSetNumber is 1-based; 0 before the match started.
func (m *Match) ActiveSetNumber() int {
	return len(m.Sets)
}

// ActiveLegNumber is the 1-based number of the active leg within the active set.
func (m *Match) ActiveLegNumber() int {
	set := m.ActiveSet()
	if set == nil {
		return 0
	}
	return len(set.Legs)
}

// Description reads like "501 - First to 3 sets".
func (m *Match) Description() string {
	unit := "sets"
	if m.SetsToWin == 1 {
		unit = "set"
	}
	return fmt.Sprintf("%d - First to %d %s", m.StartingTotal, m.SetsToWin, unit)
}

// Title reads like "Alice vs Bob".
func (m *Match) Title() string {
	return strings.Join(m.PlayerNames(), " vs ")
}

func (m *Match) PlayerNames() []string {
	names := make([]string, 0, len(m.Players))
	for _, player := range m.Players {
		names = append(names, player.Name)
	}
	return names
}

func (m *Match) MatchStats(name string) (MatchStats, error) {
	for _, stat := range m.Stats {
		if stat.Player.Name == name {
			return stat, nil
		}
	}
	return MatchStats{}, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
}

func (m *Match) ActiveSetStats(name string) (SetStats, error) {
	set := m.ActiveSet()
	if set == nil {
		return SetStats{}, ErrEmptyMatchState
	}
	stats, ok := set.PlayerStats(name)
	if !ok {
		return SetStats{}, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
	return stats, nil
}

func (m *Match) ActiveLegStats(name string) (LegStats, error) {
	leg, err := m.activeLeg()
	if err != nil {
		return LegStats{}, err
	}
	stats, ok := leg.PlayerStats(name)
	if !ok {
		return LegStats{}, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
	return stats, nil
}

// Replay applies targets in order and returns the result of the last one.
func Replay(m *Match, targets []Target) (Result, error) {
	var res Result
	for _, target := range targets {
		var err error
		res, err = m.ApplyThrow(target)
		if err != nil {
			return res, err
		}
	}
	return res, nil
}
