package darts

import "github.com/goserg/darts/internal/domain"

// Outcome is what a single dart did to a leg.
type Outcome string

const (
	// OutcomeIgnored means the dart was not recorded: the leg or match is over.
	OutcomeIgnored Outcome = "ignored"
	// OutcomeScored means the dart was added to an unfinished turn.
	OutcomeScored Outcome = "scored"
	// OutcomeTurnEnded means the third dart was thrown and the turn was committed.
	OutcomeTurnEnded Outcome = "turn_ended"
	// OutcomeBust means the turn was discarded and play moved to the next player.
	OutcomeBust Outcome = "bust"
	// OutcomeCheckout means the dart finished the leg on a double or the bull.
	OutcomeCheckout Outcome = "checkout"
)

// ScoreCard is one player's progress through a leg.
type ScoreCard struct {
	Player         domain.Player `json:"player"`
	RemainingScore int           `json:"remainingScore"`
	Turns          []Turn        `json:"turns"`
}

// Leg is a single countdown from the starting total to zero.
type Leg struct {
	StartingTotal   int         `json:"startingTotal"`
	StartingPlayer  int         `json:"startingPlayer"`
	ScoreCards      []ScoreCard `json:"scoreCards"`
	ActiveScoreCard int         `json:"activeScoreCard"`
	CurrentTurn     Turn        `json:"currentTurn"`
	Completed       bool        `json:"completed"`
}

// NewLeg creates a leg in which players[startingPlayer] throws first.
func NewLeg(players []domain.Player, startingTotal int, startingPlayer int) *Leg {
	cards := make([]ScoreCard, 0, len(players))
	for _, player := range players {
		cards = append(cards, ScoreCard{
			Player:         player,
			RemainingScore: startingTotal,
			Turns:          []Turn{},
		})
	}
	if len(cards) > 0 {
		startingPlayer %= len(cards)
	}
	return &Leg{
		StartingTotal:   startingTotal,
		StartingPlayer:  startingPlayer,
		ScoreCards:      cards,
		ActiveScoreCard: startingPlayer,
		CurrentTurn:     Turn{Throws: []Target{}},
	}
}

// ApplyThrow records one dart for the active player.
//
// A dart that leaves exactly 1, goes below 0, or reaches 0 without a double or
// the inner bull busts the turn: the score is left untouched, three misses are
// recorded and the next player is up. Reaching 0 with a finishing dart
// completes the leg. Otherwise the turn is committed after the third dart.
func (l *Leg) ApplyThrow(target Target) Outcome {
	if l.Completed || len(l.ScoreCards) == 0 {
		return OutcomeIgnored
	}
	if !l.CurrentTurn.Append(target) {
		return OutcomeIgnored
	}
	card := &l.ScoreCards[l.ActiveScoreCard]
	projected := card.RemainingScore - l.CurrentTurn.Total()

	switch {
	case projected == 0 && target.Finishes():
		l.commit(card)
		l.CurrentTurn = Turn{Throws: []Target{}}
		l.Completed = true
		return OutcomeCheckout
	case projected <= 1:
		card.Turns = append(card.Turns, noScore())
		l.nextPlayer()
		return OutcomeBust
	case l.CurrentTurn.IsFull():
		l.commit(card)
		l.nextPlayer()
		return OutcomeTurnEnded
	}
	return OutcomeScored
}

func (l *Leg) commit(card *ScoreCard) {
	card.Turns = append(card.Turns, l.CurrentTurn)
	card.RemainingScore -= l.CurrentTurn.Total()
}

func (l *Leg) nextPlayer() {
	l.CurrentTurn = Turn{Throws: []Target{}}
	l.ActiveScoreCard = (l.ActiveScoreCard + 1) % len(l.ScoreCards)
}

func (l *Leg) activeCard() *ScoreCard {
	return &l.ScoreCards[l.ActiveScoreCard]
}

func (l *Leg) ActivePlayer() domain.Player {
	return l.activeCard().Player
}

func (l *Leg) ActivePlayerName() string {
	return l.activeCard().Player.Name
}

// ActivePlayerScore is the committed score of the active player.
func (l *Leg) ActivePlayerScore() int {
	return l.activeCard().RemainingScore
}

// OutstandingScore is the active player's score with the unfinished turn taken off.
func (l *Leg) OutstandingScore() int {
	return l.activeCard().RemainingScore - l.CurrentTurn.Total()
}

// Round is the round every player is in or has yet to finish.
func (l *Leg) Round() int {
	if len(l.ScoreCards) == 0 {
		return 1
	}
	lowest := len(l.ScoreCards[0].Turns)
	for _, card := range l.ScoreCards[1:] {
		if len(card.Turns) < lowest {
			lowest = len(card.Turns)
		}
	}
	return lowest + 1
}

func (l *Leg) TurnSummary() string {
	return l.CurrentTurn.Summary()
}

func (l *Leg) PlayerNames() []string {
	names := make([]string, 0, len(l.ScoreCards))
	for _, card := range l.ScoreCards {
		names = append(names, card.Player.Name)
	}
	return names
}

// PlayerStats derives the statistics of the named player from their committed turns.
func (l *Leg) PlayerStats(name string) (LegStats, bool) {
	for _, card := range l.ScoreCards {
		if card.Player.Name == name {
			return scoreCardStats(card), true
		}
	}
	return LegStats{}, false
}

// Winner returns the player who checked out, if any.
func (l *Leg) Winner() (domain.Player, bool) {
	if !l.Completed {
		return domain.Player{}, false
	}
	for _, card := range l.ScoreCards {
		if card.RemainingScore == 0 {
			return card.Player, true
		}
	}
	return domain.Player{}, false
}
