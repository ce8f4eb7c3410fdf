package web

import (
	"time"

	"github.com/google/uuid"

	"github.com/goserg/darts/internal/darts"
	"github.com/goserg/darts/internal/storage"
)

type activeView struct {
	Player      string         `json:"player"`
	Score       int            `json:"score"`
	Outstanding int            `json:"outstanding"`
	Round       int            `json:"round"`
	Turn        string         `json:"turn"`
	Throws      []darts.Target `json:"throws"`
}

type playerView struct {
	Player    string      `json:"player"`
	SetsWon   int         `json:"setsWon"`
	LegsWon   int         `json:"legsWon"`
	Remaining int         `json:"remaining"`
	Match     darts.Stats `json:"match"`
	Set       darts.Stats `json:"set"`
	Leg       darts.Stats `json:"leg"`
}

// matchView is the score board of a match.
type matchView struct {
	ID          uuid.UUID    `json:"id"`
	CreatedAt   time.Time    `json:"createdAt"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	SetsToWin   int          `json:"setsToWin"`
	LegsToWin   int          `json:"legsToWin"`
	Winner      string       `json:"winner"`
	Complete    bool         `json:"complete"`
	SetNumber   int          `json:"set"`
	LegNumber   int          `json:"leg"`
	Active      activeView   `json:"active"`
	Players     []playerView `json:"players"`
}

func newMatchView(m *darts.Match) (matchView, error) {
	leg, err := m.ActiveLeg()
	if err != nil {
		return matchView{}, err
	}
	view := matchView{
		ID:          m.ID,
		CreatedAt:   m.CreatedAt,
		Title:       m.Title(),
		Description: m.Description(),
		SetsToWin:   m.SetsToWin,
		LegsToWin:   m.LegsToWin,
		Winner:      m.WinnerName(),
		Complete:    m.IsComplete(),
		SetNumber:   m.ActiveSetNumber(),
		LegNumber:   m.ActiveLegNumber(),
		Active: activeView{
			Player:      leg.ActivePlayerName(),
			Score:       leg.ActivePlayerScore(),
			Outstanding: leg.OutstandingScore(),
			Round:       leg.Round(),
			Turn:        leg.TurnSummary(),
			Throws:      leg.CurrentTurn.Throws,
		},
		Players: make([]playerView, 0, len(m.Players)),
	}
	for _, name := range m.PlayerNames() {
		matchStats, err := m.MatchStats(name)
		if err != nil {
			return matchView{}, err
		}
		setStats, err := m.ActiveSetStats(name)
		if err != nil {
			return matchView{}, err
		}
		legStats, err := m.ActiveLegStats(name)
		if err != nil {
			return matchView{}, err
		}
		view.Players = append(view.Players, playerView{
			Player:    name,
			SetsWon:   matchStats.SetsWon,
			LegsWon:   setStats.LegsWon,
			Remaining: legStats.RemainingScore,
			Match:     matchStats.Stats,
			Set:       setStats.Stats,
			Leg:       legStats.Stats,
		})
	}
	return view, nil
}

type matchSummary struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Winner      string    `json:"winner"`
	Complete    bool      `json:"complete"`
}

func newMatchSummaries(matches []*darts.Match) []matchSummary {
	summaries := make([]matchSummary, 0, len(matches))
	for _, m := range matches {
		summaries = append(summaries, matchSummary{
			ID:          m.ID,
			CreatedAt:   m.CreatedAt,
			Title:       m.Title(),
			Description: m.Description(),
			Winner:      m.WinnerName(),
			Complete:    m.IsComplete(),
		})
	}
	return summaries
}

type throwResponse struct {
	Result darts.Result `json:"result"`
	Match  matchView    `json:"match"`
}

type throwsResponse struct {
	Throws []storage.Throw `json:"throws"`
}
