package darts

import "github.com/goserg/darts/internal/domain"

const (
	oneEighty = 180
	oneForty  = 140
	ton       = 100
)

// Stats are the counters shared by leg, set and match statistics.
type Stats struct {
	Throws       int     `json:"throws"`
	Total        int     `json:"total"`
	OneEighties  int     `json:"oneEighties"`
	OneForties   int     `json:"oneForties"`
	Tons         int     `json:"tons"`
	OneDartAvg   float64 `json:"oneDartAvg"`
	ThreeDartAvg float64 `json:"threeDartAvg"`
}

// addTurn counts a committed turn. A turn is classified in exactly one band:
// 180, 140-179 or 100-139.
func (s *Stats) addTurn(t Turn) {
	s.Throws += len(t.Throws)
	total := t.Total()
	s.Total += total
	switch {
	case total == oneEighty:
		s.OneEighties++
	case total >= oneForty:
		s.OneForties++
	case total >= ton:
		s.Tons++
	}
}

// add sums the counters of o. Averages are left alone; call average afterwards.
func (s *Stats) add(o Stats) {
	s.Throws += o.Throws
	s.Total += o.Total
	s.OneEighties += o.OneEighties
	s.OneForties += o.OneForties
	s.Tons += o.Tons
}

func (s *Stats) average() {
	s.OneDartAvg = 0
	if s.Throws > 0 {
		s.OneDartAvg = float64(s.Total) / float64(s.Throws)
	}
	s.ThreeDartAvg = s.OneDartAvg * MaxThrows
}

// LegStats describe one player's performance in a single leg.
type LegStats struct {
	Player         domain.Player `json:"player"`
	RemainingScore int           `json:"remainingScore"`
	Won            bool          `json:"won"`
	Stats
}

// SetStats fold the leg statistics of one player over a set.
type SetStats struct {
	Player  domain.Player `json:"player"`
	LegsWon int           `json:"legsWon"`
	Won     bool          `json:"won"`
	Stats
}

// MatchStats fold the set statistics of one player over a match.
type MatchStats struct {
	Player  domain.Player `json:"player"`
	SetsWon int           `json:"setsWon"`
	Stats
}

func scoreCardStats(card ScoreCard) LegStats {
	stats := LegStats{
		Player:         card.Player,
		RemainingScore: card.RemainingScore,
		Won:            card.RemainingScore == 0,
	}
	for _, turn := range card.Turns {
		stats.addTurn(turn)
	}
	stats.average()
	return stats
}
