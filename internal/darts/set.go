package darts

import "github.com/goserg/darts/internal/domain"

// Set is a best-of-legs contest.
type Set struct {
	StartingPlayer int        `json:"startingPlayer"`
	Legs           []*Leg     `json:"legs"`
	Stats          []SetStats `json:"stats"`
}

func newSet(startingPlayer int) *Set {
	return &Set{
		StartingPlayer: startingPlayer,
		Legs:           []*Leg{},
		Stats:          []SetStats{},
	}
}

// ActiveLeg is the last leg of the set, or nil before the first leg is added.
func (s *Set) ActiveLeg() *Leg {
	if len(s.Legs) == 0 {
		return nil
	}
	return s.Legs[len(s.Legs)-1]
}

// addLeg starts the next leg. Throwing first rotates by one player per leg
// from the player who started the set.
func (s *Set) addLeg(players []domain.Player, startingTotal int) *Leg {
	start := 0
	if len(players) > 0 {
		start = (s.StartingPlayer + len(s.Legs)) % len(players)
	}
	leg := NewLeg(players, startingTotal, start)
	s.Legs = append(s.Legs, leg)
	return leg
}

// AddStats rebuilds the per player statistics from the legs.
func (s *Set) AddStats(legsToWin int, players []domain.Player) {
	stats := make([]SetStats, 0, len(players))
	for _, player := range players {
		acc := SetStats{Player: player}
		for _, leg := range s.Legs {
			legStats, ok := leg.PlayerStats(player.Name)
			if !ok {
				continue
			}
			acc.add(legStats.Stats)
			if legStats.Won {
				acc.LegsWon++
			}
		}
		acc.Won = acc.LegsWon >= legsToWin
		acc.average()
		stats = append(stats, acc)
	}
	s.Stats = stats
}

// IsComplete reports whether a player has won the required number of legs.
// It reads the statistics built by AddStats.
func (s *Set) IsComplete() bool {
	for _, stat := range s.Stats {
		if stat.Won {
			return true
		}
	}
	return false
}

func (s *Set) PlayerStats(name string) (SetStats, bool) {
	for _, stat := range s.Stats {
		if stat.Player.Name == name {
			return stat, true
		}
	}
	return SetStats{}, false
}

func (s *Set) Winner() (domain.Player, bool) {
	for _, stat := range s.Stats {
		if stat.Won {
			return stat.Player, true
		}
	}
	return domain.Player{}, false
}
