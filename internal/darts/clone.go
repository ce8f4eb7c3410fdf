package darts

import "slices"

// Clone returns a deep copy of the match. Changes to the copy never reach m.
func (m *Match) Clone() *Match {
	c := *m
	c.Players = slices.Clone(m.Players)
	c.Stats = slices.Clone(m.Stats)
	c.Sets = make([]*Set, 0, len(m.Sets))
	for _, set := range m.Sets {
		c.Sets = append(c.Sets, set.clone())
	}
	return &c
}

func (s *Set) clone() *Set {
	c := *s
	c.Stats = slices.Clone(s.Stats)
	c.Legs = make([]*Leg, 0, len(s.Legs))
	for _, leg := range s.Legs {
		c.Legs = append(c.Legs, leg.clone())
	}
	return &c
}

func (l *Leg) clone() *Leg {
	c := *l
	c.CurrentTurn = l.CurrentTurn.clone()
	c.ScoreCards = make([]ScoreCard, 0, len(l.ScoreCards))
	for _, card := range l.ScoreCards {
		turns := make([]Turn, 0, len(card.Turns))
		for _, turn := range card.Turns {
			turns = append(turns, turn.clone())
		}
		card.Turns = turns
		c.ScoreCards = append(c.ScoreCards, card)
	}
	return &c
}

func (t Turn) clone() Turn {
	throws := make([]Target, len(t.Throws))
	copy(throws, t.Throws)
	return Turn{Throws: throws}
}
