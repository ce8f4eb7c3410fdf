package darts

import "strings"

// MaxThrows is the number of darts in one turn.
const MaxThrows = 3

// Turn holds up to three darts thrown by one player.
type Turn struct {
	Throws []Target `json:"throws"`
}

// Append adds a dart to the turn. Darts beyond the third are dropped and
// Append reports false.
func (t *Turn) Append(target Target) bool {
	if t.IsFull() {
		return false
	}
	t.Throws = append(t.Throws, target)
	return true
}

func (t Turn) Total() int {
	total := 0
	for _, target := range t.Throws {
		total += target.Value()
	}
	return total
}

func (t Turn) IsFull() bool {
	return len(t.Throws) == MaxThrows
}

// Last returns the most recent dart of the turn.
func (t Turn) Last() (Target, bool) {
	if len(t.Throws) == 0 {
		return Target{}, false
	}
	return t.Throws[len(t.Throws)-1], true
}

// Summary joins the dart labels, e.g. "T20, T20, D12".
func (t Turn) Summary() string {
	labels := make([]string, 0, len(t.Throws))
	for _, target := range t.Throws {
		labels = append(labels, target.Label())
	}
	return strings.Join(labels, ", ")
}

// noScore is what a busted turn is recorded as.
func noScore() Turn {
	return Turn{Throws: []Target{Miss(), Miss(), Miss()}}
}
