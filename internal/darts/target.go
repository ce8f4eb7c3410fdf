// Package darts implements 501 double-out scoring: throw targets, turns, legs,
// sets and matches with their derived statistics.
package darts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidTarget = errors.New("invalid target")

// Kind tells which variant of Target a value holds.
type Kind int

const (
	// KindMiss is a dart that scored nothing.
	KindMiss Kind = iota
	// KindNumber is a dart in one of the 1-20 segments.
	KindNumber
	// KindBullseye is a dart in the inner or outer bull.
	KindBullseye
)

type Multiplier int

const (
	Single Multiplier = 1
	Double Multiplier = 2
	Treble Multiplier = 3
)

const (
	minNumber = 1
	maxNumber = 20

	innerBullPoints = 50
	outerBullPoints = 25
	missPoints      = 0
)

// Target is where a single dart landed. The zero value is a miss.
type Target struct {
	kind       Kind
	number     int
	multiplier Multiplier
	inner      bool
}

// Number returns a target in segment n (1-20) with multiplier m.
// Out of range values are clamped into the board.
func Number(n int, m Multiplier) Target {
	switch {
	case n < minNumber:
		n = minNumber
	case n > maxNumber:
		n = maxNumber
	}
	switch {
	case m < Single:
		m = Single
	case m > Treble:
		m = Treble
	}
	return Target{kind: KindNumber, number: n, multiplier: m}
}

func S(n int) Target { return Number(n, Single) }
func D(n int) Target { return Number(n, Double) }
func T(n int) Target { return Number(n, Treble) }

func InnerBull() Target { return Target{kind: KindBullseye, inner: true} }
func OuterBull() Target { return Target{kind: KindBullseye} }
func Miss() Target      { return Target{kind: KindMiss} }

func (t Target) Kind() Kind             { return t.kind }
func (t Target) Segment() int           { return t.number }
func (t Target) Multiplier() Multiplier { return t.multiplier }

// Value is the number of points the dart scored.
func (t Target) Value() int {
	switch t.kind {
	case KindNumber:
		return t.number * int(t.multiplier)
	case KindBullseye:
		if t.inner {
			return innerBullPoints
		}
		return outerBullPoints
	case KindMiss:
		return missPoints
	}
	return missPoints
}

// Finishes reports whether the dart may be the last one of a leg:
// any double, or the inner bull.
func (t Target) Finishes() bool {
	switch t.kind {
	case KindNumber:
		return t.multiplier == Double
	case KindBullseye:
		return t.inner
	case KindMiss:
		return false
	}
	return false
}

// Label renders the target with the keypad vocabulary: S20, D5, T19, Bull, Outer Bull, Miss.
func (t Target) Label() string {
	switch t.kind {
	case KindNumber:
		return multiplierPrefix(t.multiplier) + strconv.Itoa(t.number)
	case KindBullseye:
		if t.inner {
			return "Bull"
		}
		return "Outer Bull"
	case KindMiss:
		return "Miss"
	}
	return "Miss"
}

func (t Target) String() string {
	return t.Label()
}

func multiplierPrefix(m Multiplier) string {
	switch m {
	case Double:
		return "D"
	case Treble:
		return "T"
	default:
		return "S"
	}
}

// ParseTarget is the inverse of Label. Matching is case-insensitive.
func ParseTarget(label string) (Target, error) {
	l := strings.ToUpper(strings.TrimSpace(label))
	switch l {
	case "MISS":
		return Miss(), nil
	case "BULL", "DBULL", "INNER BULL":
		return InnerBull(), nil
	case "OUTER BULL", "SBULL":
		return OuterBull(), nil
	case "":
		return Target{}, fmt.Errorf("%w: empty label", ErrInvalidTarget)
	}
	var m Multiplier
	switch l[0] {
	case 'S':
		m = Single
	case 'D':
		m = Double
	case 'T':
		m = Treble
	default:
		return Target{}, fmt.Errorf("%w: %q", ErrInvalidTarget, label)
	}
	n, err := strconv.Atoi(l[1:])
	if err != nil || n < minNumber || n > maxNumber {
		return Target{}, fmt.Errorf("%w: %q", ErrInvalidTarget, label)
	}
	return Number(n, m), nil
}

func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.Label()), nil
}

func (t *Target) UnmarshalText(text []byte) error {
	parsed, err := ParseTarget(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Board lists every distinct target: Miss, each segment as single, double and
// treble, then the outer and inner bull.
func Board() []Target {
	targets := make([]Target, 0, 1+3*maxNumber+2)
	targets = append(targets, Miss())
	for _, m := range []Multiplier{Single, Double, Treble} {
		for n := minNumber; n <= maxNumber; n++ {
			targets = append(targets, Number(n, m))
		}
	}
	return append(targets, OuterBull(), InnerBull())
}
