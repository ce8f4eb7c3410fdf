package darts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTurnAppend(t *testing.T) {
	var turn Turn
	assert.Equal(t, 0, turn.Total())
	assert.False(t, turn.IsFull())

	assert.True(t, turn.Append(T(20)))
	assert.True(t, turn.Append(T(20)))
	assert.True(t, turn.Append(T(20)))
	assert.True(t, turn.IsFull())
	assert.Equal(t, 180, turn.Total())

	for i := 0; i < 5; i++ {
		assert.False(t, turn.Append(InnerBull()))
	}
	assert.Len(t, turn.Throws, MaxThrows)
	assert.Equal(t, 180, turn.Total())
}

func TestTurnSummary(t *testing.T) {
	tests := []struct {
		name  string
		turn  Turn
		want  string
		total int
	}{
		{name: "empty", turn: Turn{}, want: "", total: 0},
		{name: "one dart", turn: Turn{Throws: []Target{D(20)}}, want: "D20", total: 40},
		{name: "full", turn: Turn{Throws: []Target{S(1), InnerBull(), Miss()}}, want: "S1, Bull, Miss", total: 51},
		{name: "bust record", turn: noScore(), want: "Miss, Miss, Miss", total: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.turn.Summary())
			assert.Equal(t, tt.total, tt.turn.Total())
		})
	}
}

func TestTurnLast(t *testing.T) {
	var turn Turn
	_, ok := turn.Last()
	assert.False(t, ok)

	turn.Append(S(3))
	turn.Append(D(8))
	last, ok := turn.Last()
	assert.True(t, ok)
	assert.Equal(t, D(8), last)
}
