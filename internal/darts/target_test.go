package darts

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTarget(t *testing.T) {
	tests := []struct {
		name     string
		target   Target
		value    int
		label    string
		finishes bool
	}{
		{name: "single", target: S(20), value: 20, label: "S20", finishes: false},
		{name: "double", target: D(5), value: 10, label: "D5", finishes: true},
		{name: "treble", target: T(19), value: 57, label: "T19", finishes: false},
		{name: "inner bull", target: InnerBull(), value: 50, label: "Bull", finishes: true},
		{name: "outer bull", target: OuterBull(), value: 25, label: "Outer Bull", finishes: false},
		{name: "miss", target: Miss(), value: 0, label: "Miss", finishes: false},
		{name: "zero value is a miss", target: Target{}, value: 0, label: "Miss", finishes: false},
		{name: "clamped segment", target: Number(25, Double), value: 40, label: "D20", finishes: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.value, tt.target.Value())
			assert.Equal(t, tt.label, tt.target.Label())
			assert.Equal(t, tt.finishes, tt.target.Finishes())
		})
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		label   string
		want    Target
		wantErr bool
	}{
		{label: "T20", want: T(20)},
		{label: "d16", want: D(16)},
		{label: " S1 ", want: S(1)},
		{label: "Bull", want: InnerBull()},
		{label: "Outer Bull", want: OuterBull()},
		{label: "miss", want: Miss()},
		{label: "T21", wantErr: true},
		{label: "S0", wantErr: true},
		{label: "X5", wantErr: true},
		{label: "T", wantErr: true},
		{label: "", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			got, err := ParseTarget(tt.label)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidTarget), "error = %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTargetLabelRoundTrip(t *testing.T) {
	for n := 1; n <= 20; n++ {
		for _, m := range []Multiplier{Single, Double, Treble} {
			target := Number(n, m)
			parsed, err := ParseTarget(target.Label())
			require.NoError(t, err)
			assert.Equal(t, target, parsed)
		}
	}
}

func TestTurnJSON(t *testing.T) {
	turn := Turn{Throws: []Target{T(20), OuterBull(), Miss()}}
	data, err := json.Marshal(turn)
	require.NoError(t, err)
	assert.JSONEq(t, `{"throws":["T20","Outer Bull","Miss"]}`, string(data))

	var decoded Turn
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, turn, decoded)
}

func TestBoard(t *testing.T) {
	board := Board()
	require.Len(t, board, 63)
	assert.Equal(t, Miss(), board[0])
	assert.Equal(t, S(1), board[1])
	assert.Equal(t, T(20), board[60])
	assert.Equal(t, InnerBull(), board[62])

	labels := make(map[string]bool, len(board))
	for _, target := range board {
		labels[target.Label()] = true
		parsed, err := ParseTarget(target.Label())
		require.NoError(t, err)
		assert.Equal(t, target, parsed)
	}
	assert.Len(t, labels, 63)
}
