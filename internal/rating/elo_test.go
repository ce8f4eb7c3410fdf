package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElo(t *testing.T) {
	tests := []struct {
		name string
		ra   int
		rb   int
		k    int
		sa   Points
		want int
	}{
		{name: "same rating draw", ra: 1000, rb: 1000, k: 40, sa: Draw, want: 1000},
		{name: "same rating win", ra: 1000, rb: 1000, k: 40, sa: Win, want: 1020},
		{name: "same rating lose", ra: 1000, rb: 1000, k: 40, sa: Lose, want: 980},
		{name: "top rating draw", ra: 1100, rb: 1000, k: 40, sa: Draw, want: 1094},
		{name: "top rating win", ra: 1100, rb: 1000, k: 40, sa: Win, want: 1114},
		{name: "top rating lose", ra: 1100, rb: 1000, k: 40, sa: Lose, want: 1074},
		{name: "bottom rating draw", ra: 1000, rb: 1100, k: 40, sa: Draw, want: 1006},
		{name: "bottom rating win", ra: 1000, rb: 1100, k: 40, sa: Win, want: 1026},
		{name: "bottom rating lose", ra: 1000, rb: 1100, k: 40, sa: Lose, want: 986},
		{name: "close rating draw", ra: 944, rb: 938, k: 40, sa: Draw, want: 944},
		{name: "experienced win", ra: 1000, rb: 1000, k: 20, sa: Win, want: 1010},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Elo(tt.ra, tt.rb, tt.k, tt.sa))
		})
	}
}

func TestCoefficient(t *testing.T) {
	assert.Equal(t, 40, Coefficient(0, 1000))
	assert.Equal(t, 40, Coefficient(30, 2500))
	assert.Equal(t, 20, Coefficient(31, 2399))
	assert.Equal(t, 10, Coefficient(31, 2400))
}
