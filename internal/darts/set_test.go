package darts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/darts/internal/domain"
)

func TestSetAddStats(t *testing.T) {
	players := []domain.Player{playerA, playerB}
	set := newSet(1)
	assert.Nil(t, set.ActiveLeg())

	leg := set.addLeg(players, 60)
	assert.Equal(t, 1, leg.StartingPlayer)
	throwAll(leg, T(20))               // B busts on 60 with a treble
	throwAll(leg, S(20), S(20), D(10)) // A checks out

	set.AddStats(2, players)
	assert.False(t, set.IsComplete())

	statsA, ok := set.PlayerStats("Player A")
	require.True(t, ok)
	assert.Equal(t, 1, statsA.LegsWon)
	assert.Equal(t, 60, statsA.Total)
	assert.Equal(t, 3, statsA.Throws)
	assert.InDelta(t, 20.0, statsA.OneDartAvg, 1e-9)
	assert.InDelta(t, 60.0, statsA.ThreeDartAvg, 1e-9)

	statsB, ok := set.PlayerStats("Player B")
	require.True(t, ok)
	assert.Equal(t, 0, statsB.LegsWon)
	assert.Equal(t, 0, statsB.Total)
	assert.Equal(t, 3, statsB.Throws)
	assert.Equal(t, 0.0, statsB.OneDartAvg)

	leg = set.addLeg(players, 60)
	assert.Equal(t, 0, leg.StartingPlayer)
	throwAll(leg, S(20), S(20), D(10))
	set.AddStats(2, players)
	assert.True(t, set.IsComplete())

	winner, ok := set.Winner()
	require.True(t, ok)
	assert.Equal(t, playerA, winner)

	statsA, _ = set.PlayerStats("Player A")
	assert.Equal(t, 2, statsA.LegsWon)
	assert.True(t, statsA.Won)
	assert.Equal(t, 120, statsA.Total)
	assert.Equal(t, 6, statsA.Throws)
	assert.Same(t, leg, set.ActiveLeg())
}

func TestSetStatsAreRebuilt(t *testing.T) {
	players := []domain.Player{playerA}
	set := newSet(0)
	leg := set.addLeg(players, StartingTotal)
	throwAll(leg, oneEightyDarts()...)

	set.AddStats(1, players)
	set.AddStats(1, players)
	stats, ok := set.PlayerStats("Player A")
	require.True(t, ok)
	assert.Equal(t, 180, stats.Total)
	assert.Equal(t, 1, stats.OneEighties)
	assert.Len(t, set.Stats, 1)

	_, ok = set.PlayerStats("Player B")
	assert.False(t, ok)
}
