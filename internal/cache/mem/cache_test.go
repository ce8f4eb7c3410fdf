package mem

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/darts/internal/darts"
	"github.com/goserg/darts/internal/domain"
)

func TestPlayers(t *testing.T) {
	c := New()
	assert.False(t, c.Valid())

	now := time.Now()
	alice := domain.Player{ID: uuid.New(), Name: "Alice", RegisteredAt: now}
	bob := domain.Player{ID: uuid.New(), Name: "Bob", RegisteredAt: now.Add(time.Minute)}
	c.Update([]domain.Player{bob, alice})
	assert.True(t, c.Valid())

	got, ok := c.GetPlayerByName(" ALICE ")
	require.True(t, ok)
	assert.Equal(t, alice, got)

	_, ok = c.GetPlayerByName("Carol")
	assert.False(t, ok)

	carol := domain.Player{ID: uuid.New(), Name: "Carol", RegisteredAt: now.Add(time.Hour)}
	c.AddPlayer(carol)
	assert.Equal(t, []domain.Player{alice, bob, carol}, c.Players())
}

func TestMatchesAreCopied(t *testing.T) {
	c := New()
	m, err := darts.NewMatch([]domain.Player{{Name: "Alice"}, {Name: "Bob"}}, 1, 1)
	require.NoError(t, err)
	c.PutMatch(m)

	_, err = m.ApplyThrow(darts.T(20))
	require.NoError(t, err)

	cached, ok := c.GetMatch(m.ID)
	require.True(t, ok)
	score, err := cached.ActivePlayerOutstandingScore()
	require.NoError(t, err)
	assert.Equal(t, 501, score)

	_, err = cached.ApplyThrow(darts.T(19))
	require.NoError(t, err)
	again, ok := c.GetMatch(m.ID)
	require.True(t, ok)
	score, err = again.ActivePlayerOutstandingScore()
	require.NoError(t, err)
	assert.Equal(t, 501, score)

	c.EvictMatch(m.ID)
	_, ok = c.GetMatch(m.ID)
	assert.False(t, ok)
}
