package mem

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/goserg/darts/internal/darts"
	"github.com/goserg/darts/internal/domain"
	"github.com/goserg/darts/internal/normalize"
)

// Cache keeps live matches and the player roster in memory. Matches are
// copied in and out so callers never share state with the cache.
type Cache struct {
	mu      sync.RWMutex
	valid   bool
	players map[string]domain.Player
	matches map[uuid.UUID]*darts.Match
}

func New() *Cache {
	return &Cache{
		players: make(map[string]domain.Player),
		matches: make(map[uuid.UUID]*darts.Match),
	}
}

// Update replaces the roster.
func (c *Cache) Update(players []domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.players = make(map[string]domain.Player)
	for i := range players {
		name := normalize.Name(players[i].Name)
		c.players[name] = players[i]
	}
	c.valid = true
}

// Valid reports whether the roster was loaded.
func (c *Cache) Valid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.valid
}

func (c *Cache) AddPlayer(player domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.players[normalize.Name(player.Name)] = player
}

func (c *Cache) GetPlayerByName(name string) (domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	name = normalize.Name(name)
	player, ok := c.players[name]
	if !ok {
		return domain.Player{}, false
	}
	return player, true
}

// Players returns the roster ordered by registration.
func (c *Cache) Players() []domain.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()

	players := make([]domain.Player, 0, len(c.players))
	for _, player := range c.players {
		players = append(players, player)
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].RegisteredAt.Before(players[j].RegisteredAt)
	})
	return players
}

func (c *Cache) PutMatch(m *darts.Match) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.matches[m.ID] = m.Clone()
}

func (c *Cache) GetMatch(id uuid.UUID) (*darts.Match, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m, ok := c.matches[id]
	if !ok {
		return nil, false
	}
	return m.Clone(), true
}

func (c *Cache) EvictMatch(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.matches, id)
}
