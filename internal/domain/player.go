package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player is referenced by value from every leg, set and match it plays in.
// Two players are the same player when their names are equal.
type Player struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registeredAt"`
}

func NewPlayer(name string) Player {
	return Player{
		ID:           uuid.New(),
		Name:         name,
		RegisteredAt: time.Now(),
	}
}
