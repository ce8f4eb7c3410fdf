package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/goserg/darts/internal/darts"
	"github.com/goserg/darts/internal/domain"
)

var ErrNotFound = errors.New("not found")

type PlayerStorage interface {
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	// GetPlayerByName looks the player up by normalized name.
	GetPlayerByName(ctx context.Context, name string) (domain.Player, error)
	AddPlayer(ctx context.Context, player domain.Player) (domain.Player, error)
}

// Throw is one entry of a match's throw log.
type Throw struct {
	MatchID uuid.UUID     `json:"matchId"`
	Seq     int           `json:"seq"`
	Player  string        `json:"player"`
	Target  darts.Target  `json:"target"`
	Outcome darts.Outcome `json:"outcome"`
}

// UpdateFunc mutates a match loaded inside a transaction. A nil Throw leaves
// the stored match untouched.
type UpdateFunc func(m *darts.Match) (*Throw, error)

type MatchStorage interface {
	CreateMatch(ctx context.Context, m *darts.Match) error
	GetMatch(ctx context.Context, id uuid.UUID) (*darts.Match, error)
	// ListMatches returns matches created in [from, to), oldest first.
	ListMatches(ctx context.Context, from, to time.Time) ([]*darts.Match, error)
	ListThrows(ctx context.Context, matchID uuid.UUID) ([]Throw, error)
	UpdateMatch(ctx context.Context, id uuid.UUID, fn UpdateFunc) (*darts.Match, error)
	// ReplaceMatch overwrites the stored snapshot without touching the throw log.
	ReplaceMatch(ctx context.Context, m *darts.Match) error
}
