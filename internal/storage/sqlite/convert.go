package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/goserg/darts/gen/model"
	"github.com/goserg/darts/internal/darts"
	"github.com/goserg/darts/internal/domain"
	"github.com/goserg/darts/internal/normalize"
	"github.com/goserg/darts/internal/storage"
)

func convertPlayersToDomain(players []model.Players) ([]domain.Player, error) {
	converted := make([]domain.Player, 0, len(players))
	for _, player := range players {
		p, err := convertPlayerToDomain(player)
		if err != nil {
			return nil, err
		}
		converted = append(converted, p)
	}
	return converted, nil
}

func convertPlayerToDomain(player model.Players) (domain.Player, error) {
	id, err := uuid.Parse(player.ID)
	if err != nil {
		return domain.Player{}, err
	}
	return domain.Player{
		ID:           id,
		Name:         player.Name,
		RegisteredAt: player.CreatedAt,
	}, nil
}

func convertPlayerFromDomain(player domain.Player) model.Players {
	return model.Players{
		ID:        player.ID.String(),
		Name:      player.Name,
		NameKey:   normalize.Name(player.Name),
		CreatedAt: player.RegisteredAt,
	}
}

// convertMatchFromDomain leaves ThrowCount at zero; UpdateMatch sets it.
func convertMatchFromDomain(m *darts.Match) (model.Matches, error) {
	state, err := json.Marshal(m)
	if err != nil {
		return model.Matches{}, err
	}
	row := model.Matches{
		ID:          m.ID.String(),
		CreatedAt:   m.CreatedAt.UnixNano(),
		Description: m.Description(),
		SetsToWin:   int32(m.SetsToWin),
		LegsToWin:   int32(m.LegsToWin),
		State:       string(state),
	}
	if winner := m.WinnerName(); winner != "" {
		row.Winner = &winner
	}
	return row, nil
}

func convertMatchToDomain(row model.Matches) (*darts.Match, error) {
	var m darts.Match
	if err := json.Unmarshal([]byte(row.State), &m); err != nil {
		return nil, fmt.Errorf("decode match %s: %w", row.ID, err)
	}
	return &m, nil
}

func convertThrowFromDomain(throw storage.Throw) model.Throws {
	return model.Throws{
		MatchID: throw.MatchID.String(),
		Seq:     int32(throw.Seq),
		Player:  throw.Player,
		Target:  throw.Target.Label(),
		Outcome: string(throw.Outcome),
	}
}

func convertThrowsToDomain(rows []model.Throws) ([]storage.Throw, error) {
	converted := make([]storage.Throw, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row.MatchID)
		if err != nil {
			return nil, err
		}
		target, err := darts.ParseTarget(row.Target)
		if err != nil {
			return nil, err
		}
		converted = append(converted, storage.Throw{
			MatchID: id,
			Seq:     int(row.Seq),
			Player:  row.Player,
			Target:  target,
			Outcome: darts.Outcome(row.Outcome),
		})
	}
	return converted, nil
}
