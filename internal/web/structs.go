package web

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/goserg/darts/internal/darts"
	"github.com/goserg/darts/internal/service"
)

var ErrBadRequest = errors.New("bad request")

type createMatchRequest struct {
	Players        []string `json:"players"`
	SetsToWin      int      `json:"setsToWin"`
	LegsToWin      int      `json:"legsToWin"`
	StartingPlayer int      `json:"startingPlayer"`
}

func (r createMatchRequest) Validate() error {
	var err error
	if len(r.Players) == 0 {
		err = errors.Join(err, errors.New("at least one player is required"))
	}
	for i, name := range r.Players {
		if strings.TrimSpace(name) == "" {
			err = errors.Join(err, fmt.Errorf("player %d has an empty name", i+1))
		}
	}
	if r.SetsToWin < 0 {
		err = errors.Join(err, errors.New("setsToWin must not be negative"))
	}
	if r.LegsToWin < 0 {
		err = errors.Join(err, errors.New("legsToWin must not be negative"))
	}
	if r.StartingPlayer < 0 || (len(r.Players) > 0 && r.StartingPlayer >= len(r.Players)) {
		err = errors.Join(err, errors.New("startingPlayer must point at one of the players"))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return nil
}

func (r createMatchRequest) toService() service.NewMatch {
	players := make([]string, 0, len(r.Players))
	for _, name := range r.Players {
		players = append(players, strings.TrimSpace(name))
	}
	return service.NewMatch{
		Players:        players,
		SetsToWin:      r.SetsToWin,
		LegsToWin:      r.LegsToWin,
		StartingPlayer: r.StartingPlayer,
	}
}

func parseCreateMatchRequest(ctx *fiber.Ctx) (createMatchRequest, error) {
	var req createMatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return createMatchRequest{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	if err := req.Validate(); err != nil {
		return createMatchRequest{}, err
	}
	return req, nil
}

type throwRequest struct {
	Target string `json:"target"`
}

func parseThrowRequest(ctx *fiber.Ctx) (darts.Target, error) {
	var req throwRequest
	if err := ctx.BodyParser(&req); err != nil {
		return darts.Target{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return darts.ParseTarget(req.Target)
}

func parseMatchID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: match id: %w", ErrBadRequest, err)
	}
	return id, nil
}

// parseMonth reads ?month=YYYY-MM, defaulting to the current month.
func parseMonth(ctx *fiber.Ctx, now time.Time) (int, time.Month, error) {
	value := ctx.Query("month")
	if value == "" {
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month must look like 2024-03", ErrBadRequest)
	}
	return t.Year(), t.Month(), nil
}
