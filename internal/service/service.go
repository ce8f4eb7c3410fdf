package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/goserg/darts/internal/cache/mem"
	"github.com/goserg/darts/internal/config"
	"github.com/goserg/darts/internal/darts"
	"github.com/goserg/darts/internal/domain"
	"github.com/goserg/darts/internal/rating"
	"github.com/goserg/darts/internal/storage"
)

// MatchService is the only writer of matches. Throws are applied one at a
// time; readers always get copies.
type MatchService struct {
	mu            sync.Mutex
	playerStorage storage.PlayerStorage
	matchStorage  storage.MatchStorage
	cache         *mem.Cache
	defaults      config.Match
	loc           *time.Location
	log           *logrus.Entry
}

func New(
	l *logrus.Logger,
	playerStorage storage.PlayerStorage,
	matchStorage storage.MatchStorage,
	cache *mem.Cache,
	defaults config.Match,
) *MatchService {
	return &MatchService{
		playerStorage: playerStorage,
		matchStorage:  matchStorage,
		cache:         cache,
		defaults:      defaults,
		loc:           time.UTC,
		log: l.WithFields(logrus.Fields{
			"from": "match-service",
		}),
	}
}

// NewMatch describes a match to create. Zero SetsToWin or LegsToWin take the
// configured defaults.
type NewMatch struct {
	Players        []string
	SetsToWin      int
	LegsToWin      int
	StartingPlayer int
}

func (s *MatchService) CreateMatch(ctx context.Context, req NewMatch) (*darts.Match, error) {
	if req.SetsToWin == 0 {
		req.SetsToWin = s.defaults.SetsToWin
	}
	if req.LegsToWin == 0 {
		req.LegsToWin = s.defaults.LegsToWin
	}
	draft := make([]domain.Player, 0, len(req.Players))
	for _, name := range req.Players {
		draft = append(draft, domain.Player{Name: name})
	}
	// Reject a bad roster before anyone gets registered.
	if _, err := darts.NewMatch(draft, req.SetsToWin, req.LegsToWin, darts.WithStartingPlayer(req.StartingPlayer)); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	players := make([]domain.Player, 0, len(req.Players))
	for _, name := range req.Players {
		player, err := s.registerPlayer(ctx, name)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	m, err := darts.NewMatch(players, req.SetsToWin, req.LegsToWin, darts.WithStartingPlayer(req.StartingPlayer))
	if err != nil {
		return nil, err
	}
	err = s.matchStorage.CreateMatch(ctx, m)
	if err != nil {
		return nil, err
	}
	s.cache.PutMatch(m)
	s.log.WithFields(logrus.Fields{
		"match":       m.ID,
		"title":       m.Title(),
		"description": m.Description(),
	}).Info("match created")
	return m, nil
}

// registerPlayer returns the stored player with this name, adding it first
// when the name is new.
func (s *MatchService) registerPlayer(ctx context.Context, name string) (domain.Player, error) {
	if player, ok := s.cache.GetPlayerByName(name); ok {
		return player, nil
	}
	player, err := s.playerStorage.GetPlayerByName(ctx, name)
	if err == nil {
		s.cache.AddPlayer(player)
		return player, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return domain.Player{}, err
	}
	player, err = s.playerStorage.AddPlayer(ctx, domain.NewPlayer(name))
	if err != nil {
		return domain.Player{}, err
	}
	s.cache.AddPlayer(player)
	s.log.WithField("player", player.Name).Info("player registered")
	return player, nil
}

// Throw applies one dart to the match and stores it in the throw log.
// Darts thrown after the match is won are ignored and not stored.
func (s *MatchService) Throw(ctx context.Context, id uuid.UUID, target darts.Target) (*darts.Match, darts.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		res    darts.Result
		player string
	)
	m, err := s.matchStorage.UpdateMatch(ctx, id, func(m *darts.Match) (*storage.Throw, error) {
		var err error
		player, err = m.ActivePlayerName()
		if err != nil {
			return nil, err
		}
		res, err = m.ApplyThrow(target)
		if err != nil {
			return nil, err
		}
		if res.Outcome == darts.OutcomeIgnored {
			return nil, nil
		}
		return &storage.Throw{
			Player:  player,
			Target:  target,
			Outcome: res.Outcome,
		}, nil
	})
	if err != nil {
		s.cache.EvictMatch(id)
		return nil, darts.Result{}, err
	}
	s.cache.PutMatch(m)
	s.logThrow(m, player, target, res)
	return m, res, nil
}

func (s *MatchService) logThrow(m *darts.Match, player string, target darts.Target, res darts.Result) {
	log := s.log.WithFields(logrus.Fields{
		"match":  m.ID,
		"player": player,
		"target": target.Label(),
	})
	switch res.Outcome {
	case darts.OutcomeIgnored:
		log.Debug("throw ignored, match is over")
		return
	case darts.OutcomeBust:
		log.Info("bust")
	case darts.OutcomeCheckout:
		log.Info("checkout")
	default:
		log.WithField("outcome", res.Outcome).Debug("throw")
	}
	if res.SetCompleted {
		log.WithField("set", m.ActiveSetNumber()).Info("set won")
	}
	if res.MatchCompleted {
		log.WithField("winner", m.WinnerName()).Info("match won")
	}
}

func (s *MatchService) GetMatch(ctx context.Context, id uuid.UUID) (*darts.Match, error) {
	if m, ok := s.cache.GetMatch(id); ok {
		return m, nil
	}
	m, err := s.matchStorage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.PutMatch(m)
	return m, nil
}

// ListMatchesByMonth returns the matches created in the given calendar month, oldest first.
func (s *MatchService) ListMatchesByMonth(ctx context.Context, year int, month time.Month) ([]*darts.Match, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d", ErrInvalidPeriod, month)
	}
	from, to := monthRange(year, month, s.loc)
	return s.matchStorage.ListMatches(ctx, from, to)
}

var ErrInvalidPeriod = errors.New("invalid period")

// monthRange returns [first day of the month, first day of the next month).
func monthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}

func (s *MatchService) ListThrows(ctx context.Context, id uuid.UUID) ([]storage.Throw, error) {
	if _, err := s.GetMatch(ctx, id); err != nil {
		return nil, err
	}
	return s.matchStorage.ListThrows(ctx, id)
}

// RebuildMatch replays the throw log into a fresh match and stores the result
// as the new snapshot.
func (s *MatchService) RebuildMatch(ctx context.Context, id uuid.UUID) (*darts.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.matchStorage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	throws, err := s.matchStorage.ListThrows(ctx, id)
	if err != nil {
		return nil, err
	}
	m, err := darts.NewMatch(stored.Players, stored.SetsToWin, stored.LegsToWin,
		darts.WithStartingPlayer(stored.StartingPlayer),
		darts.WithID(stored.ID),
		darts.WithCreatedAt(stored.CreatedAt),
	)
	if err != nil {
		return nil, err
	}
	targets := make([]darts.Target, 0, len(throws))
	for _, throw := range throws {
		targets = append(targets, throw.Target)
	}
	if _, err := darts.Replay(m, targets); err != nil {
		return nil, err
	}
	err = s.matchStorage.ReplaceMatch(ctx, m)
	if err != nil {
		s.cache.EvictMatch(id)
		return nil, err
	}
	s.cache.PutMatch(m)
	s.log.WithFields(logrus.Fields{
		"match":  id,
		"throws": len(throws),
	}).Info("match rebuilt from throw log")
	return m, nil
}

func (s *MatchService) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	if s.cache.Valid() {
		return s.cache.Players(), nil
	}
	players, err := s.playerStorage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Update(players)
	return players, nil
}

// Ratings derives Elo and Glicko-2 ratings from every finished match.
func (s *MatchService) Ratings(ctx context.Context) ([]rating.PlayerRating, error) {
	matches, err := s.matchStorage.ListMatches(ctx, time.Unix(0, 0), time.Unix(0, math.MaxInt64))
	if err != nil {
		return nil, err
	}
	results := make([]rating.Result, 0, len(matches))
	for _, m := range matches {
		if !m.IsComplete() {
			continue
		}
		results = append(results, rating.Result{
			Players: m.PlayerNames(),
			Winner:  m.WinnerName(),
		})
	}
	return rating.Calculate(results), nil
}
