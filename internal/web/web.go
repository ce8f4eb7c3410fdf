package web

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/goserg/darts/internal/config"
	"github.com/goserg/darts/internal/darts"
	"github.com/goserg/darts/internal/service"
	"github.com/goserg/darts/internal/web/webpath"
)

type Server struct {
	matchService *service.MatchService
	app          *fiber.App
	cfg          config.Server
	log          *logrus.Entry
	now          func() time.Time
}

func New(l *logrus.Logger, ms *service.MatchService, cfg config.Server) *Server {
	server := Server{
		matchService: ms,
		cfg:          cfg,
		log: l.WithFields(logrus.Fields{
			"from": "web",
		}),
		now: time.Now,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          server.handleError,
		DisableStartupMessage: !cfg.Debug,
	})
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.Api)
	})
	app.Get(webpath.Api, server.handleIndex)
	app.Get(webpath.ApiMatches, server.handleListMatches)
	app.Post(webpath.ApiMatches, server.handleCreateMatch)
	app.Get(webpath.ApiMatch, server.handleGetMatch)
	app.Get(webpath.ApiThrows, server.handleListThrows)
	app.Post(webpath.ApiThrows, server.handleThrow)
	app.Post(webpath.ApiRebuild, server.handleRebuild)
	app.Get(webpath.ApiPlayers, server.handleListPlayers)
	app.Get(webpath.ApiRatings, server.handleRatings)
	app.Get(webpath.ApiTargets, server.handleTargets)
	server.app = app
	return &server
}

func (s *Server) Serve() error {
	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
	if s.cfg.TLS() {
		return s.app.ListenTLS(addr, s.cfg.CertFile, s.cfg.KeyFile)
	}
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	status := statusOf(err)
	log := s.log.WithFields(logrus.Fields{
		"method": ctx.Method(),
		"path":   ctx.OriginalURL(),
		"status": status,
	})
	if status >= fiber.StatusInternalServerError {
		log.WithError(err).Error("request failed")
	} else {
		log.WithError(err).Debug("request rejected")
	}
	return ctx.Status(status).JSON(newErrorResponse(err))
}

func (s *Server) handleIndex(ctx *fiber.Ctx) error {
	return ctx.JSON(webpath.Path())
}

func (s *Server) handleListMatches(ctx *fiber.Ctx) error {
	year, month, err := parseMonth(ctx, s.now())
	if err != nil {
		return err
	}
	matches, err := s.matchService.ListMatchesByMonth(ctx.UserContext(), year, month)
	if err != nil {
		return err
	}
	return ctx.JSON(newMatchSummaries(matches))
}

func (s *Server) handleCreateMatch(ctx *fiber.Ctx) error {
	req, err := parseCreateMatchRequest(ctx)
	if err != nil {
		return err
	}
	m, err := s.matchService.CreateMatch(ctx.UserContext(), req.toService())
	if err != nil {
		return err
	}
	view, err := newMatchView(m)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(view)
}

func (s *Server) handleGetMatch(ctx *fiber.Ctx) error {
	id, err := parseMatchID(ctx)
	if err != nil {
		return err
	}
	m, err := s.matchService.GetMatch(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	view, err := newMatchView(m)
	if err != nil {
		return err
	}
	return ctx.JSON(view)
}

func (s *Server) handleThrow(ctx *fiber.Ctx) error {
	id, err := parseMatchID(ctx)
	if err != nil {
		return err
	}
	target, err := parseThrowRequest(ctx)
	if err != nil {
		return err
	}
	m, res, err := s.matchService.Throw(ctx.UserContext(), id, target)
	if err != nil {
		return err
	}
	view, err := newMatchView(m)
	if err != nil {
		return err
	}
	return ctx.JSON(throwResponse{
		Result: res,
		Match:  view,
	})
}

func (s *Server) handleListThrows(ctx *fiber.Ctx) error {
	id, err := parseMatchID(ctx)
	if err != nil {
		return err
	}
	throws, err := s.matchService.ListThrows(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(throwsResponse{Throws: throws})
}

func (s *Server) handleRebuild(ctx *fiber.Ctx) error {
	id, err := parseMatchID(ctx)
	if err != nil {
		return err
	}
	m, err := s.matchService.RebuildMatch(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	view, err := newMatchView(m)
	if err != nil {
		return err
	}
	return ctx.JSON(view)
}

func (s *Server) handleListPlayers(ctx *fiber.Ctx) error {
	players, err := s.matchService.ListPlayers(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(players)
}

func (s *Server) handleRatings(ctx *fiber.Ctx) error {
	ratings, err := s.matchService.Ratings(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(ratings)
}

func (s *Server) handleTargets(ctx *fiber.Ctx) error {
	return ctx.JSON(darts.Board())
}
