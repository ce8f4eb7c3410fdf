package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/goserg/darts/internal/cache/mem"
	"github.com/goserg/darts/internal/config"
	"github.com/goserg/darts/internal/logger"
	"github.com/goserg/darts/internal/service"
	"github.com/goserg/darts/internal/storage/sqlite"
	"github.com/goserg/darts/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "configs/server.toml", "path to the server config")
	migrateOnly := flag.Bool("migrate", false, "apply migrations and exit")
	flag.Parse()

	cfg, err := config.New(*configPath)
	if err != nil {
		return err
	}
	l := logger.New(cfg.Log.Level)

	st, err := sqlite.New(l, cfg.Storage)
	if err != nil {
		return err
	}
	defer st.Close()
	if *migrateOnly {
		l.Info("migrations applied")
		return nil
	}

	matchService := service.New(l, st, st, mem.New(), cfg.Match)
	server := web.New(l, matchService, cfg.Server)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve()
	}()
	l.WithFields(logrus.Fields{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	}).Info("server started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err = <-errCh:
		return err
	case sig := <-stop:
		l.WithField("signal", sig.String()).Info("shutting down")
	}
	return errors.Join(server.Shutdown(), <-errCh)
}
