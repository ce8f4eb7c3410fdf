package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

type Server struct {
	Host  string `toml:"host" env:"DARTS_HOST"`
	Port  int    `toml:"port" env:"DARTS_PORT"`
	Debug bool   `toml:"debug_mode" env:"DARTS_DEBUG"`

	// CertFile and KeyFile switch the API to HTTPS when both are set.
	CertFile string `toml:"cert_file" env:"DARTS_CERT_FILE"`
	KeyFile  string `toml:"key_file" env:"DARTS_KEY_FILE"`
}

func (s Server) TLS() bool {
	return s.CertFile != "" && s.KeyFile != ""
}

type Storage struct {
	SqliteFile string `toml:"sqlite_file" env:"DARTS_SQLITE_FILE"`
}

// Match holds the defaults used when a new match request leaves them out.
type Match struct {
	SetsToWin int `toml:"sets_to_win"`
	LegsToWin int `toml:"legs_to_win"`
}

type Log struct {
	Level string `toml:"level" env:"DARTS_LOG_LEVEL"`
}

type Config struct {
	Server  Server
	Storage Storage
	Match   Match
	Log     Log
}

func Default() Config {
	return Config{
		Server: Server{
			Host: "0.0.0.0",
			Port: 3000,
		},
		Storage: Storage{
			SqliteFile: "darts.sqlite",
		},
		Match: Match{
			SetsToWin: 3,
			LegsToWin: 3,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// New reads the TOML file at path on top of the defaults, then applies
// DARTS_* environment overrides.
func New(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Match.SetsToWin < 1 || cfg.Match.LegsToWin < 1 {
		return Config{}, fmt.Errorf("match defaults must be positive, got %d sets and %d legs",
			cfg.Match.SetsToWin, cfg.Match.LegsToWin)
	}
	return cfg, nil
}
