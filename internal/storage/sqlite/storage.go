package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/goserg/darts/gen/model"
	"github.com/goserg/darts/gen/table"
	"github.com/goserg/darts/internal/config"
	"github.com/goserg/darts/internal/darts"
	"github.com/goserg/darts/internal/domain"
	sqlite3 "github.com/goserg/darts/internal/migrate"
	"github.com/goserg/darts/internal/normalize"
	"github.com/goserg/darts/internal/storage"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.PlayerStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.Storage) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "storage",
	})
	db, err := storage.Open(cfg.SqliteFile)
	if err != nil {
		return nil, err
	}
	err = sqlite3.UpServerDB(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	log.WithField("file", cfg.SqliteFile).Info("storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	var players []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		ORDER_BY(table.Players.CreatedAt.ASC()).
		QueryContext(ctx, s.db, &players)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(players)
}

func (s *Storage) GetPlayerByName(ctx context.Context, name string) (domain.Player, error) {
	var player model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.NameKey.EQ(sqlite.String(normalize.Name(name)))).
		QueryContext(ctx, s.db, &player)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Player{}, fmt.Errorf("player %q: %w", name, storage.ErrNotFound)
		}
		return domain.Player{}, err
	}
	return convertPlayerToDomain(player)
}

func (s *Storage) AddPlayer(ctx context.Context, player domain.Player) (domain.Player, error) {
	if player.ID == uuid.Nil {
		player.ID = uuid.New()
	}
	if player.RegisteredAt.IsZero() {
		player.RegisteredAt = time.Now()
	}
	_, err := table.Players.
		INSERT(table.Players.AllColumns).
		MODEL(convertPlayerFromDomain(player)).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.Player{}, err
	}
	return player, nil
}

func (s *Storage) CreateMatch(ctx context.Context, m *darts.Match) error {
	row, err := convertMatchFromDomain(m)
	if err != nil {
		return err
	}
	_, err = table.Matches.
		INSERT(table.Matches.AllColumns).
		MODEL(row).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	s.log.WithField("match", m.ID).Debug("match stored")
	return nil
}

func (s *Storage) GetMatch(ctx context.Context, id uuid.UUID) (*darts.Match, error) {
	row, err := s.getMatchRow(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	return convertMatchToDomain(row)
}

// dbtx is satisfied by *sql.DB and *sql.Tx.
type dbtx interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

func (s *Storage) getMatchRow(ctx context.Context, db dbtx, id uuid.UUID) (model.Matches, error) {
	var row model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		WHERE(table.Matches.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return model.Matches{}, fmt.Errorf("match %s: %w", id, storage.ErrNotFound)
		}
		return model.Matches{}, err
	}
	return row, nil
}

func (s *Storage) ListMatches(ctx context.Context, from, to time.Time) ([]*darts.Match, error) {
	var rows []model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		WHERE(
			table.Matches.CreatedAt.GT_EQ(sqlite.Int(from.UnixNano())).
				AND(table.Matches.CreatedAt.LT(sqlite.Int(to.UnixNano()))),
		).
		ORDER_BY(table.Matches.CreatedAt.ASC()).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		return nil, err
	}
	matches := make([]*darts.Match, 0, len(rows))
	for _, row := range rows {
		m, err := convertMatchToDomain(row)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func (s *Storage) ListThrows(ctx context.Context, matchID uuid.UUID) ([]storage.Throw, error) {
	var rows []model.Throws
	err := table.Throws.
		SELECT(table.Throws.AllColumns).
		FROM(table.Throws).
		WHERE(table.Throws.MatchID.EQ(sqlite.String(matchID.String()))).
		ORDER_BY(table.Throws.Seq.ASC()).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		return nil, err
	}
	return convertThrowsToDomain(rows)
}

// UpdateMatch loads the match, passes it to fn and stores the result together
// with the throw fn returns, all in one transaction.
func (s *Storage) UpdateMatch(ctx context.Context, id uuid.UUID, fn storage.UpdateFunc) (*darts.Match, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	row, err := s.getMatchRow(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	m, err := convertMatchToDomain(row)
	if err != nil {
		return nil, err
	}
	throw, err := fn(m)
	if err != nil {
		return nil, err
	}
	if throw == nil {
		return m, nil
	}

	throw.MatchID = id
	throw.Seq = int(row.ThrowCount) + 1
	_, err = table.Throws.
		INSERT(table.Throws.MutableColumns).
		MODEL(convertThrowFromDomain(*throw)).
		ExecContext(ctx, tx)
	if err != nil {
		return nil, err
	}

	updated, err := convertMatchFromDomain(m)
	if err != nil {
		return nil, err
	}
	updated.ThrowCount = int32(throw.Seq)
	_, err = table.Matches.
		UPDATE(table.Matches.MutableColumns).
		MODEL(updated).
		WHERE(table.Matches.ID.EQ(sqlite.String(id.String()))).
		ExecContext(ctx, tx)
	if err != nil {
		return nil, err
	}
	err = tx.Commit()
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Storage) ReplaceMatch(ctx context.Context, m *darts.Match) error {
	row, err := convertMatchFromDomain(m)
	if err != nil {
		return err
	}
	res, err := table.Matches.
		UPDATE(table.Matches.Description, table.Matches.Winner, table.Matches.State).
		MODEL(row).
		WHERE(table.Matches.ID.EQ(sqlite.String(row.ID))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("match %s: %w", m.ID, storage.ErrNotFound)
	}
	return nil
}
