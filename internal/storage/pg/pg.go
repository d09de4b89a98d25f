// Package pg implements the storage layer over PostgreSQL.
//
// Cascading deletes are enforced by the schema: foreign keys carry
// ON DELETE CASCADE, so removing a board takes its lists, cards,
// comments and membership rows with it in one statement. Reads that
// depend on order always sort by (position, id) so duplicate or gapped
// positions still produce a deterministic total order.
package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/taskboard-dev/taskboard/internal/config"
	internal_errors "github.com/taskboard-dev/taskboard/internal/errors"
	"github.com/taskboard-dev/taskboard/internal/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	full_name     TEXT NOT NULL,
	is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
	created       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS boards (
	id       BIGSERIAL PRIMARY KEY,
	owner_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name     TEXT NOT NULL,
	created  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS board_members (
	id       BIGSERIAL PRIMARY KEY,
	board_id BIGINT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
	user_id  BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	role     TEXT NOT NULL CHECK (role IN ('editor', 'viewer')),
	added    TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (board_id, user_id)
);

CREATE TABLE IF NOT EXISTS lists (
	id       BIGSERIAL PRIMARY KEY,
	board_id BIGINT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
	name     TEXT NOT NULL,
	position BIGINT NOT NULL DEFAULT 0,
	created  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS cards (
	id          BIGSERIAL PRIMARY KEY,
	list_id     BIGINT NOT NULL REFERENCES lists(id) ON DELETE CASCADE,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	due_date    DATE,
	status      TEXT NOT NULL DEFAULT 'To Do' CHECK (status IN ('To Do', 'Done')),
	position    BIGINT NOT NULL DEFAULT 0,
	created     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS comments (
	id        BIGSERIAL PRIMARY KEY,
	card_id   BIGINT NOT NULL REFERENCES cards(id) ON DELETE CASCADE,
	author_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	content   TEXT NOT NULL,
	created   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_board_members_board ON board_members(board_id);
CREATE INDEX IF NOT EXISTS idx_board_members_user ON board_members(user_id);
CREATE INDEX IF NOT EXISTS idx_lists_board ON lists(board_id);
CREATE INDEX IF NOT EXISTS idx_cards_list ON cards(list_id);
CREATE INDEX IF NOT EXISTS idx_comments_card ON comments(card_id);
`

type Storage struct {
	db *sql.DB
}

// ConnectionConfig holds database connection pool settings.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 1 * time.Minute,
	}
}

// New connects to postgres, applies the schema and returns the storage.
func New(cfg *config.Config) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Private.Pg.Host, cfg.Private.Pg.Port,
		cfg.Private.Pg.User, cfg.Private.Pg.Password,
		cfg.Private.Pg.Dbname)
	return Open(connStr, DefaultConnectionConfig())
}

// Open is the connection-string entry point; integration tests use it
// directly against a container.
func Open(connStr string, connCfg ConnectionConfig) (*Storage, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(connCfg.MaxOpenConns)
	db.SetMaxIdleConns(connCfg.MaxIdleConns)
	db.SetConnMaxLifetime(connCfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(connCfg.ConnMaxIdleTime)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// Ping backs the readiness probe.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// withTx executes fn within a transaction. The deferred Rollback is a
// no-op once the transaction has been committed.
func (s *Storage) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return s.unavailable("begin tx", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return s.unavailable("commit tx", err)
	}
	return nil
}

// unavailable logs the real storage error and returns the generic
// Unavailable kind; raw store error text never reaches clients.
func (s *Storage) unavailable(op string, err error) error {
	logger.Log.Error("storage failure", "op", op, "err", err)
	return internal_errors.Unavailable("Storage temporarily unavailable")
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
