package kanban_repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Yvelin-officiel/Quanban/internal/config"
	"github.com/Yvelin-officiel/Quanban/internal/database"
	"github.com/Yvelin-officiel/Quanban/internal/secrets"
)

type Mode string

const (
	ModeDatabase Mode = "DATABASE"
	ModeMock     Mode = "MOCK"
)

// Selector decides once, at startup, which Store backs the process. It never
// retries and never swaps back: a failed connection means fallback mode until
// restart. After NewSelector returns the fields are read-only, so accessors
// need no synchronization.
type Selector struct {
	store Store
	db    *sqlx.DB
	mode  Mode
}

// NewSelector resolves the database password, connects and initializes the
// schema. Any failure along the way is absorbed: a warning is logged and the
// seeded in-memory store takes over. Request handlers never see the error.
func NewSelector(ctx context.Context, cfg *config.Config, logger *zap.Logger) *Selector {
	password := secrets.ResolveDBPassword(ctx, cfg, logger)

	db, err := database.NewConnection(ctx, cfg.DSN(password))
	if err != nil {
		logger.Warn("database unreachable, falling back to in-memory store", zap.Error(err))
		return &Selector{store: NewSeededMemoryStore(), mode: ModeMock}
	}

	if err := database.InitSchema(ctx, db); err != nil {
		logger.Warn("schema initialization failed, falling back to in-memory store", zap.Error(err))
		db.Close()
		return &Selector{store: NewSeededMemoryStore(), mode: ModeMock}
	}

	logger.Info("connected to database", zap.String("host", cfg.DBHost), zap.String("dbname", cfg.DBName))
	return &Selector{store: NewSQLStore(db), db: db, mode: ModeDatabase}
}

// NewFallbackSelector pins the selector to the given in-memory store. Used in
// tests to get a fresh store per test.
func NewFallbackSelector(store *MemoryStore) *Selector {
	return &Selector{store: store, mode: ModeMock}
}

// Store returns the active backend.
func (s *Selector) Store() Store {
	return s.store
}

func (s *Selector) IsFallback() bool {
	return s.mode == ModeMock
}

func (s *Selector) Mode() Mode {
	return s.mode
}

func (s *Selector) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
