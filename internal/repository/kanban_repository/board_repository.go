package kanban_repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Yvelin-officiel/Quanban/internal/model/kanban_model"
)

// SQLStore implements Store against PostgreSQL. The engine does the heavy
// lifting: serial primary keys, timestamp defaults and ON DELETE CASCADE on
// the foreign keys, so application code issues single statements only.
type SQLStore struct {
	DB *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{DB: db}
}

func (s *SQLStore) ListBoards(ctx context.Context) ([]*kanban_model.Board, error) {
	boards := []*kanban_model.Board{}

	q := `SELECT * FROM boards ORDER BY created_at DESC;`
	if err := s.DB.SelectContext(ctx, &boards, q); err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, nil
}

func (s *SQLStore) GetBoard(ctx context.Context, id int) (*kanban_model.Board, error) {
	var board kanban_model.Board

	err := s.DB.GetContext(ctx, &board, `SELECT * FROM boards WHERE id = $1;`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	return &board, nil
}

func (s *SQLStore) CreateBoard(ctx context.Context, in kanban_model.BoardInput) (*kanban_model.Board, error) {
	board := &kanban_model.Board{}

	q := `INSERT INTO boards (title, description) VALUES ($1, $2) RETURNING *;`
	err := s.DB.QueryRowxContext(ctx, q, in.Title, in.Description).StructScan(board)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	return board, nil
}

func (s *SQLStore) UpdateBoard(ctx context.Context, id int, in kanban_model.BoardInput) (*kanban_model.Board, error) {
	var board kanban_model.Board

	q := `UPDATE boards
	      SET title = $1, description = $2, updated_at = NOW()
	      WHERE id = $3
	      RETURNING *;`
	err := s.DB.QueryRowxContext(ctx, q, in.Title, in.Description, id).StructScan(&board)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to update board: %w", err)
	}
	return &board, nil
}

// DeleteBoard removes the board; the engine cascades to its columns and
// their tasks. Deleting an absent id succeeds.
func (s *SQLStore) DeleteBoard(ctx context.Context, id int) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM boards WHERE id = $1;`, id); err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	return nil
}
