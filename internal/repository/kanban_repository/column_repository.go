package kanban_repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Yvelin-officiel/Quanban/internal/model/kanban_model"
)

func (s *SQLStore) ListColumnsByBoard(ctx context.Context, boardID int) ([]*kanban_model.Column, error) {
	columns := []*kanban_model.Column{}

	q := `SELECT * FROM columns WHERE board_id = $1 ORDER BY position;`
	if err := s.DB.SelectContext(ctx, &columns, q, boardID); err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}
	return columns, nil
}

func (s *SQLStore) GetColumn(ctx context.Context, id int) (*kanban_model.Column, error) {
	var column kanban_model.Column

	err := s.DB.GetContext(ctx, &column, `SELECT * FROM columns WHERE id = $1;`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrColumnNotFound
		}
		return nil, fmt.Errorf("failed to get column: %w", err)
	}
	return &column, nil
}

func (s *SQLStore) CreateColumn(ctx context.Context, in kanban_model.ColumnInput) (*kanban_model.Column, error) {
	column := &kanban_model.Column{}

	q := `INSERT INTO columns (board_id, title, position) VALUES ($1, $2, $3) RETURNING *;`
	err := s.DB.QueryRowxContext(ctx, q, in.BoardID, in.Title, in.Position).StructScan(column)
	if err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}
	return column, nil
}

// UpdateColumn replaces title and position; board_id stays as created.
func (s *SQLStore) UpdateColumn(ctx context.Context, id int, in kanban_model.ColumnInput) (*kanban_model.Column, error) {
	var column kanban_model.Column

	q := `UPDATE columns
	      SET title = $1, position = $2, updated_at = NOW()
	      WHERE id = $3
	      RETURNING *;`
	err := s.DB.QueryRowxContext(ctx, q, in.Title, in.Position, id).StructScan(&column)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrColumnNotFound
		}
		return nil, fmt.Errorf("failed to update column: %w", err)
	}
	return &column, nil
}

// DeleteColumn removes the column; the engine cascades to its tasks.
func (s *SQLStore) DeleteColumn(ctx context.Context, id int) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM columns WHERE id = $1;`, id); err != nil {
		return fmt.Errorf("failed to delete column: %w", err)
	}
	return nil
}
