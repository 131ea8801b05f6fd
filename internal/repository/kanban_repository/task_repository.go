package kanban_repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Yvelin-officiel/Quanban/internal/model/kanban_model"
)

func (s *SQLStore) ListTasksByColumn(ctx context.Context, columnID int) ([]*kanban_model.Task, error) {
	tasks := []*kanban_model.Task{}

	q := `SELECT * FROM tasks WHERE column_id = $1 ORDER BY position;`
	if err := s.DB.SelectContext(ctx, &tasks, q, columnID); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListTasksByBoard returns every task on the board, walking the columns in
// position order and the tasks within each column in position order.
func (s *SQLStore) ListTasksByBoard(ctx context.Context, boardID int) ([]*kanban_model.Task, error) {
	tasks := []*kanban_model.Task{}

	q := `SELECT t.* FROM tasks t
	      INNER JOIN columns c ON t.column_id = c.id
	      WHERE c.board_id = $1
	      ORDER BY c.position, t.position;`
	if err := s.DB.SelectContext(ctx, &tasks, q, boardID); err != nil {
		return nil, fmt.Errorf("failed to list board tasks: %w", err)
	}
	return tasks, nil
}

func (s *SQLStore) GetTask(ctx context.Context, id int) (*kanban_model.Task, error) {
	var task kanban_model.Task

	err := s.DB.GetContext(ctx, &task, `SELECT * FROM tasks WHERE id = $1;`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &task, nil
}

func (s *SQLStore) CreateTask(ctx context.Context, in kanban_model.TaskInput) (*kanban_model.Task, error) {
	task := &kanban_model.Task{}

	priority := in.Priority
	if priority == "" {
		priority = kanban_model.PriorityMedium
	}

	q := `INSERT INTO tasks (column_id, title, description, position, priority, due_date)
	      VALUES ($1, $2, $3, $4, $5, $6)
	      RETURNING *;`
	err := s.DB.QueryRowxContext(ctx, q, in.ColumnID, in.Title, in.Description, in.Position, priority, in.DueDate).StructScan(task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

func (s *SQLStore) UpdateTask(ctx context.Context, id int, in kanban_model.TaskInput) (*kanban_model.Task, error) {
	var task kanban_model.Task

	priority := in.Priority
	if priority == "" {
		priority = kanban_model.PriorityMedium
	}

	q := `UPDATE tasks
	      SET column_id = $1, title = $2, description = $3, position = $4,
	          priority = $5, due_date = $6, updated_at = NOW()
	      WHERE id = $7
	      RETURNING *;`
	err := s.DB.QueryRowxContext(ctx, q, in.ColumnID, in.Title, in.Description, in.Position, priority, in.DueDate, id).StructScan(&task)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return &task, nil
}

func (s *SQLStore) DeleteTask(ctx context.Context, id int) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1;`, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
