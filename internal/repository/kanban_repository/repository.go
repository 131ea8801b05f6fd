package kanban_repository

import (
	"context"
	"errors"

	"github.com/Yvelin-officiel/Quanban/internal/model/kanban_model"
)

var (
	ErrBoardNotFound  = errors.New("board not found")
	ErrColumnNotFound = errors.New("column not found")
	ErrTaskNotFound   = errors.New("task not found")
)

// Store is the entity access contract shared by the SQL and in-memory
// backends. Callers cannot tell the implementations apart: both cascade
// deletes, order siblings by position, assign ids and stamp timestamps the
// same way. Gets and updates signal a missing id with the package sentinels;
// deletes succeed unconditionally, a missing id is a no-op.
type Store interface {
	ListBoards(ctx context.Context) ([]*kanban_model.Board, error)
	GetBoard(ctx context.Context, id int) (*kanban_model.Board, error)
	CreateBoard(ctx context.Context, in kanban_model.BoardInput) (*kanban_model.Board, error)
	UpdateBoard(ctx context.Context, id int, in kanban_model.BoardInput) (*kanban_model.Board, error)
	DeleteBoard(ctx context.Context, id int) error

	ListColumnsByBoard(ctx context.Context, boardID int) ([]*kanban_model.Column, error)
	GetColumn(ctx context.Context, id int) (*kanban_model.Column, error)
	CreateColumn(ctx context.Context, in kanban_model.ColumnInput) (*kanban_model.Column, error)
	UpdateColumn(ctx context.Context, id int, in kanban_model.ColumnInput) (*kanban_model.Column, error)
	DeleteColumn(ctx context.Context, id int) error

	ListTasksByColumn(ctx context.Context, columnID int) ([]*kanban_model.Task, error)
	ListTasksByBoard(ctx context.Context, boardID int) ([]*kanban_model.Task, error)
	GetTask(ctx context.Context, id int) (*kanban_model.Task, error)
	CreateTask(ctx context.Context, in kanban_model.TaskInput) (*kanban_model.Task, error)
	UpdateTask(ctx context.Context, id int, in kanban_model.TaskInput) (*kanban_model.Task, error)
	DeleteTask(ctx context.Context, id int) error
}
