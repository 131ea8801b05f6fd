package kanban_services

import (
	"context"

	"github.com/Yvelin-officiel/Quanban/internal/model/kanban_model"
	"github.com/Yvelin-officiel/Quanban/internal/repository/kanban_repository"
)

type TaskService struct {
	Selector *kanban_repository.Selector
}

func NewTaskService(sel *kanban_repository.Selector) *TaskService {
	return &TaskService{Selector: sel}
}

func (s *TaskService) ListTasksByColumn(ctx context.Context, columnID int) ([]*kanban_model.Task, error) {
	return s.Selector.Store().ListTasksByColumn(ctx, columnID)
}

func (s *TaskService) ListTasksByBoard(ctx context.Context, boardID int) ([]*kanban_model.Task, error) {
	return s.Selector.Store().ListTasksByBoard(ctx, boardID)
}

func (s *TaskService) GetTask(ctx context.Context, id int) (*kanban_model.Task, error) {
	return s.Selector.Store().GetTask(ctx, id)
}

func (s *TaskService) CreateTask(ctx context.Context, in kanban_model.TaskInput) (*kanban_model.Task, error) {
	return s.Selector.Store().CreateTask(ctx, in)
}

func (s *TaskService) UpdateTask(ctx context.Context, id int, in kanban_model.TaskInput) (*kanban_model.Task, error) {
	return s.Selector.Store().UpdateTask(ctx, id, in)
}

func (s *TaskService) DeleteTask(ctx context.Context, id int) error {
	return s.Selector.Store().DeleteTask(ctx, id)
}
