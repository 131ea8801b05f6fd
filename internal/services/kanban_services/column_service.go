package kanban_services

import (
	"context"

	"github.com/Yvelin-officiel/Quanban/internal/model/kanban_model"
	"github.com/Yvelin-officiel/Quanban/internal/repository/kanban_repository"
)

type ColumnService struct {
	Selector *kanban_repository.Selector
}

func NewColumnService(sel *kanban_repository.Selector) *ColumnService {
	return &ColumnService{Selector: sel}
}

func (s *ColumnService) ListColumnsByBoard(ctx context.Context, boardID int) ([]*kanban_model.Column, error) {
	return s.Selector.Store().ListColumnsByBoard(ctx, boardID)
}

func (s *ColumnService) GetColumn(ctx context.Context, id int) (*kanban_model.Column, error) {
	return s.Selector.Store().GetColumn(ctx, id)
}

func (s *ColumnService) CreateColumn(ctx context.Context, in kanban_model.ColumnInput) (*kanban_model.Column, error) {
	return s.Selector.Store().CreateColumn(ctx, in)
}

func (s *ColumnService) UpdateColumn(ctx context.Context, id int, in kanban_model.ColumnInput) (*kanban_model.Column, error) {
	return s.Selector.Store().UpdateColumn(ctx, id, in)
}

func (s *ColumnService) DeleteColumn(ctx context.Context, id int) error {
	return s.Selector.Store().DeleteColumn(ctx, id)
}
