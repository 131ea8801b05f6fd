package kanban_services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Yvelin-officiel/Quanban/internal/model/kanban_model"
	"github.com/Yvelin-officiel/Quanban/internal/repository/kanban_repository"
)

type BoardService struct {
	Selector *kanban_repository.Selector
}

func NewBoardService(sel *kanban_repository.Selector) *BoardService {
	return &BoardService{Selector: sel}
}

func (s *BoardService) ListBoards(ctx context.Context) ([]*kanban_model.Board, error) {
	return s.Selector.Store().ListBoards(ctx)
}

func (s *BoardService) GetBoard(ctx context.Context, id int) (*kanban_model.Board, error) {
	return s.Selector.Store().GetBoard(ctx, id)
}

func (s *BoardService) CreateBoard(ctx context.Context, in kanban_model.BoardInput) (*kanban_model.Board, error) {
	return s.Selector.Store().CreateBoard(ctx, in)
}

func (s *BoardService) UpdateBoard(ctx context.Context, id int, in kanban_model.BoardInput) (*kanban_model.Board, error) {
	return s.Selector.Store().UpdateBoard(ctx, id, in)
}

func (s *BoardService) DeleteBoard(ctx context.Context, id int) error {
	return s.Selector.Store().DeleteBoard(ctx, id)
}

// GetBoardDetails assembles the nested board view: the board, its columns in
// position order, each column carrying its tasks. A missing board
// short-circuits before any column or task read. The per-column task fetches
// are independent reads and run concurrently; the first failure cancels the
// rest and fails the whole call.
func (s *BoardService) GetBoardDetails(ctx context.Context, id int) (*kanban_model.BoardDetails, error) {
	store := s.Selector.Store()

	board, err := store.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	columns, err := store.ListColumnsByBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &kanban_model.BoardDetails{
		Board:   *board,
		Columns: make([]*kanban_model.ColumnWithTasks, len(columns)),
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, column := range columns {
		i, column := i, column
		g.Go(func() error {
			tasks, err := store.ListTasksByColumn(gctx, column.ID)
			if err != nil {
				return err
			}
			details.Columns[i] = &kanban_model.ColumnWithTasks{Column: *column, Tasks: tasks}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}
