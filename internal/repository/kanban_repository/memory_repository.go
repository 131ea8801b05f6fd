package kanban_repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Yvelin-officiel/Quanban/internal/model/kanban_model"
)

// MemoryStore implements Store on plain slices. It backs fallback mode when
// the database is unreachable; state lives for the process only. A single
// mutex serializes every operation: the cascade on delete and the id counter
// increments are multi-step and must not interleave.
type MemoryStore struct {
	mu sync.Mutex

	boards  []*kanban_model.Board
	columns []*kanban_model.Column
	tasks   []*kanban_model.Task

	nextBoardID  int
	nextColumnID int
	nextTaskID   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextBoardID:  1,
		nextColumnID: 1,
		nextTaskID:   1,
	}
}

func (m *MemoryStore) ListBoards(ctx context.Context) ([]*kanban_model.Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*kanban_model.Board, 0, len(m.boards))
	for _, b := range m.boards {
		copied := *b
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStore) GetBoard(ctx context.Context, id int) (*kanban_model.Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.boards {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, ErrBoardNotFound
}

func (m *MemoryStore) CreateBoard(ctx context.Context, in kanban_model.BoardInput) (*kanban_model.Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	board := &kanban_model.Board{
		ID:          m.nextBoardID,
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.nextBoardID++
	m.boards = append(m.boards, board)

	copied := *board
	return &copied, nil
}

func (m *MemoryStore) UpdateBoard(ctx context.Context, id int, in kanban_model.BoardInput) (*kanban_model.Board, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.boards {
		if b.ID == id {
			b.Title = in.Title
			b.Description = in.Description
			b.UpdatedAt = time.Now()
			copied := *b
			return &copied, nil
		}
	}
	return nil, ErrBoardNotFound
}

// DeleteBoard removes the board, its columns and their tasks. The doomed
// column ids are collected before the columns slice is rewritten; filtering
// columns first would leave no way to find the orphaned tasks.
func (m *MemoryStore) DeleteBoard(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doomed := map[int]bool{}
	for _, c := range m.columns {
		if c.BoardID == id {
			doomed[c.ID] = true
		}
	}

	m.boards = filterBoards(m.boards, func(b *kanban_model.Board) bool { return b.ID != id })
	m.columns = filterColumns(m.columns, func(c *kanban_model.Column) bool { return c.BoardID != id })
	m.tasks = filterTasks(m.tasks, func(t *kanban_model.Task) bool { return !doomed[t.ColumnID] })
	return nil
}

func (m *MemoryStore) ListColumnsByBoard(ctx context.Context, boardID int) ([]*kanban_model.Column, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []*kanban_model.Column{}
	for _, c := range m.columns {
		if c.BoardID == boardID {
			copied := *c
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (m *MemoryStore) GetColumn(ctx context.Context, id int) (*kanban_model.Column, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.columns {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, ErrColumnNotFound
}

func (m *MemoryStore) CreateColumn(ctx context.Context, in kanban_model.ColumnInput) (*kanban_model.Column, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	column := &kanban_model.Column{
		ID:        m.nextColumnID,
		BoardID:   in.BoardID,
		Title:     in.Title,
		Position:  in.Position,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.nextColumnID++
	m.columns = append(m.columns, column)

	copied := *column
	return &copied, nil
}

func (m *MemoryStore) UpdateColumn(ctx context.Context, id int, in kanban_model.ColumnInput) (*kanban_model.Column, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.columns {
		if c.ID == id {
			c.Title = in.Title
			c.Position = in.Position
			c.UpdatedAt = time.Now()
			copied := *c
			return &copied, nil
		}
	}
	return nil, ErrColumnNotFound
}

func (m *MemoryStore) DeleteColumn(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.columns = filterColumns(m.columns, func(c *kanban_model.Column) bool { return c.ID != id })
	m.tasks = filterTasks(m.tasks, func(t *kanban_model.Task) bool { return t.ColumnID != id })
	return nil
}

func (m *MemoryStore) ListTasksByColumn(ctx context.Context, columnID int) ([]*kanban_model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []*kanban_model.Task{}
	for _, t := range m.tasks {
		if t.ColumnID == columnID {
			copied := *t
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (m *MemoryStore) ListTasksByBoard(ctx context.Context, boardID int) ([]*kanban_model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	columnPos := map[int]int{}
	for _, c := range m.columns {
		if c.BoardID == boardID {
			columnPos[c.ID] = c.Position
		}
	}

	out := []*kanban_model.Task{}
	for _, t := range m.tasks {
		if _, ok := columnPos[t.ColumnID]; ok {
			copied := *t
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if columnPos[out[i].ColumnID] != columnPos[out[j].ColumnID] {
			return columnPos[out[i].ColumnID] < columnPos[out[j].ColumnID]
		}
		return out[i].Position < out[j].Position
	})
	return out, nil
}

func (m *MemoryStore) GetTask(ctx context.Context, id int) (*kanban_model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.tasks {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, ErrTaskNotFound
}

func (m *MemoryStore) CreateTask(ctx context.Context, in kanban_model.TaskInput) (*kanban_model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	priority := in.Priority
	if priority == "" {
		priority = kanban_model.PriorityMedium
	}

	now := time.Now()
	task := &kanban_model.Task{
		ID:          m.nextTaskID,
		ColumnID:    in.ColumnID,
		Title:       in.Title,
		Description: in.Description,
		Position:    in.Position,
		Priority:    priority,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.nextTaskID++
	m.tasks = append(m.tasks, task)

	copied := *task
	return &copied, nil
}

func (m *MemoryStore) UpdateTask(ctx context.Context, id int, in kanban_model.TaskInput) (*kanban_model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	priority := in.Priority
	if priority == "" {
		priority = kanban_model.PriorityMedium
	}

	for _, t := range m.tasks {
		if t.ID == id {
			t.ColumnID = in.ColumnID
			t.Title = in.Title
			t.Description = in.Description
			t.Position = in.Position
			t.Priority = priority
			t.DueDate = in.DueDate
			t.UpdatedAt = time.Now()
			copied := *t
			return &copied, nil
		}
	}
	return nil, ErrTaskNotFound
}

func (m *MemoryStore) DeleteTask(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tasks = filterTasks(m.tasks, func(t *kanban_model.Task) bool { return t.ID != id })
	return nil
}

func filterBoards(in []*kanban_model.Board, keep func(*kanban_model.Board) bool) []*kanban_model.Board {
	out := in[:0]
	for _, b := range in {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

func filterColumns(in []*kanban_model.Column, keep func(*kanban_model.Column) bool) []*kanban_model.Column {
	out := in[:0]
	for _, c := range in {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func filterTasks(in []*kanban_model.Task, keep func(*kanban_model.Task) bool) []*kanban_model.Task {
	out := in[:0]
	for _, t := range in {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
