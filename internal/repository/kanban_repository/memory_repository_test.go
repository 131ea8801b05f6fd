package kanban_repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yvelin-officiel/Quanban/internal/model/kanban_model"
)

func newBoard(t *testing.T, store *MemoryStore, title string) *kanban_model.Board {
	t.Helper()
	board, err := store.CreateBoard(context.Background(), kanban_model.BoardInput{Title: title})
	require.NoError(t, err)
	return board
}

func newColumn(t *testing.T, store *MemoryStore, boardID int, title string, position int) *kanban_model.Column {
	t.Helper()
	column, err := store.CreateColumn(context.Background(), kanban_model.ColumnInput{
		BoardID:  boardID,
		Title:    title,
		Position: position,
	})
	require.NoError(t, err)
	return column
}

func newTask(t *testing.T, store *MemoryStore, columnID int, title string, position int) *kanban_model.Task {
	t.Helper()
	task, err := store.CreateTask(context.Background(), kanban_model.TaskInput{
		ColumnID: columnID,
		Title:    title,
		Position: position,
	})
	require.NoError(t, err)
	return task
}

func TestCreateBoardAssignsIDAndTimestamps(t *testing.T) {
	store := NewMemoryStore()

	first := newBoard(t, store, "First")
	second := newBoard(t, store, "Second")

	require.Equal(t, 1, first.ID)
	require.Equal(t, 2, second.ID)
	require.False(t, first.CreatedAt.IsZero())
	require.Equal(t, first.CreatedAt, first.UpdatedAt)
	require.Nil(t, first.Description)
}

func TestGetBoardNotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetBoard(context.Background(), 42)
	require.ErrorIs(t, err, ErrBoardNotFound)
}

func TestUpdateBoardKeepsIDAndCreatedAt(t *testing.T) {
	store := NewMemoryStore()
	board := newBoard(t, store, "Before")

	desc := "updated"
	updated, err := store.UpdateBoard(context.Background(), board.ID, kanban_model.BoardInput{
		Title:       "After",
		Description: &desc,
	})
	require.NoError(t, err)

	require.Equal(t, board.ID, updated.ID)
	require.Equal(t, "After", updated.Title)
	require.Equal(t, &desc, updated.Description)
	require.Equal(t, board.CreatedAt, updated.CreatedAt)
	require.False(t, updated.UpdatedAt.Before(board.UpdatedAt))

	_, err = store.UpdateBoard(context.Background(), 999, kanban_model.BoardInput{Title: "X"})
	require.ErrorIs(t, err, ErrBoardNotFound)
}

func TestDeleteBoardCascadesToColumnsAndTasks(t *testing.T) {
	store := NewMemoryStore()
	board := newBoard(t, store, "Doomed")
	other := newBoard(t, store, "Survivor")

	colA := newColumn(t, store, board.ID, "A", 0)
	colB := newColumn(t, store, board.ID, "B", 1)
	keep := newColumn(t, store, other.ID, "Keep", 0)

	taskA := newTask(t, store, colA.ID, "in A", 0)
	taskB := newTask(t, store, colB.ID, "in B", 0)
	kept := newTask(t, store, keep.ID, "kept", 0)

	require.NoError(t, store.DeleteBoard(context.Background(), board.ID))

	_, err := store.GetBoard(context.Background(), board.ID)
	require.ErrorIs(t, err, ErrBoardNotFound)
	_, err = store.GetColumn(context.Background(), colA.ID)
	require.ErrorIs(t, err, ErrColumnNotFound)
	_, err = store.GetColumn(context.Background(), colB.ID)
	require.ErrorIs(t, err, ErrColumnNotFound)

	// The regression this guards against: computing affected tasks from the
	// columns slice after it has already been filtered leaves orphans.
	_, err = store.GetTask(context.Background(), taskA.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)
	_, err = store.GetTask(context.Background(), taskB.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)

	_, err = store.GetColumn(context.Background(), keep.ID)
	require.NoError(t, err)
	_, err = store.GetTask(context.Background(), kept.ID)
	require.NoError(t, err)
}

func TestDeleteColumnCascadesToTasks(t *testing.T) {
	store := NewMemoryStore()
	board := newBoard(t, store, "Board")
	column := newColumn(t, store, board.ID, "Col", 0)
	task := newTask(t, store, column.ID, "Task", 0)

	require.NoError(t, store.DeleteColumn(context.Background(), column.ID))

	_, err := store.GetColumn(context.Background(), column.ID)
	require.ErrorIs(t, err, ErrColumnNotFound)
	_, err = store.GetTask(context.Background(), task.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.DeleteBoard(context.Background(), 123))
	require.NoError(t, store.DeleteColumn(context.Background(), 123))
	require.NoError(t, store.DeleteTask(context.Background(), 123))
}

func TestColumnsSortedByPosition(t *testing.T) {
	store := NewMemoryStore()
	board := newBoard(t, store, "Board")

	newColumn(t, store, board.ID, "third", 2)
	newColumn(t, store, board.ID, "first", 0)
	newColumn(t, store, board.ID, "second", 1)

	columns, err := store.ListColumnsByBoard(context.Background(), board.ID)
	require.NoError(t, err)
	require.Len(t, columns, 3)
	require.Equal(t, "first", columns[0].Title)
	require.Equal(t, "second", columns[1].Title)
	require.Equal(t, "third", columns[2].Title)
}

func TestTasksSortedByPosition(t *testing.T) {
	store := NewMemoryStore()
	board := newBoard(t, store, "Board")
	column := newColumn(t, store, board.ID, "Col", 0)

	newTask(t, store, column.ID, "second", 5)
	newTask(t, store, column.ID, "first", 1)

	tasks, err := store.ListTasksByColumn(context.Background(), column.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, "first", tasks[0].Title)
	require.Equal(t, "second", tasks[1].Title)
}

func TestListTasksByBoardWalksColumnsInOrder(t *testing.T) {
	store := NewMemoryStore()
	board := newBoard(t, store, "Board")
	right := newColumn(t, store, board.ID, "right", 1)
	left := newColumn(t, store, board.ID, "left", 0)

	newTask(t, store, right.ID, "r1", 0)
	newTask(t, store, left.ID, "l2", 1)
	newTask(t, store, left.ID, "l1", 0)

	tasks, err := store.ListTasksByBoard(context.Background(), board.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	require.Equal(t, "l1", tasks[0].Title)
	require.Equal(t, "l2", tasks[1].Title)
	require.Equal(t, "r1", tasks[2].Title)
}

func TestIDsNeverReused(t *testing.T) {
	store := NewMemoryStore()

	first := newBoard(t, store, "First")
	require.NoError(t, store.DeleteBoard(context.Background(), first.ID))

	second := newBoard(t, store, "Second")
	require.Greater(t, second.ID, first.ID)
}

func TestTaskPriorityDefaultsToMedium(t *testing.T) {
	store := NewMemoryStore()
	board := newBoard(t, store, "Board")
	column := newColumn(t, store, board.ID, "Col", 0)

	task := newTask(t, store, column.ID, "Task", 0)
	require.Equal(t, kanban_model.PriorityMedium, task.Priority)
}

func TestUpdateTaskReplacesMutableFields(t *testing.T) {
	store := NewMemoryStore()
	board := newBoard(t, store, "Board")
	colA := newColumn(t, store, board.ID, "A", 0)
	colB := newColumn(t, store, board.ID, "B", 1)
	task := newTask(t, store, colA.ID, "Task", 0)

	updated, err := store.UpdateTask(context.Background(), task.ID, kanban_model.TaskInput{
		ColumnID: colB.ID,
		Title:    "Moved",
		Position: 3,
		Priority: kanban_model.PriorityHigh,
	})
	require.NoError(t, err)
	require.Equal(t, task.ID, updated.ID)
	require.Equal(t, colB.ID, updated.ColumnID)
	require.Equal(t, 3, updated.Position)
	require.Equal(t, kanban_model.PriorityHigh, updated.Priority)
	require.Equal(t, task.CreatedAt, updated.CreatedAt)
}

func TestReturnedEntitiesAreCopies(t *testing.T) {
	store := NewMemoryStore()
	board := newBoard(t, store, "Original")

	board.Title = "Mutated by caller"

	fetched, err := store.GetBoard(context.Background(), board.ID)
	require.NoError(t, err)
	require.Equal(t, "Original", fetched.Title)
}

func TestSeededStoreCountersStartAboveFixtures(t *testing.T) {
	store := NewSeededMemoryStore()

	boards, err := store.ListBoards(context.Background())
	require.NoError(t, err)
	require.Len(t, boards, 2)
	// Newest-created first.
	require.Equal(t, "Personal Growth", boards[0].Title)

	board := newBoard(t, store, "Fresh")
	require.Equal(t, 3, board.ID)

	column, err := store.CreateColumn(context.Background(), kanban_model.ColumnInput{BoardID: board.ID, Title: "Col", Position: 0})
	require.NoError(t, err)
	require.Equal(t, 6, column.ID)

	task, err := store.CreateTask(context.Background(), kanban_model.TaskInput{ColumnID: column.ID, Title: "Task", Position: 0})
	require.NoError(t, err)
	require.Equal(t, 6, task.ID)
}

func TestFallbackSelectorReportsMockMode(t *testing.T) {
	selector := NewFallbackSelector(NewMemoryStore())

	require.True(t, selector.IsFallback())
	require.Equal(t, ModeMock, selector.Mode())
	require.NotNil(t, selector.Store())
	require.NoError(t, selector.Close())

	_, err := selector.Store().GetBoard(context.Background(), 1)
	require.True(t, errors.Is(err, ErrBoardNotFound))
}
