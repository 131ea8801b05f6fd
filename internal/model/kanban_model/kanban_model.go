package kanban_model

import (
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Board struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type Column struct {
	ID        int       `db:"id" json:"id"`
	BoardID   int       `db:"board_id" json:"board_id"`
	Title     string    `db:"title" json:"title"`
	Position  int       `db:"position" json:"position"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Task struct {
	ID          int        `db:"id" json:"id"`
	ColumnID    int        `db:"column_id" json:"column_id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	Position    int        `db:"position" json:"position"`
	Priority    Priority   `db:"priority" json:"priority"`
	DueDate     *time.Time `db:"due_date" json:"due_date"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// BoardInput carries the caller-supplied fields of a board; the store assigns
// id and timestamps.
type BoardInput struct {
	Title       string
	Description *string
}

type ColumnInput struct {
	BoardID  int
	Title    string
	Position int
}

type TaskInput struct {
	ColumnID    int
	Title       string
	Description *string
	Position    int
	Priority    Priority
	DueDate     *time.Time
}

type ColumnWithTasks struct {
	Column
	Tasks []*Task `json:"tasks"`
}

// BoardDetails is the composite view assembled by the board service: the
// board, its columns in position order, each carrying its tasks.
type BoardDetails struct {
	Board
	Columns []*ColumnWithTasks `json:"columns"`
}
