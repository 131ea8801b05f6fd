package kanban_repository

import (
	"time"

	"github.com/Yvelin-officiel/Quanban/internal/model/kanban_model"
)

func strPtr(s string) *string { return &s }

func datePtr(t time.Time) *time.Time { return &t }

// NewSeededMemoryStore returns a memory store pre-loaded with illustrative
// boards so fallback mode has something to show. The id counters start above
// the fixture ids.
func NewSeededMemoryStore() *MemoryStore {
	now := time.Now()

	m := &MemoryStore{
		boards: []*kanban_model.Board{
			{
				ID:          1,
				Title:       "Quanban Project",
				Description: strPtr("Project management board"),
				CreatedAt:   time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
				UpdatedAt:   time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:          2,
				Title:       "Personal Growth",
				Description: strPtr("Tracking personal goals"),
				CreatedAt:   time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC),
				UpdatedAt:   time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC),
			},
		},
		columns: []*kanban_model.Column{
			{ID: 1, BoardID: 1, Title: "To Do", Position: 0, CreatedAt: now, UpdatedAt: now},
			{ID: 2, BoardID: 1, Title: "In Progress", Position: 1, CreatedAt: now, UpdatedAt: now},
			{ID: 3, BoardID: 1, Title: "Done", Position: 2, CreatedAt: now, UpdatedAt: now},
			{ID: 4, BoardID: 2, Title: "Backlog", Position: 0, CreatedAt: now, UpdatedAt: now},
			{ID: 5, BoardID: 2, Title: "In Progress", Position: 1, CreatedAt: now, UpdatedAt: now},
		},
		tasks: []*kanban_model.Task{
			{
				ID:          1,
				ColumnID:    1,
				Title:       "Configure the SQL database",
				Description: strPtr("Create and configure the managed database"),
				Position:    0,
				Priority:    kanban_model.PriorityHigh,
				DueDate:     datePtr(time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)),
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			{
				ID:          2,
				ColumnID:    1,
				Title:       "Implement blob storage",
				Description: strPtr("Add support for file uploads"),
				Position:    1,
				Priority:    kanban_model.PriorityHigh,
				DueDate:     datePtr(time.Date(2026, time.February, 12, 0, 0, 0, 0, time.UTC)),
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			{
				ID:          3,
				ColumnID:    2,
				Title:       "Write deployment templates",
				Description: strPtr("Infrastructure as code for automated deployment"),
				Position:    0,
				Priority:    kanban_model.PriorityMedium,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			{
				ID:          4,
				ColumnID:    3,
				Title:       "Set up backend API",
				Description: strPtr("REST API over the kanban store"),
				Position:    0,
				Priority:    kanban_model.PriorityLow,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			{
				ID:          5,
				ColumnID:    3,
				Title:       "Set up frontend",
				Description: strPtr("Browser client for the boards"),
				Position:    1,
				Priority:    kanban_model.PriorityLow,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
		nextBoardID:  3,
		nextColumnID: 6,
		nextTaskID:   6,
	}
	return m
}
