package kanban_repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yvelin-officiel/Quanban/internal/config"
)

func TestSelectorFallsBackWhenDatabaseUnreachable(t *testing.T) {
	cfg := &config.Config{
		DBHost:    "127.0.0.1",
		DBPort:    "1",
		DBUser:    "quanban",
		DBName:    "quanban",
		DBSSLMode: "disable",
	}

	selector := NewSelector(context.Background(), cfg, zap.NewNop())
	defer selector.Close()

	require.True(t, selector.IsFallback())
	require.Equal(t, ModeMock, selector.Mode())

	// Fallback mode still serves the seeded fixtures.
	boards, err := selector.Store().ListBoards(context.Background())
	require.NoError(t, err)
	require.Len(t, boards, 2)
}
