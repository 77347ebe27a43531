package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// Board - builds a board from three rows of 'X', 'O' and '_' (empty),
// e.g. Board(t, "X__", "_O_", "___").
func Board(t testing.TB, rows ...string) entity.Board {
	t.Helper()

	if len(rows) != entity.BoardSize {
		t.Fatalf("expected %d rows, got %d", entity.BoardSize, len(rows))
	}

	board := entity.NewBoard()
	for row, line := range rows {
		if len(line) != entity.BoardSize {
			t.Fatalf("row %d: expected %d cells, got %q", row, entity.BoardSize, line)
		}

		for col, r := range line {
			if r == '_' {
				continue
			}

			player, err := entity.ParsePlayer(r)
			if err != nil {
				t.Fatalf("row %d col %d: %v", row, col, err)
			}

			if err = board.Set(row, col, entity.Marker(player)); err != nil {
				t.Fatalf("row %d col %d: %v", row, col, err)
			}
		}
	}

	return board
}
