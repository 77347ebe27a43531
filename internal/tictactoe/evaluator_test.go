package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformOwner(t *testing.T) {
	cells := map[string]entity.Cell{
		"X": entity.Marker(entity.PlayerX),
		"O": entity.Marker(entity.PlayerO),
		"_": entity.EmptyCell,
	}
	symbols := []string{"X", "O", "_"}

	// every combination of three cells
	for _, a := range symbols {
		for _, b := range symbols {
			for _, c := range symbols {
				line := entity.Line{
					{Cell: cells[a]},
					{Cell: cells[b]},
					{Cell: cells[c]},
				}

				owner, ok := UniformOwner(line)

				if a == b && b == c && a != "_" {
					require.True(t, ok, "%s%s%s", a, b, c)
					assert.Equal(t, entity.Player(a), owner)
				} else {
					require.False(t, ok, "%s%s%s", a, b, c)
					assert.Empty(t, owner)
				}
			}
		}
	}
}

func TestWinner(t *testing.T) {
	t.Run("Winner X in a column", func(t *testing.T) {
		// Given: a board where player X has a winning column
		board := suite.Board(t, "XO_", "XO_", "X__")

		// When: looking for the winner
		winner, ok := Winner(&board)

		// Then: player X should be declared the winner
		require.True(t, ok)
		assert.Equal(t, entity.PlayerX, winner)
	})

	t.Run("Winner O on the anti diagonal", func(t *testing.T) {
		board := suite.Board(t, "XXO", "XO_", "O__")

		winner, ok := Winner(&board)

		require.True(t, ok)
		assert.Equal(t, entity.PlayerO, winner)
	})

	t.Run("No winner", func(t *testing.T) {
		board := suite.Board(t, "XOX", "_O_", "X__")

		_, ok := Winner(&board)

		assert.False(t, ok)
	})

	t.Run("Unreachable board with two winning lines is not rejected", func(t *testing.T) {
		// Given: a row and a column both owned by O
		board := suite.Board(t, "OOO", "OX_", "OX_")

		// When: looking for the winner
		winner, ok := Winner(&board)

		// Then: O is reported
		require.True(t, ok)
		assert.Equal(t, entity.PlayerO, winner)
	})

	t.Run("Column and diagonal", func(t *testing.T) {
		board := suite.Board(t, "XO_", "XXO", "X_X")

		winner, ok := Winner(&board)

		require.True(t, ok)
		assert.Equal(t, entity.PlayerX, winner)
	})
}

func TestClassify(t *testing.T) {
	t.Run("Ongoing game", func(t *testing.T) {
		board := suite.Board(t, "XOX", "_O_", "X__")

		outcome := Classify(&board)

		assert.Equal(t, entity.InProgress(), outcome)
		assert.False(t, IsTerminal(&board))
	})

	t.Run("Won", func(t *testing.T) {
		board := suite.Board(t, "XXX", "OO_", "___")

		outcome := Classify(&board)

		assert.Equal(t, entity.Won(entity.PlayerX), outcome)
		assert.True(t, IsTerminal(&board))
	})

	t.Run("Full board with no uniform line is a draw", func(t *testing.T) {
		board := suite.Board(t, "OXO", "OXX", "XOX")

		outcome := Classify(&board)

		assert.Equal(t, entity.Draw(), outcome)
		assert.True(t, IsTerminal(&board))
	})

	t.Run("Win on the last cell is not a draw", func(t *testing.T) {
		board := suite.Board(t, "XOX", "OXO", "OXX")

		outcome := Classify(&board)

		assert.Equal(t, entity.StatusWon, outcome.Status)
		assert.Equal(t, entity.PlayerX, outcome.Winner)
	})
}

func TestMakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: an empty board
		board := entity.NewBoard()

		// When: player X makes a turn
		outcome, err := MakeTurn(&board, entity.PlayerX, entity.Position{Row: 0, Col: 0})
		require.NoError(t, err)

		// Then: the board reflects the turn
		assert.Equal(t, entity.InProgress(), outcome)
		assert.Equal(t, suite.Board(t, "X__", "___", "___"), board)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		board := suite.Board(t, "X__", "___", "___")

		_, err := MakeTurn(&board, entity.PlayerO, entity.Position{Row: 0, Col: 0})

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, suite.Board(t, "X__", "___", "___"), board)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		board := entity.NewBoard()

		_, err := MakeTurn(&board, entity.PlayerX, entity.Position{Row: 3, Col: 0})

		assert.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})

	t.Run("Winning move", func(t *testing.T) {
		board := suite.Board(t, "XX_", "OO_", "___")

		outcome, err := MakeTurn(&board, entity.PlayerX, entity.Position{Row: 0, Col: 2})

		require.NoError(t, err)
		assert.Equal(t, entity.Won(entity.PlayerX), outcome)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		board := suite.Board(t, "XXX", "_O_", "_O_")

		outcome, err := MakeTurn(&board, entity.PlayerO, entity.Position{Row: 1, Col: 0})

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, entity.Won(entity.PlayerX), outcome)
	})
}
