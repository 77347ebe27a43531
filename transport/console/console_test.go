package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCellPosition(t *testing.T) {
	t.Run("Valid positions", func(t *testing.T) {
		for text, want := range map[string]entity.Position{
			"A1":     {Row: 0, Col: 0},
			"c2":     {Row: 2, Col: 1},
			" b3 ":   {Row: 1, Col: 2},
			"B-2":    {Row: 1, Col: 1},
			"a, 3":   {Row: 0, Col: 2},
			"C\t1  ": {Row: 2, Col: 0},
		} {
			pos, err := ParseCellPosition(text)

			require.NoError(t, err, text)
			assert.Equal(t, want, pos, text)
		}
	})

	t.Run("Invalid positions", func(t *testing.T) {
		for text, hint := range map[string]string{
			"":    invalidPositionHint,
			"11":  invalidPositionHint,
			"A":   invalidPositionHint,
			"1A":  invalidPositionHint,
			"A0":  "0 is not a column. Try again!",
			"b4":  "4 is not a column. Try again!",
			"D1":  "D is not a row. Try again!",
			"AB2": "AB is not a row. Try again!",
			"Z9":  "9 is not a column. Try again!",
			"A04": "4 is not a column. Try again!",
			"c00": "0 is not a column. Try again!",
		} {
			_, err := ParseCellPosition(text)

			require.ErrorIs(t, err, apperror.ErrInvalidInput, text)
			assert.True(t, strings.HasSuffix(err.Error(), ": "+hint), err.Error())
		}
	})
}

func TestParseYesNo(t *testing.T) {
	for _, answer := range []string{"y", "Y", "yes", "YES please", "yeah man", "yep", "yup", "yarr", "mhm", "true", "1", "  yesss  bro "} {
		assert.True(t, ParseYesNo(answer, false), answer)
	}

	for _, answer := range []string{"n", "No", "nope", "nah dude", "false", "0", "NOOO thanks"} {
		assert.False(t, ParseYesNo(answer, true), answer)
	}

	for _, answer := range []string{"", "maybe", "yes no", "sure"} {
		assert.True(t, ParseYesNo(answer, true), answer)
		assert.False(t, ParseYesNo(answer, false), answer)
	}
}

func TestInput_AskCellPosition(t *testing.T) {
	ctx, st := suite.New(t)

	t.Run("Re-prompts until a valid cell", func(t *testing.T) {
		// Given: two bad answers then a good one
		var out bytes.Buffer
		input := NewInput(st.Logger, strings.NewReader("hello\nD2\nb7\nb2\n"), &out)

		// When: asking for a cell
		pos, err := input.AskCellPosition(ctx, "Which cell?")

		// Then: the valid cell is returned and every mistake was explained
		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: 1, Col: 1}, pos)
		assert.Equal(t, 4, strings.Count(out.String(), "Which cell? "))
		assert.Contains(t, out.String(), invalidPositionHint)
		assert.Contains(t, out.String(), "D is not a row. Try again!")
		assert.Contains(t, out.String(), "7 is not a column. Try again!")
	})

	t.Run("Input closed", func(t *testing.T) {
		input := NewInput(st.Logger, strings.NewReader("zz\n"), io.Discard)

		_, err := input.AskCellPosition(ctx, "Which cell?")

		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Last line without newline", func(t *testing.T) {
		input := NewInput(st.Logger, strings.NewReader("c3"), io.Discard)

		pos, err := input.AskCellPosition(ctx, "Which cell?")

		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: 2, Col: 2}, pos)
	})

	t.Run("Canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		input := NewInput(st.Logger, strings.NewReader("a1\n"), io.Discard)

		_, err := input.AskCellPosition(canceled, "Which cell?")

		require.True(t, errors.Is(err, context.Canceled))
	})
}

func TestInput_AskPlayer(t *testing.T) {
	ctx, st := suite.New(t)

	var out bytes.Buffer
	input := NewInput(st.Logger, strings.NewReader("\nz\noh yes\n"), &out)

	player, err := input.AskPlayer(ctx, "Wanna be X or O?")

	require.NoError(t, err)
	assert.Equal(t, entity.PlayerO, player)
	assert.Equal(t, 2, strings.Count(out.String(), invalidPlayerHint))
}

func TestInput_Confirm(t *testing.T) {
	ctx, st := suite.New(t)

	t.Run("Shows default and falls back to it", func(t *testing.T) {
		var out bytes.Buffer
		input := NewInput(st.Logger, strings.NewReader("whatever\nnope\n"), &out)

		first, err := input.Confirm(ctx, "Play against computer?", true)
		require.NoError(t, err)
		second, err := input.Confirm(ctx, "Can I go first?", true)
		require.NoError(t, err)

		assert.True(t, first)
		assert.False(t, second)
		assert.Contains(t, out.String(), "Play against computer? (Y/n) ")
	})

	t.Run("Default no", func(t *testing.T) {
		var out bytes.Buffer
		input := NewInput(st.Logger, strings.NewReader("\n"), &out)

		answer, err := input.Confirm(ctx, "Again?", false)

		require.NoError(t, err)
		assert.False(t, answer)
		assert.Equal(t, "Again? (y/N) ", out.String())
	})
}

func TestInput_ConfirmCanceled(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: a canceled context and an answer waiting on the input
	canceled, cancel := context.WithCancel(ctx)
	cancel()

	var out bytes.Buffer
	input := NewInput(st.Logger, strings.NewReader("y\n"), &out)

	// When: asking a yes/no question
	_, err := input.Confirm(canceled, "Play against computer?", true)

	// Then: nothing is prompted or read
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestRenderer(t *testing.T) {
	t.Run("RenderTurn", func(t *testing.T) {
		// Given: a board mid-game
		var out bytes.Buffer
		renderer := NewRenderer(&out, false)
		board := suite.Board(t, "X_O", "_X_", "___")

		// When: rendering the turn
		err := renderer.RenderTurn(board, entity.PlayerO)

		// Then: the grid is labeled by row letter and column number
		require.NoError(t, err)
		expected := "\n" +
			"Current player: O\n" +
			"\n" +
			"   ,---,---,---,\n" +
			" A | X |   | O |\n" +
			"   |---+---+---|\n" +
			" B |   | X |   |\n" +
			"   |---+---+---|\n" +
			" C |   |   |   |\n" +
			"   '---'---'---'\n" +
			"     1   2   3\n" +
			"\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("Clears the screen first", func(t *testing.T) {
		var out bytes.Buffer
		renderer := NewRenderer(&out, true)

		require.NoError(t, renderer.RenderTurn(entity.NewBoard(), entity.PlayerX))

		assert.True(t, strings.HasPrefix(out.String(), clearSequence))
	})

	t.Run("Clear follows the setting", func(t *testing.T) {
		var enabled, disabled bytes.Buffer

		require.NoError(t, NewRenderer(&enabled, true).Clear())
		require.NoError(t, NewRenderer(&disabled, false).Clear())

		assert.Equal(t, clearSequence, enabled.String())
		assert.Empty(t, disabled.String())
	})

	t.Run("RenderOutcome", func(t *testing.T) {
		var out bytes.Buffer
		renderer := NewRenderer(&out, false)

		require.NoError(t, renderer.RenderOutcome(entity.Won(entity.PlayerX)))
		require.NoError(t, renderer.RenderOutcome(entity.Draw()))
		require.NoError(t, renderer.RenderOutcome(entity.InProgress()))

		assert.Equal(t, "Player X won!\n\nSTALEMATE!\n\n", out.String())
	})
}
