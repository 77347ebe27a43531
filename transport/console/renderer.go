package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const clearSequence = "\x1b[2J\x1b[1;1H"

var rowLabels = [entity.BoardSize]string{"A", "B", "C"}

// Renderer draws the board as a fixed-width grid labeled A-C by 1-3.
type Renderer struct {
	out         io.Writer
	clearScreen bool
}

func NewRenderer(out io.Writer, clearScreen bool) *Renderer {
	return &Renderer{
		out:         out,
		clearScreen: clearScreen,
	}
}

// RenderTurn - redraws the screen with the player to move and the board.
func (that *Renderer) RenderTurn(board entity.Board, player entity.Player) error {
	var b strings.Builder

	if that.clearScreen {
		b.WriteString(clearSequence)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Current player: %s\n", player.Character())
	b.WriteString("\n")
	writeBoard(&b, board)
	b.WriteString("\n")

	return that.write(b.String())
}

// Clear - wipes the screen when clearing is enabled.
func (that *Renderer) Clear() error {
	if !that.clearScreen {
		return nil
	}

	return that.write(clearSequence)
}

// RenderOutcome - prints the result of a finished game.
func (that *Renderer) RenderOutcome(outcome entity.Outcome) error {
	switch outcome.Status {
	case entity.StatusWon:
		return that.write(fmt.Sprintf("Player %s won!\n\n", outcome.Winner.Character()))
	case entity.StatusDraw:
		return that.write("STALEMATE!\n\n")
	default:
		return nil
	}
}

func (that *Renderer) RenderMessage(message string) error {
	return that.write(message + "\n")
}

func (that *Renderer) write(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	return nil
}

func writeBoard(b *strings.Builder, board entity.Board) {
	b.WriteString("   ,---,---,---,\n")

	for i, row := range board.Rows() {
		if i > 0 {
			b.WriteString("   |---+---+---|\n")
		}

		fmt.Fprintf(b, " %s | %s | %s | %s |\n",
			rowLabels[i], row[0].Cell.Character(), row[1].Cell.Character(), row[2].Cell.Character())
	}

	b.WriteString("   '---'---'---'\n")
	b.WriteString("     1   2   3\n")
}
