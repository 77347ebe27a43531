package tictactoe

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

// UniformOwner - returns the player holding all three cells of the line.
func UniformOwner(line entity.Line) (entity.Player, bool) {
	owner, ok := line[0].Cell.Owner()
	if !ok {
		return "", false
	}

	for _, pc := range line[1:] {
		if !pc.Cell.IsOwnedBy(owner) {
			return "", false
		}
	}

	return owner, true
}

// Winner - scans rows, columns and diagonals in that order and returns the
// owner of the first uniform line. Boards with two winners are not rejected.
func Winner(board *entity.Board) (entity.Player, bool) {
	for _, line := range board.Lines() {
		if owner, ok := UniformOwner(line); ok {
			return owner, true
		}
	}

	return "", false
}

func IsTerminal(board *entity.Board) bool {
	if _, ok := Winner(board); ok {
		return true
	}

	return board.IsFull()
}

func Classify(board *entity.Board) entity.Outcome {
	if winner, ok := Winner(board); ok {
		return entity.Won(winner)
	}

	if board.IsFull() {
		return entity.Draw()
	}

	return entity.InProgress()
}
