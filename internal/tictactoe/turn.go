package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// MakeTurn - places the player's marker and returns the resulting outcome.
func MakeTurn(board *entity.Board, player entity.Player, pos entity.Position) (entity.Outcome, error) {
	if IsTerminal(board) {
		return Classify(board), apperror.ErrGameFinished
	}

	if err := validateMove(board, pos); err != nil {
		return entity.InProgress(), fmt.Errorf("invalid turn: %w", err)
	}

	if err := board.Set(pos.Row, pos.Col, entity.Marker(player)); err != nil {
		return entity.InProgress(), fmt.Errorf("failed to place marker: %w", err)
	}

	return Classify(board), nil
}

// validateMove - checks if the move is valid.
func validateMove(board *entity.Board, pos entity.Position) error {
	cell, err := board.Get(pos.Row, pos.Col)
	if err != nil {
		return err
	}

	if !cell.IsEmpty() {
		return apperror.ErrCellOccupied
	}

	return nil
}
