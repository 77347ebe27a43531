package apperror

import "errors"

var (
	ErrOutOfBounds          = errors.New("cell is out of bounds")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrInvalidInput         = errors.New("invalid input")
	ErrPreconditionViolated = errors.New("board has no moves left")
	ErrGameFinished         = errors.New("game is already finished")
)
