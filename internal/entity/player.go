package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Player is one of the two marks that take turns on the board.
type Player string

const (
	PlayerX Player = "X"
	PlayerO Player = "O"
)

// Opponent - returns the other player.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) Character() string {
	return string(that)
}

func (that Player) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

// ParsePlayer - maps the first letter a human typed to a player.
func ParsePlayer(r rune) (Player, error) {
	switch r {
	case 'X', 'x':
		return PlayerX, nil
	case 'O', 'o':
		return PlayerO, nil
	default:
		return "", fmt.Errorf("%w: %q is not a player", apperror.ErrInvalidInput, r)
	}
}
