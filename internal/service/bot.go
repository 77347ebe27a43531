package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

// forkThreshold is the number of simultaneous winning threats that makes a fork.
const forkThreshold = 2

var (
	center  = entity.Position{Row: 1, Col: 1}
	corners = []entity.Position{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}
	sides   = []entity.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}}
)

type BotService interface {
	NextMove(board entity.Board, player entity.Player) (entity.Position, error)
}

// rule returns a move when its tactic applies to the board.
type rule struct {
	name   string
	choose func(board *entity.Board, player entity.Player) (entity.Position, bool)
}

// rules are tried in order; the first one that applies decides the move.
var rules = []rule{
	{"win", func(b *entity.Board, p entity.Player) (entity.Position, bool) { return completingMove(b, p) }},
	{"block_win", func(b *entity.Board, p entity.Player) (entity.Position, bool) { return completingMove(b, p.Opponent()) }},
	{"fork", func(b *entity.Board, p entity.Player) (entity.Position, bool) { return forkMove(b, p) }},
	{"block_fork", func(b *entity.Board, p entity.Player) (entity.Position, bool) { return forkMove(b, p.Opponent()) }},
	{"setup", func(b *entity.Board, p entity.Player) (entity.Position, bool) { return setupMove(b, p) }},
	{"block_setup", func(b *entity.Board, p entity.Player) (entity.Position, bool) { return setupMove(b, p.Opponent()) }},
	{"center", func(b *entity.Board, _ entity.Player) (entity.Position, bool) { return centerMove(b) }},
	{"opposite_corner", oppositeCornerMove},
	{"corner", func(b *entity.Board, _ entity.Player) (entity.Position, bool) { return firstEmpty(b, corners) }},
	{"side", func(b *entity.Board, _ entity.Player) (entity.Position, bool) { return firstEmpty(b, sides) }},
	{"any", func(b *entity.Board, _ entity.Player) (entity.Position, bool) { return anyMove(b) }},
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// NextMove - picks the move for player. The board is taken by value, so
// hypothetical moves never reach the caller's board. Calling it on a finished
// board is a caller bug and yields ErrPreconditionViolated.
func (that *botService) NextMove(board entity.Board, player entity.Player) (entity.Position, error) {
	log := that.logger.With("method", "NextMove", "player", player)

	if tictactoe.IsTerminal(&board) {
		return entity.Position{}, fmt.Errorf("%w: game is over", apperror.ErrPreconditionViolated)
	}

	for _, r := range rules {
		if pos, ok := r.choose(&board, player); ok {
			log.Debug("move chosen", "rule", r.name, "row", pos.Row, "col", pos.Col)

			return pos, nil
		}
	}

	return entity.Position{}, apperror.ErrPreconditionViolated
}

// potentialLines - returns the lines holding exactly owned markers of player
// with every other cell empty.
func potentialLines(board *entity.Board, player entity.Player, owned int) []entity.Line {
	var lines []entity.Line

	for _, line := range board.Lines() {
		mine, empty := 0, 0
		for _, pc := range line {
			switch {
			case pc.Cell.IsEmpty():
				empty++
			case pc.Cell.IsOwnedBy(player):
				mine++
			}
		}

		if mine == owned && mine+empty == len(line) {
			lines = append(lines, line)
		}
	}

	return lines
}

// firstEmptyIn - returns the empty cell of the lines that comes first in
// row-major order.
func firstEmptyIn(board *entity.Board, lines []entity.Line) (entity.Position, bool) {
	candidates := make(map[entity.Position]bool)
	for _, line := range lines {
		for _, pc := range line {
			if pc.Cell.IsEmpty() {
				candidates[pc.Position] = true
			}
		}
	}

	for _, pc := range board.AllPositions() {
		if candidates[pc.Position] {
			return pc.Position, true
		}
	}

	return entity.Position{}, false
}

func completingMove(board *entity.Board, player entity.Player) (entity.Position, bool) {
	return firstEmptyIn(board, potentialLines(board, player, 2))
}

// forkScore - counts the winning threats player would hold after taking pos.
func forkScore(board *entity.Board, player entity.Player, pos entity.Position) int {
	hypothetical := board.Clone()
	if err := hypothetical.Set(pos.Row, pos.Col, entity.Marker(player)); err != nil {
		return 0
	}

	return len(potentialLines(&hypothetical, player, 2))
}

// forkMove - returns the empty cell giving player the most simultaneous
// threats, at least two; ties go to the earliest cell in row-major order.
func forkMove(board *entity.Board, player entity.Player) (entity.Position, bool) {
	var (
		best      entity.Position
		bestScore int
	)

	for _, pc := range board.AllPositions() {
		if !pc.Cell.IsEmpty() {
			continue
		}

		if score := forkScore(board, player, pc.Position); score >= forkThreshold && score > bestScore {
			best, bestScore = pc.Position, score
		}
	}

	return best, bestScore > 0
}

func setupMove(board *entity.Board, player entity.Player) (entity.Position, bool) {
	return firstEmptyIn(board, potentialLines(board, player, 1))
}

func centerMove(board *entity.Board) (entity.Position, bool) {
	if board.At(center).IsEmpty() {
		return center, true
	}

	return entity.Position{}, false
}

// oppositeCornerMove - answers an opponent corner with the corner across the board.
func oppositeCornerMove(board *entity.Board, player entity.Player) (entity.Position, bool) {
	var candidates []entity.Position

	for _, corner := range corners {
		if !board.At(corner).IsOwnedBy(player.Opponent()) {
			continue
		}

		opposite := entity.Position{Row: entity.BoardSize - 1 - corner.Row, Col: entity.BoardSize - 1 - corner.Col}
		if board.At(opposite).IsEmpty() {
			candidates = append(candidates, opposite)
		}
	}

	return firstEmpty(board, candidates)
}

// firstEmpty - returns the first empty candidate in row-major order.
func firstEmpty(board *entity.Board, candidates []entity.Position) (entity.Position, bool) {
	wanted := make(map[entity.Position]bool, len(candidates))
	for _, pos := range candidates {
		wanted[pos] = true
	}

	for _, pc := range board.AllPositions() {
		if wanted[pc.Position] && pc.Cell.IsEmpty() {
			return pc.Position, true
		}
	}

	return entity.Position{}, false
}

func anyMove(board *entity.Board) (entity.Position, bool) {
	for _, pc := range board.AllPositions() {
		if pc.Cell.IsEmpty() {
			return pc.Position, true
		}
	}

	return entity.Position{}, false
}
