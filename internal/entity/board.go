package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const BoardSize = 3

// Position addresses a cell; both indices are zero-based.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// PositionedCell is a snapshot of a cell together with its coordinates.
type PositionedCell struct {
	Cell     Cell
	Position Position
}

// Line is a row, a column or a diagonal, ordered along the board.
type Line [BoardSize]PositionedCell

// Board is a 3x3 grid. It is a value type: assigning or cloning a board
// yields an independent copy.
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

func NewBoard() Board {
	return Board{}
}

// Get - returns the cell at row, col.
func (that *Board) Get(row, col int) (Cell, error) {
	if !(Position{Row: row, Col: col}).InBounds() {
		return EmptyCell, fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfBounds, row, col)
	}

	return that.cells[row][col], nil
}

// Set - writes the cell at row, col. Occupancy is not checked here.
func (that *Board) Set(row, col int, cell Cell) error {
	if !(Position{Row: row, Col: col}).InBounds() {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfBounds, row, col)
	}

	that.cells[row][col] = cell

	return nil
}

// At - returns the cell at an in-bounds position.
func (that *Board) At(pos Position) Cell {
	return that.cells[pos.Row][pos.Col]
}

func (that *Board) Rows() []Line {
	lines := make([]Line, 0, BoardSize)
	for row := range BoardSize {
		var line Line
		for col := range BoardSize {
			line[col] = that.positioned(row, col)
		}
		lines = append(lines, line)
	}

	return lines
}

func (that *Board) Columns() []Line {
	lines := make([]Line, 0, BoardSize)
	for col := range BoardSize {
		var line Line
		for row := range BoardSize {
			line[row] = that.positioned(row, col)
		}
		lines = append(lines, line)
	}

	return lines
}

// Diagonals - returns the main diagonal followed by the anti diagonal.
func (that *Board) Diagonals() []Line {
	var main, anti Line
	for i := range BoardSize {
		main[i] = that.positioned(i, i)
		anti[i] = that.positioned(i, BoardSize-1-i)
	}

	return []Line{main, anti}
}

// Lines - returns all eight lines: rows, then columns, then diagonals.
func (that *Board) Lines() []Line {
	lines := make([]Line, 0, 2*BoardSize+2)
	lines = append(lines, that.Rows()...)
	lines = append(lines, that.Columns()...)
	lines = append(lines, that.Diagonals()...)

	return lines
}

// AllPositions - returns every cell in row-major order.
func (that *Board) AllPositions() []PositionedCell {
	cells := make([]PositionedCell, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			cells = append(cells, that.positioned(row, col))
		}
	}

	return cells
}

func (that *Board) IsFull() bool {
	return that.OccupiedCount() == BoardSize*BoardSize
}

func (that *Board) IsEmpty() bool {
	return that.OccupiedCount() == 0
}

func (that *Board) OccupiedCount() int {
	count := 0
	for _, pc := range that.AllPositions() {
		if !pc.Cell.IsEmpty() {
			count++
		}
	}

	return count
}

// Clone - returns a copy that shares nothing with the original.
func (that *Board) Clone() Board {
	return *that
}

// CurrentPlayer - derives whose turn it is from the number of markers each
// player has placed, assuming strict alternation from the starting player.
func (that *Board) CurrentPlayer(starting Player) Player {
	startingTurns, otherTurns := 0, 0
	for _, pc := range that.AllPositions() {
		owner, ok := pc.Cell.Owner()
		if !ok {
			continue
		}
		if owner == starting {
			startingTurns++
		} else {
			otherTurns++
		}
	}

	if startingTurns > otherTurns {
		return starting.Opponent()
	}

	return starting
}

func (that *Board) positioned(row, col int) PositionedCell {
	return PositionedCell{
		Cell:     that.cells[row][col],
		Position: Position{Row: row, Col: col},
	}
}
