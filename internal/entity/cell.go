package entity

// Cell is either empty or holds the marker of one player.
// The zero value is an empty cell.
type Cell struct {
	owner Player
}

var EmptyCell = Cell{}

// Marker - returns a cell occupied by the player.
func Marker(player Player) Cell {
	return Cell{owner: player}
}

func (that Cell) IsEmpty() bool {
	return that.owner == ""
}

// Owner - returns the player holding the cell, false for an empty cell.
func (that Cell) Owner() (Player, bool) {
	if that.IsEmpty() {
		return "", false
	}
	return that.owner, true
}

// IsOwnedBy - reports whether the cell holds the player's marker.
func (that Cell) IsOwnedBy(player Player) bool {
	return !that.IsEmpty() && that.owner == player
}

func (that Cell) Character() string {
	if that.IsEmpty() {
		return " "
	}
	return that.owner.Character()
}
