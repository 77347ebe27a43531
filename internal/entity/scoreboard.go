package entity

// Scoreboard tallies finished games for the lifetime of the process.
type Scoreboard struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
}

func (that *Scoreboard) Record(outcome Outcome) {
	switch {
	case outcome.Status == StatusDraw:
		that.Draws++
	case outcome.Status == StatusWon && outcome.Winner == PlayerX:
		that.XWins++
	case outcome.Status == StatusWon && outcome.Winner == PlayerO:
		that.OWins++
	}
}

func (that Scoreboard) Games() int {
	return that.XWins + that.OWins + that.Draws
}
