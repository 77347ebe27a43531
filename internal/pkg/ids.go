package pkg

import "github.com/google/uuid"

// GenerateGameID - returns a short id used to correlate the log lines of one game.
func GenerateGameID() string {
	return uuid.NewString()[:8]
}
