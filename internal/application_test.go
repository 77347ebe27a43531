package application

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("terminal gone")
}

func TestRun(t *testing.T) {
	_, st := suite.New(t)
	conf := &config.Config{LogLevel: "debug", DisableClear: true}

	t.Run("Full game against the computer then quit", func(t *testing.T) {
		// Given: a human O letting the computer start and blocking every threat
		in := strings.NewReader("y\no\nyes\nA1\nC2\nA3\nB3\nnope\n")
		var out bytes.Buffer

		// When: running the app
		err := run(st.Logger, conf, in, &out)

		// Then: the game is drawn and the session ends cleanly
		require.NoError(t, err)
		assert.Contains(t, out.String(), "STALEMATE!")
		assert.Contains(t, out.String(), "Would you like to play again? (Y/n) ")
		assert.NotContains(t, out.String(), "\x1b[2J")
	})

	t.Run("Closed input exits cleanly", func(t *testing.T) {
		err := run(st.Logger, conf, strings.NewReader("n\nx\nB2\n"), &bytes.Buffer{})

		require.NoError(t, err)
	})

	t.Run("Output failure is reported", func(t *testing.T) {
		err := run(st.Logger, conf, strings.NewReader("n\n"), failingWriter{})

		require.Error(t, err)
	})
}
