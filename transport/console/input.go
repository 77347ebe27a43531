package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	fillerPattern = `(pls|please|thx|thanks|man|dude|dawg|bro|bruh)?`

	yesPattern = `(?i)^\s*(y+|y+e+s+|y+e+a+h+|y+e+p+|y+u+p+|y+e+|y+a+r+|m+h+m+|true|1)\s*` + fillerPattern + `\s*$`
	noPattern  = `(?i)^\s*(n+|n+o+|n+o+p+e+|n+a+h+|false|0)\s*` + fillerPattern + `\s*$`

	invalidPositionHint = "That's not a valid position! Try again."
	invalidPlayerHint   = "That's not a valid choice! Try again."
)

var (
	yesRegex      = regexp.MustCompile(yesPattern)
	noRegex       = regexp.MustCompile(noPattern)
	alphaNumRegex = regexp.MustCompile(`^\s*([A-Za-z]+)\W*(\d+)\s*$`)

	rowLetters = map[string]int{"A": 0, "B": 1, "C": 2}
)

// Input reads answers to prompts line by line.
type Input struct {
	logger *slog.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewInput(logger *slog.Logger, in io.Reader, out io.Writer) *Input {
	return &Input{
		logger: logger.With("component", "console_input"),
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadLine - returns the next line without surrounding whitespace.
// io.EOF is returned only when the input ends before any text.
func (that *Input) ReadLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}

		return "", fmt.Errorf("failed to read line: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func (that *Input) AskString(prompt string) (string, error) {
	if _, err := fmt.Fprintf(that.out, "%s ", strings.TrimSpace(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	return that.ReadLine()
}

// Confirm - asks a yes/no question. Unrecognized answers fall back to def.
func (that *Input) Confirm(ctx context.Context, prompt string, def bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	choices := "y/N"
	if def {
		choices = "Y/n"
	}

	answer, err := that.AskString(fmt.Sprintf("%s (%s)", strings.TrimSpace(prompt), choices))
	if err != nil {
		return false, err
	}

	return ParseYesNo(answer, def), nil
}

// AskPlayer - asks until the first letter typed names a player.
func (that *Input) AskPlayer(ctx context.Context, prompt string) (entity.Player, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		answer, err := that.AskString(prompt)
		if err != nil {
			return "", err
		}

		if answer != "" {
			player, parseErr := entity.ParsePlayer([]rune(answer)[0])
			if parseErr == nil {
				return player, nil
			}
		}

		if err = that.println(invalidPlayerHint); err != nil {
			return "", err
		}
	}
}

// AskCellPosition - asks until the answer names a cell such as "A1" or "c2".
func (that *Input) AskCellPosition(ctx context.Context, prompt string) (entity.Position, error) {
	log := that.logger.With("method", "AskCellPosition")

	for {
		if err := ctx.Err(); err != nil {
			return entity.Position{}, err
		}

		answer, err := that.AskString(prompt)
		if err != nil {
			return entity.Position{}, err
		}

		pos, hint := parseCellPosition(answer)
		if hint == "" {
			return pos, nil
		}

		log.Debug("rejected cell position", "input", answer)

		if err = that.println(hint); err != nil {
			return entity.Position{}, err
		}
	}
}

func (that *Input) println(message string) error {
	if _, err := fmt.Fprintln(that.out, message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// ParseYesNo - matches lenient yes/no answers, returning def for anything else.
func ParseYesNo(answer string, def bool) bool {
	switch {
	case yesRegex.MatchString(answer):
		return true
	case noRegex.MatchString(answer):
		return false
	default:
		return def
	}
}

// ParseCellPosition - parses a row letter and column number into zero-based coordinates.
func ParseCellPosition(text string) (entity.Position, error) {
	pos, hint := parseCellPosition(text)
	if hint != "" {
		return entity.Position{}, fmt.Errorf("%w: %s", apperror.ErrInvalidInput, hint)
	}

	return pos, nil
}

// parseCellPosition - returns the hint to show the player when text is not a cell.
func parseCellPosition(text string) (entity.Position, string) {
	matches := alphaNumRegex.FindStringSubmatch(text)
	if matches == nil {
		return entity.Position{}, invalidPositionHint
	}

	alpha, digits := matches[1], matches[2]

	num, err := strconv.Atoi(digits)
	if err != nil {
		return entity.Position{}, fmt.Sprintf("%s is not a column. Try again!", digits)
	}

	if num < 1 || num > entity.BoardSize {
		return entity.Position{}, fmt.Sprintf("%d is not a column. Try again!", num)
	}

	row, ok := rowLetters[strings.ToUpper(alpha)]
	if !ok {
		return entity.Position{}, fmt.Sprintf("%s is not a row. Try again!", alpha)
	}

	return entity.Position{Row: row, Col: num - 1}, ""
}
