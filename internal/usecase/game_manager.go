package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

const (
	againstComputerPrompt = "Play against computer?"
	choosePlayerPrompt    = "Wanna be X or O?"
	computerFirstPrompt   = "Can I go first?"
	playAgainPrompt       = "Would you like to play again?"
	cellPrompt            = "Which cell? (e.g., A1, C2, etc.)"
)

type promptDep interface {
	Confirm(ctx context.Context, prompt string, def bool) (bool, error)
	AskPlayer(ctx context.Context, prompt string) (entity.Player, error)
	AskCellPosition(ctx context.Context, prompt string) (entity.Position, error)
}

type renderDep interface {
	Clear() error
	RenderTurn(board entity.Board, player entity.Player) error
	RenderOutcome(outcome entity.Outcome) error
	RenderMessage(message string) error
}

type botDep interface {
	NextMove(board entity.Board, player entity.Player) (entity.Position, error)
}

// GameSettings - who plays whom and who moves first.
type GameSettings struct {
	AgainstComputer bool
	HumanPlayer     entity.Player
	FirstPlayer     entity.Player
}

func (that GameSettings) validate() error {
	if !that.HumanPlayer.IsValid() || !that.FirstPlayer.IsValid() {
		return fmt.Errorf("%w: settings need players X or O, got human %q first %q",
			apperror.ErrInvalidInput, that.HumanPlayer, that.FirstPlayer)
	}

	return nil
}

func (that GameSettings) isComputer(player entity.Player) bool {
	return that.AgainstComputer && player != that.HumanPlayer
}

type GameManager struct {
	logger *slog.Logger

	prompt promptDep
	render renderDep
	bot    botDep

	score entity.Scoreboard
}

func NewGameManager(logger *slog.Logger, prompt promptDep, render renderDep, bot botDep) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		prompt: prompt,
		render: render,
		bot:    bot,
	}
}

// Score - tally of the games finished by this manager.
func (that *GameManager) Score() entity.Scoreboard {
	return that.score
}

// RunSession - asks for settings, plays a game and offers a rematch until the player declines.
func (that *GameManager) RunSession(ctx context.Context) error {
	log := that.logger.With("method", "RunSession")

	for {
		if err := that.render.Clear(); err != nil {
			return err
		}

		settings, err := that.askSettings(ctx)
		if err != nil {
			return fmt.Errorf("failed to ask game settings: %w", err)
		}

		outcome, err := that.Play(ctx, settings)
		if err != nil {
			return fmt.Errorf("failed to play game: %w", err)
		}

		that.score.Record(outcome)
		log.Info("score updated",
			"x_wins", that.score.XWins, "o_wins", that.score.OWins, "draws", that.score.Draws)

		again, err := that.prompt.Confirm(ctx, playAgainPrompt, true)
		if err != nil {
			return fmt.Errorf("failed to ask for rematch: %w", err)
		}

		if !again {
			return nil
		}
	}
}

// Play - runs one game to completion and returns its outcome.
func (that *GameManager) Play(ctx context.Context, settings GameSettings) (entity.Outcome, error) {
	if err := settings.validate(); err != nil {
		return entity.Outcome{}, err
	}

	log := that.logger.With("method", "Play", "game_id", pkg.GenerateGameID())
	log.Info("game started",
		"against_computer", settings.AgainstComputer, "human", settings.HumanPlayer, "first", settings.FirstPlayer)

	board := entity.NewBoard()

	for {
		if err := ctx.Err(); err != nil {
			return entity.Outcome{}, err
		}

		player := board.CurrentPlayer(settings.FirstPlayer)

		if err := that.render.RenderTurn(board, player); err != nil {
			return entity.Outcome{}, err
		}

		outcome := tictactoe.Classify(&board)
		if outcome.IsTerminal() {
			log.Info("game finished", "status", outcome.Status, "winner", outcome.Winner)

			if err := that.render.RenderOutcome(outcome); err != nil {
				return outcome, err
			}

			return outcome, nil
		}

		pos, err := that.takeTurn(ctx, &board, player, settings)
		if err != nil {
			return entity.Outcome{}, err
		}

		log.Debug("turn made", "player", player, "row", pos.Row, "col", pos.Col)
	}
}

func (that *GameManager) takeTurn(
	ctx context.Context,
	board *entity.Board,
	player entity.Player,
	settings GameSettings,
) (entity.Position, error) {
	if settings.isComputer(player) {
		pos, err := that.bot.NextMove(*board, player)
		if err != nil {
			return pos, fmt.Errorf("failed to choose computer move: %w", err)
		}

		if _, err = tictactoe.MakeTurn(board, player, pos); err != nil {
			return pos, fmt.Errorf("failed to make computer turn: %w", err)
		}

		return pos, nil
	}

	for {
		pos, err := that.prompt.AskCellPosition(ctx, cellPrompt)
		if err != nil {
			return pos, fmt.Errorf("failed to ask cell position: %w", err)
		}

		_, err = tictactoe.MakeTurn(board, player, pos)
		if err == nil {
			return pos, nil
		}

		if !errors.Is(err, apperror.ErrCellOccupied) {
			return pos, fmt.Errorf("failed to make turn: %w", err)
		}

		owner, _ := board.At(pos).Owner()
		if err = that.render.RenderMessage(fmt.Sprintf("Player %s has already taken this spot.", owner.Character())); err != nil {
			return pos, err
		}
	}
}

func (that *GameManager) askSettings(ctx context.Context) (GameSettings, error) {
	againstComputer, err := that.prompt.Confirm(ctx, againstComputerPrompt, true)
	if err != nil {
		return GameSettings{}, err
	}

	human, err := that.prompt.AskPlayer(ctx, choosePlayerPrompt)
	if err != nil {
		return GameSettings{}, err
	}

	settings := GameSettings{
		AgainstComputer: againstComputer,
		HumanPlayer:     human,
		FirstPlayer:     human,
	}

	if !againstComputer {
		return settings, nil
	}

	computerFirst, err := that.prompt.Confirm(ctx, computerFirstPrompt, true)
	if err != nil {
		return GameSettings{}, err
	}

	if computerFirst {
		settings.FirstPlayer = human.Opponent()
	}

	return settings, nil
}
