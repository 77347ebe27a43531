package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-cli/transport/console"
)

// RunApp - runs the game session on the terminal until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return run(logger, conf, os.Stdin, os.Stdout)
}

func run(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	input := console.NewInput(logger, in, out)
	renderer := console.NewRenderer(out, !conf.DisableClear)
	bot := service.NewBotService(logger)
	gameManager := usecase.NewGameManager(logger, input, renderer, bot)

	// run game session
	sessionErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting game session")
		sessionErrCh <- gameManager.RunSession(ctx)
	}()

	select {
	case err := <-sessionErrCh:
		if err == nil || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			log.Info("Game session ended", "score", gameManager.Score())
			return nil
		}

		return fmt.Errorf("game session error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
