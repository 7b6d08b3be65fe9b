package application

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/boredgames/internal/config"
	"github.com/rocketscienceinc/boredgames/internal/presenter"
	"github.com/rocketscienceinc/boredgames/internal/referee"
	"github.com/rocketscienceinc/boredgames/internal/script"
	"github.com/rocketscienceinc/boredgames/internal/tictactoe"
	"github.com/rocketscienceinc/boredgames/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	var redisClient *redis.Client
	if conf.Redis.Enabled {
		client, err := connectRedis(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}

		defer func() {
			if err = client.Close(); err != nil {
				log.Error("could not close redis client", "error", err)
			}
		}()

		redisClient = client
	}

	session := usecase.NewSession(logger, referee.New(), func(sessionID string) tictactoe.Presenter {
		presenters := []tictactoe.Presenter{presenter.NewLog(logger, sessionID)}
		if redisClient != nil {
			presenters = append(presenters, presenter.NewRedis(logger, redisClient, conf.Redis.Channel, sessionID))
		}

		return presenter.NewMulti(presenters...)
	})

	log.Info("Game started", "session", session.ID())

	if conf.ScriptPath != "" {
		turns, err := script.Load(conf.ScriptPath)
		if err != nil {
			return fmt.Errorf("could not load script: %w", err)
		}

		return PlayTurns(ctx, session, turns)
	}

	return PlayLines(ctx, logger, session, os.Stdin)
}

// PlayTurns - feeds the turns to the session until the game is over. The game
// is ended when the turns run out before a result.
func PlayTurns(ctx context.Context, session *usecase.Session, turns []script.Turn) error {
	for _, turn := range turns {
		if ctx.Err() != nil || session.IsOver() {
			return nil
		}

		session.MakeTurn(turn.Row, turn.Col)
	}

	if !session.IsOver() {
		session.End()
	}

	return nil
}

// PlayLines - reads "row col" lines from input and plays them until the game
// is over or ctx is canceled. The game is ended when input runs out before a result.
func PlayLines(ctx context.Context, logger *slog.Logger, session *usecase.Session, input io.Reader) error {
	log := logger.With("component", "app", "method", "PlayLines")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, readErr := readLines(ctx, input)

	for !session.IsOver() {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				session.End()
				return nil
			}

			turn, err := script.Parse(line)
			if err != nil {
				log.Warn("skipping input", "error", err)
				continue
			}

			session.MakeTurn(turn.Row, turn.Col)
		}
	}

	return nil
}

// readLines - scans input on its own goroutine so a blocked read never holds up
// the caller. The error channel receives the scan result before lines is closed.
func readLines(ctx context.Context, input io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}

		readErr <- scanner.Err()
	}()

	return lines, readErr
}

func connectRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
