package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var ErrUnknownAction = errors.New("unknown action")

// RunApp - replays the configured actions through one game and writes every outcome to out as a JSON line.
// The first line is the state of the fresh game.
func RunApp(logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	registry := prometheus.NewRegistry()

	recorder, err := metrics.New(registry)
	if err != nil {
		return fmt.Errorf("could not create metrics: %w", err)
	}

	var opts []usecase.Option
	if conf.HumanToken != "" {
		human, err := entity.ParseToken(conf.HumanToken)
		if err != nil {
			return fmt.Errorf("invalid human-token: %w", err)
		}

		if !human.IsValid() {
			return fmt.Errorf("invalid human-token: %w: %s", apperror.ErrInvalidToken, human)
		}

		opts = append(opts, usecase.WithHuman(human))
	}

	game, err := usecase.NewGame(logger, recorder, opts...)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	encoder := json.NewEncoder(out)

	if err = encoder.Encode(game.State()); err != nil {
		return fmt.Errorf("could not write outcome: %w", err)
	}

	for i, action := range conf.Actions {
		outcome, err := apply(game, action)
		if err != nil {
			log.Warn("action rejected", "index", i, "action", action.Action, "error", err)
		}

		if err = encoder.Encode(outcome); err != nil {
			return fmt.Errorf("could not write outcome: %w", err)
		}
	}

	if conf.MetricsTextfile != "" {
		if err = metrics.WriteTextfile(conf.MetricsTextfile, registry); err != nil {
			return err
		}

		log.Info("metrics written", "path", conf.MetricsTextfile)
	}

	log.Info("replay finished", "actions", len(conf.Actions), "gameID", game.ID())

	return nil
}

func apply(game *usecase.Game, action config.Action) (tictactoe.Outcome, error) {
	switch action.Action {
	case config.ActionReset:
		return game.Reset()
	case config.ActionTake, "":
		player, err := entity.ParseToken(action.Player)
		if err != nil {
			return failed(err), err
		}

		return game.SubmitMove(player, action.X, action.Y)
	default:
		err := fmt.Errorf("%w: %q", ErrUnknownAction, action.Action)
		return failed(err), err
	}
}

func failed(err error) tictactoe.Outcome {
	return tictactoe.Outcome{
		Status:  tictactoe.StatusFailed,
		Reason:  err.Error(),
		Message: err.Error(),
	}
}
