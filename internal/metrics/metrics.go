package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const namespace = "tictactoe"

const (
	ResultWin = "win"
	ResultTie = "tie"
)

// Metrics counts games and moves. It is safe for concurrent use.
type Metrics struct {
	gamesStarted  prometheus.Counter
	gamesFinished *prometheus.CounterVec
	moves         *prometheus.CounterVec
	movesRejected *prometheus.CounterVec
}

// New - creates the counters and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	that := &Metrics{
		gamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Games started, including resets.",
		}),
		gamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Games that reached a win or a tie.",
		}, []string{"result"}),
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Accepted moves by player token.",
		}, []string{"player"}),
		movesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_rejected_total",
			Help:      "Rejected moves by reason.",
		}, []string{"reason"}),
	}

	for _, collector := range []prometheus.Collector{that.gamesStarted, that.gamesFinished, that.moves, that.movesRejected} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}

	return that, nil
}

func (that *Metrics) GameStarted() {
	that.gamesStarted.Inc()
}

func (that *Metrics) GameFinished(result string) {
	that.gamesFinished.WithLabelValues(result).Inc()
}

func (that *Metrics) MoveAccepted(player entity.Token) {
	that.moves.WithLabelValues(player.String()).Inc()
}

func (that *Metrics) MoveRejected(err error) {
	that.movesRejected.WithLabelValues(Reason(err)).Inc()
}

// Reason maps a rejection error onto a bounded label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, apperror.ErrAlreadyTaken):
		return "already_taken"
	case errors.Is(err, apperror.ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, apperror.ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "not_your_turn"
	case errors.Is(err, apperror.ErrGameFinished):
		return "game_finished"
	default:
		return "unknown"
	}
}

// WriteTextfile - writes everything gathered by g in the text exposition format,
// for pickup by a node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}

	return nil
}
