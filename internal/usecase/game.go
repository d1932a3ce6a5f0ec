package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	messageWaitYourTurn = "Wait your turn"
	messageHumanWon     = "You won!"
	messageComputerWon  = "I won!"
	messageDraw         = "Game is a draw"
)

type recorder interface {
	GameStarted()
	GameFinished(result string)
	MoveAccepted(player entity.Token)
	MoveRejected(err error)
}

type Option func(*Game)

// WithHuman - fixes the human token instead of drawing it at random.
func WithHuman(token entity.Token) Option {
	return func(that *Game) {
		that.fixedHuman = token
	}
}

// WithRand - replaces the source used to draw the human token. intn must return a value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(that *Game) {
		that.intn = intn
	}
}

// Game is one match: a board, the engine that guards it, and the human's token.
// It is not safe for concurrent use; callers serialize requests per game.
type Game struct {
	logger   *slog.Logger
	recorder recorder

	fixedHuman entity.Token
	intn       func(n int) int

	id     string
	board  *tictactoe.Board
	engine *tictactoe.TurnEngine
}

// NewGame - starts a match with the human token drawn uniformly from X and O.
func NewGame(logger *slog.Logger, recorder recorder, opts ...Option) (*Game, error) {
	that := &Game{
		logger:   logger.With("component", "game"),
		recorder: recorder,
		intn:     rand.Intn,
	}

	for _, opt := range opts {
		opt(that)
	}

	if that.fixedHuman != entity.Empty && !that.fixedHuman.IsValid() {
		return nil, fmt.Errorf("%w: human player cannot be %s", apperror.ErrInvalidToken, that.fixedHuman)
	}

	if err := that.start(); err != nil {
		return nil, err
	}

	return that, nil
}

func (that *Game) ID() string {
	return that.id
}

func (that *Game) Human() entity.Token {
	return that.engine.Human()
}

func (that *Game) Computer() entity.Token {
	return that.engine.Computer()
}

func (that *Game) CurrentTurn() entity.Token {
	return that.engine.CurrentTurn()
}

func (that *Game) Snapshot() tictactoe.Grid {
	return that.board.Snapshot()
}

// State describes the match without changing it.
func (that *Game) State() tictactoe.Outcome {
	return that.describe(that.engine.Current(that.board))
}

// SubmitMove - takes the cell at (x, y) for the player and reports what the move did.
func (that *Game) SubmitMove(player entity.Token, x, y int) (tictactoe.Outcome, error) {
	log := that.logger.With("method", "SubmitMove", "gameID", that.id)

	log.Info("trying to take cell", "player", player, "x", x, "y", y)

	outcome, err := that.engine.SubmitMove(that.board, player, x, y)
	if err != nil {
		log.Warn("move rejected", "player", player, "x", x, "y", y, "error", err)
		that.recorder.MoveRejected(err)

		outcome.Message = outcome.Reason
		if errors.Is(err, apperror.ErrNotYourTurn) {
			outcome.Message = messageWaitYourTurn
		}

		return outcome, fmt.Errorf("failed to take cell: %w", err)
	}

	that.recorder.MoveAccepted(player)

	switch outcome.Status {
	case tictactoe.StatusWin:
		log.Info("player has won", "player", player, "x", x, "y", y)
		that.recorder.GameFinished(string(outcome.Status))
	case tictactoe.StatusTie:
		log.Info("game is tied", "player", player, "x", x, "y", y)
		that.recorder.GameFinished(string(outcome.Status))
	default:
		log.Debug("turn passed", "current_turn", outcome.NextTurn)
	}

	return that.describe(outcome), nil
}

// Reset - replaces the match with a fresh one. The human token is drawn again unless it was fixed.
func (that *Game) Reset() (tictactoe.Outcome, error) {
	previousID := that.id

	if err := that.start(); err != nil {
		return tictactoe.Outcome{}, err
	}

	that.logger.Info("game reset", "previousGameID", previousID, "gameID", that.id, "human", that.Human())

	return that.State(), nil
}

func (that *Game) start() error {
	board, engine, err := tictactoe.Reset(that.drawHuman())
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.id = uuid.New().String()[:8]
	that.board = board
	that.engine = engine

	that.recorder.GameStarted()
	that.logger.Info("game started", "gameID", that.id, "human", engine.Human())

	return nil
}

func (that *Game) drawHuman() entity.Token {
	if that.fixedHuman.IsValid() {
		return that.fixedHuman
	}

	if that.intn(2) == 0 {
		return entity.X
	}

	return entity.O
}

// describe - adds the human token and a message for the end user.
func (that *Game) describe(outcome tictactoe.Outcome) tictactoe.Outcome {
	outcome.Player = that.engine.Human()

	switch outcome.Status {
	case tictactoe.StatusWin:
		if outcome.Winner == that.engine.Human() {
			outcome.Message = messageHumanWon
		} else {
			outcome.Message = messageComputerWon
		}
	case tictactoe.StatusTie:
		outcome.Message = messageDraw
	}

	return outcome
}
