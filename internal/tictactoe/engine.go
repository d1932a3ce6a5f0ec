package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWin        Status = "win"
	StatusTie        Status = "tie"
	StatusFailed     Status = "failed"
)

type engineState uint8

const (
	awaitingMove engineState = iota
	won
	tied
)

// Outcome describes the result of a move request.
type Outcome struct {
	Status   Status       `json:"status"`
	Reason   string       `json:"reason,omitempty"`
	Message  string       `json:"message,omitempty"`
	Grid     *Grid        `json:"grid,omitempty"`
	NextTurn entity.Token `json:"current_turn,omitempty"`
	Computer entity.Token `json:"computer,omitempty"`
	Player   entity.Token `json:"player,omitempty"`
	Winner   entity.Token `json:"winner,omitempty"`
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWin || that.Status == StatusTie
}

func rejected(err error) Outcome {
	return Outcome{
		Status: StatusFailed,
		Reason: err.Error(),
	}
}

// TurnEngine decides whose turn it is and what a move did to the match.
// It does not own the board it validates moves against.
type TurnEngine struct {
	currentTurn entity.Token
	human       entity.Token
	state       engineState
	winner      entity.Token
}

// NewTurnEngine - starts a match. X always moves first, whichever token the human holds.
func NewTurnEngine(human entity.Token) (*TurnEngine, error) {
	if !human.IsValid() {
		return nil, fmt.Errorf("%w: human player cannot be %s", apperror.ErrInvalidToken, human)
	}

	return &TurnEngine{
		currentTurn: entity.X,
		human:       human,
		state:       awaitingMove,
	}, nil
}

// Reset - returns a fresh board and engine that share nothing with the previous match.
func Reset(human entity.Token) (*Board, *TurnEngine, error) {
	engine, err := NewTurnEngine(human)
	if err != nil {
		return nil, nil, err
	}

	return NewBoard(), engine, nil
}

func (that *TurnEngine) CurrentTurn() entity.Token {
	return that.currentTurn
}

func (that *TurnEngine) Human() entity.Token {
	return that.human
}

func (that *TurnEngine) Computer() entity.Token {
	return that.human.Opposite()
}

// Winner returns Empty unless the match was won.
func (that *TurnEngine) Winner() entity.Token {
	return that.winner
}

func (that *TurnEngine) IsFinished() bool {
	return that.state != awaitingMove
}

// SubmitMove - applies the player's move at (x, y). A rejected move returns a
// failed outcome together with the error and leaves the board and the turn as they were.
func (that *TurnEngine) SubmitMove(board *Board, player entity.Token, x, y int) (Outcome, error) {
	if that.IsFinished() {
		return rejected(apperror.ErrGameFinished), apperror.ErrGameFinished
	}

	if player != that.currentTurn {
		err := fmt.Errorf("%w: %s moves now", apperror.ErrNotYourTurn, that.currentTurn)
		return rejected(err), err
	}

	if err := board.Take(x, y, player); err != nil {
		return rejected(err), err
	}

	// win is checked before tie: a full board can still hold a winning line
	if board.HasWinner(player, x, y) {
		that.state = won
		that.winner = player
	} else if board.HasTie() {
		that.state = tied
	} else {
		that.currentTurn = that.currentTurn.Opposite()
	}

	return that.Current(board), nil
}

// Current describes the match on the given board without changing it.
func (that *TurnEngine) Current(board *Board) Outcome {
	grid := board.Snapshot()

	switch that.state {
	case won:
		return Outcome{Status: StatusWin, Grid: &grid, Winner: that.winner}
	case tied:
		return Outcome{Status: StatusTie, Grid: &grid}
	default:
		return Outcome{
			Status:   StatusInProgress,
			Grid:     &grid,
			NextTurn: that.currentTurn,
			Computer: that.Computer(),
		}
	}
}
