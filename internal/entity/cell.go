package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Cell is a single board position and its owner.
type Cell struct {
	PosX  int   `json:"pos_x"`
	PosY  int   `json:"pos_y"`
	State Token `json:"state"`
}

func NewCell(x, y int) Cell {
	return Cell{
		PosX:  x,
		PosY:  y,
		State: Empty,
	}
}

// Take - gives the cell to the player. A cell can be taken only once.
func (that *Cell) Take(token Token) error {
	if that.State != Empty {
		return fmt.Errorf("%w: (%d, %d) is owned by %s", apperror.ErrAlreadyTaken, that.PosX, that.PosY, that.State)
	}

	if !token.IsValid() {
		return fmt.Errorf("%w: cannot take with %s", apperror.ErrInvalidToken, token)
	}

	that.State = token

	return nil
}

func (that *Cell) IsTaken() bool {
	return that.State != Empty
}
