package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	MaxHorizontalCells = 3
	MaxVerticalCells   = 3

	center = 1
)

// Grid is a value copy of the board ownership, indexed [x][y].
type Grid [MaxHorizontalCells][MaxVerticalCells]entity.Token

// Board holds the cells of one match. (0,0) is the top-left cell and (2,2) the bottom-right one.
type Board struct {
	cells [MaxHorizontalCells][MaxVerticalCells]entity.Cell
}

func NewBoard() *Board {
	board := &Board{}

	for x := range MaxHorizontalCells {
		for y := range MaxVerticalCells {
			board.cells[x][y] = entity.NewCell(x, y)
		}
	}

	return board
}

// ValidateCoordinates - checks that (x, y) exists on the board.
func (that *Board) ValidateCoordinates(x, y int) error {
	if x < 0 || x >= MaxHorizontalCells || y < 0 || y >= MaxVerticalCells {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, x, y)
	}

	return nil
}

// Take - gives the cell at (x, y) to the player.
func (that *Board) Take(x, y int, token entity.Token) error {
	if err := that.ValidateCoordinates(x, y); err != nil {
		return err
	}

	if err := that.cells[x][y].Take(token); err != nil {
		return fmt.Errorf("unable to take cell: %w", err)
	}

	return nil
}

func (that *Board) Cell(x, y int) (entity.Cell, error) {
	if err := that.ValidateCoordinates(x, y); err != nil {
		return entity.Cell{}, err
	}

	return that.cells[x][y], nil
}

func (that *Board) Snapshot() Grid {
	var grid Grid

	for x := range MaxHorizontalCells {
		for y := range MaxVerticalCells {
			grid[x][y] = that.cells[x][y].State
		}
	}

	return grid
}

// HasTie reports whether every cell is taken. A full board may still hold a
// winning line, so callers check HasWinner first.
func (that *Board) HasTie() bool {
	for x := range MaxHorizontalCells {
		for y := range MaxVerticalCells {
			if !that.cells[x][y].IsTaken() {
				return false
			}
		}
	}

	return true
}

// HasWinner reports whether the player completed a line through the last move at (x, y).
// Only the lines through the last move are inspected.
func (that *Board) HasWinner(player entity.Token, x, y int) bool {
	if !player.IsValid() || that.ValidateCoordinates(x, y) != nil {
		return false
	}

	return that.isRowWin(player, x) ||
		that.isColumnWin(player, y) ||
		that.isDiagonalWin(player, x, y)
}

func (that *Board) isRowWin(player entity.Token, x int) bool {
	for y := range MaxVerticalCells {
		if that.cells[x][y].State != player {
			return false
		}
	}

	return true
}

func (that *Board) isColumnWin(player entity.Token, y int) bool {
	for x := range MaxHorizontalCells {
		if that.cells[x][y].State != player {
			return false
		}
	}

	return true
}

// isDiagonalWin works only on a 3x3 board: every diagonal passes through the
// center, and the opposite corner of a corner is reached with coord ^ 2.
func (that *Board) isDiagonalWin(player entity.Token, x, y int) bool {
	if that.cells[center][center].State != player {
		return false
	}

	if x != center || y != center {
		return that.cells[x][y].State == player && that.ownsOppositeCorner(player, x, y)
	}

	// the last move was the center, so pick an owned top corner to start from
	if that.cells[0][0].State == player && that.ownsOppositeCorner(player, 0, 0) {
		return true
	}

	topRight := MaxVerticalCells - 1

	return that.cells[0][topRight].State == player && that.ownsOppositeCorner(player, 0, topRight)
}

func (that *Board) ownsOppositeCorner(player entity.Token, x, y int) bool {
	oppositeX := x ^ (MaxHorizontalCells - 1)
	oppositeY := y ^ (MaxVerticalCells - 1)

	// edges map outside the board and never form a diagonal
	if oppositeX >= MaxHorizontalCells || oppositeY >= MaxVerticalCells {
		return false
	}

	return that.cells[oppositeX][oppositeY].State == player
}
