package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Token identifies which player, if any, owns a cell.
type Token uint8

const (
	Empty Token = iota
	X
	O
)

const (
	EmptyLiteral  = "empty"
	TakenXLiteral = "taken-x"
	TakenOLiteral = "taken-o"
)

// ParseToken - converts a token literal into a Token.
func ParseToken(literal string) (Token, error) {
	switch literal {
	case EmptyLiteral:
		return Empty, nil
	case TakenXLiteral:
		return X, nil
	case TakenOLiteral:
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidToken, literal)
	}
}

// IsValid reports whether the token belongs to a player. Empty is not a player.
func (that Token) IsValid() bool {
	switch that {
	case X, O:
		return true
	case Empty:
		return false
	default:
		return false
	}
}

// Opposite returns the other player. Anything that is not X pairs with X, so
// this must not be used as a validity check.
func (that Token) Opposite() Token {
	if that == X {
		return O
	}
	return X
}

func (that Token) String() string {
	switch that {
	case Empty:
		return EmptyLiteral
	case X:
		return TakenXLiteral
	case O:
		return TakenOLiteral
	default:
		return fmt.Sprintf("token(%d)", uint8(that))
	}
}

func (that Token) MarshalText() ([]byte, error) {
	switch that {
	case Empty, X, O:
		return []byte(that.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidToken, uint8(that))
	}
}

func (that *Token) UnmarshalText(text []byte) error {
	token, err := ParseToken(string(text))
	if err != nil {
		return err
	}

	*that = token

	return nil
}
