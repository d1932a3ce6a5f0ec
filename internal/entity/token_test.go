package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_IsValid(t *testing.T) {
	assert.True(t, X.IsValid())
	assert.True(t, O.IsValid())
	assert.False(t, Empty.IsValid())
	assert.False(t, Token(3).IsValid())
}

func TestToken_Opposite(t *testing.T) {
	assert.Equal(t, O, X.Opposite())
	assert.Equal(t, X, O.Opposite())

	// not a validator: everything that is not X pairs with X
	assert.Equal(t, X, Empty.Opposite())
	assert.Equal(t, X, Token(7).Opposite())
}

func TestParseToken(t *testing.T) {
	t.Run("Known literals", func(t *testing.T) {
		for literal, expected := range map[string]Token{
			"empty":   Empty,
			"taken-x": X,
			"taken-o": O,
		} {
			token, err := ParseToken(literal)

			require.NoError(t, err)
			assert.Equal(t, expected, token)
			assert.Equal(t, literal, token.String())
		}
	})

	t.Run("Unknown literal", func(t *testing.T) {
		// When: parsing a literal that names no token
		_, err := ParseToken("taken-y")

		// Then: ErrInvalidToken is returned
		require.ErrorIs(t, err, apperror.ErrInvalidToken)
	})
}

func TestToken_JSON(t *testing.T) {
	t.Run("Encodes tokens as literals", func(t *testing.T) {
		// Given: a row of tokens
		row := [3]Token{X, Empty, O}

		// When: encoding it as JSON
		data, err := json.Marshal(row)

		// Then: every token is written as its literal
		require.NoError(t, err)
		assert.JSONEq(t, `["taken-x","empty","taken-o"]`, string(data))
	})

	t.Run("Decodes a player token", func(t *testing.T) {
		var payload struct {
			Player Token `json:"player"`
		}

		err := json.Unmarshal([]byte(`{"player":"taken-o"}`), &payload)

		require.NoError(t, err)
		assert.Equal(t, O, payload.Player)
	})

	t.Run("Rejects an unknown literal", func(t *testing.T) {
		var payload struct {
			Player Token `json:"player"`
		}

		err := json.Unmarshal([]byte(`{"player":"taken-y"}`), &payload)

		require.ErrorIs(t, err, apperror.ErrInvalidToken)
	})

	t.Run("Refuses to encode an unknown token", func(t *testing.T) {
		_, err := json.Marshal(Token(5))

		require.Error(t, err)
	})
}
