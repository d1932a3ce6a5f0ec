package apperror

import "errors"

var (
	ErrAlreadyTaken = errors.New("cannot change state of taken cell")
	ErrInvalidToken = errors.New("invalid player token")
	ErrOutOfBounds  = errors.New("cell cannot be taken at this position")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrGameFinished = errors.New("game is already finished")
)
