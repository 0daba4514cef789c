package session

import "errors"

var (
	ErrInvalidNumbers  = errors.New("session: invalid input, use comma-separated integers")
	ErrNoNumbers       = errors.New("session: no valid numbers found")
	ErrInvalidSize     = errors.New("session: invalid size input")
	ErrNonPositiveSize = errors.New("session: size must be a positive number")
	ErrNoAlgorithm     = errors.New("session: no algorithm selected")
	ErrInvalidTarget   = errors.New("session: invalid target value, using previous value")
)
