package algo

import "errors"

var (
	// ErrUnknownAlgorithm indicates a name that matches no registered algorithm.
	ErrUnknownAlgorithm = errors.New("algo: unknown algorithm")
)
