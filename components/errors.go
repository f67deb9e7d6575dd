package components

import "errors"

var (
	ErrInvalidCoordinate = errors.New("coordinate outside the 8x8 board")
	ErrNotPlaced         = errors.New("piece is not on the board")
	ErrInvalidDirection  = errors.New("direction must not be zero")
	ErrInvalidKind       = errors.New("unknown piece kind")
	ErrInvalidColor      = errors.New("unknown piece color")
	ErrInvalidNotation   = errors.New("malformed board notation")
)
