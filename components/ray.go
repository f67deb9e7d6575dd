package components

import "fmt"

// Board-relative directions. Forward is increasing y for both colors.
var (
	Right   = Coordinates{X: 1, Y: 0}
	Left    = Coordinates{X: -1, Y: 0}
	Forward = Coordinates{X: 0, Y: 1}
	Back    = Coordinates{X: 0, Y: -1}

	ForwardRight = Coordinates{X: 1, Y: 1}
	ForwardLeft  = Coordinates{X: -1, Y: 1}
	BackRight    = Coordinates{X: 1, Y: -1}
	BackLeft     = Coordinates{X: -1, Y: -1}
)

var (
	RookDirections   = []Coordinates{Right, Left, Forward, Back}
	BishopDirections = []Coordinates{ForwardRight, ForwardLeft, BackRight, BackLeft}
	QueenDirections  = append(append([]Coordinates{}, RookDirections...), BishopDirections...)
)

// RayMoves walks from origin one step at a time along direction and collects
// the squares a piece of the given color can reach: empty squares, then the
// first enemy piece (a capture). A friendly piece or the board edge ends the
// ray without being included.
func RayMoves(board *ChessBoard, origin, direction Coordinates, color Color) (CoordinateSet, error) {
	if !board.IsWithinBounds(origin) {
		return nil, fmt.Errorf("%w: ray origin %s", ErrInvalidCoordinate, origin)
	}
	if direction == (Coordinates{}) {
		return nil, ErrInvalidDirection
	}

	moves := NewCoordinateSet()
	for newPosition := origin.Add(direction); board.IsWithinBounds(newPosition); newPosition = newPosition.Add(direction) {
		if board.IsEmpty(newPosition) {
			moves.Add(newPosition)
		} else if board.IsEnemy(newPosition, color) {
			moves.Add(newPosition)
			break
		} else {
			break
		}
	}
	return moves, nil
}

// SlidingMoves is the union of RayMoves over several directions.
func SlidingMoves(board *ChessBoard, origin Coordinates, directions []Coordinates, color Color) (CoordinateSet, error) {
	moves := NewCoordinateSet()
	for _, direction := range directions {
		ray, err := RayMoves(board, origin, direction, color)
		if err != nil {
			return nil, err
		}
		moves.Union(ray)
	}
	return moves, nil
}

// stepMoves checks a single square per offset, as knights and kings move.
func stepMoves(board *ChessBoard, origin Coordinates, offsets []Coordinates, color Color) CoordinateSet {
	moves := NewCoordinateSet()
	for _, offset := range offsets {
		move := origin.Add(offset)
		if board.IsWithinBounds(move) && (board.IsEmpty(move) || board.IsEnemy(move, color)) {
			moves.Add(move)
		}
	}
	return moves
}
