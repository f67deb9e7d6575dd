package components

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const BoardSize = 8

var log = logrus.WithField("component", "components")

type Coordinates struct {
	X int
	Y int
}

func (c Coordinates) Add(other Coordinates) Coordinates {
	return Coordinates{X: c.X + other.X, Y: c.Y + other.Y}
}

// Mirror reflects the coordinate across the vertical centre line (x -> 7-x).
func (c Coordinates) Mirror() Coordinates {
	return Coordinates{X: BoardSize - 1 - c.X, Y: c.Y}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("[%d, %d]", c.X, c.Y)
}

// Square is a single cell of the board. Piece is nil when the cell is empty.
type Square struct {
	Position Coordinates
	Piece    ChessPiece
}

func (s Square) IsEmpty() bool {
	return s.Piece == nil
}

type ChessBoard struct {
	Board    [BoardSize][BoardSize]ChessPiece // indexed [y][x]
	NextTurn Color
}

func NewChessBoard() *ChessBoard {
	return &ChessBoard{NextTurn: White}
}

func (cb *ChessBoard) IsWithinBounds(position Coordinates) bool {
	return position.X >= 0 && position.X < BoardSize && position.Y >= 0 && position.Y < BoardSize
}

func (cb *ChessBoard) checkBounds(position Coordinates) error {
	if !cb.IsWithinBounds(position) {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinate, position)
	}
	return nil
}

// AddPiece creates a piece of the given kind and color and places it on
// position, replacing whatever stood there.
func (cb *ChessBoard) AddPiece(position Coordinates, kind Kind, color Color) (ChessPiece, error) {
	piece, err := NewPiece(kind, color)
	if err != nil {
		return nil, err
	}
	if err := cb.Place(position, piece); err != nil {
		return nil, err
	}
	return piece, nil
}

// Place puts an existing piece on position. A piece already on the board is
// lifted from its old square first so it never occupies two cells.
func (cb *ChessBoard) Place(position Coordinates, piece ChessPiece) error {
	if err := cb.checkBounds(position); err != nil {
		return err
	}
	if piece == nil {
		return fmt.Errorf("%w: nil piece", ErrInvalidKind)
	}
	if old, err := cb.PositionOf(piece); err == nil {
		cb.Board[old.Y][old.X] = nil
	}
	if captured := cb.Board[position.Y][position.X]; captured != nil {
		log.WithFields(logrus.Fields{"square": position, "piece": captured.ToString()}).Debug("square overwritten")
	}
	cb.Board[position.Y][position.X] = piece
	log.WithFields(logrus.Fields{"square": position, "piece": piece.ToString()}).Debug("piece placed")
	return nil
}

func (cb *ChessBoard) At(position Coordinates) (Square, error) {
	if err := cb.checkBounds(position); err != nil {
		return Square{}, err
	}
	return Square{Position: position, Piece: cb.Board[position.Y][position.X]}, nil
}

// RemovePiece empties position and returns the former occupant, if any.
func (cb *ChessBoard) RemovePiece(position Coordinates) (ChessPiece, error) {
	if err := cb.checkBounds(position); err != nil {
		return nil, err
	}
	piece := cb.Board[position.Y][position.X]
	cb.Board[position.Y][position.X] = nil
	return piece, nil
}

// PositionOf finds the square holding piece. Pieces are compared by identity.
func (cb *ChessBoard) PositionOf(piece ChessPiece) (Coordinates, error) {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if cb.Board[y][x] != nil && cb.Board[y][x] == piece {
				return Coordinates{X: x, Y: y}, nil
			}
		}
	}
	return Coordinates{}, ErrNotPlaced
}

func (cb *ChessBoard) IsEmpty(position Coordinates) bool {
	if !cb.IsWithinBounds(position) {
		return false
	}
	return cb.Board[position.Y][position.X] == nil
}

func (cb *ChessBoard) IsEnemy(position Coordinates, color Color) bool {
	if !cb.IsWithinBounds(position) {
		return false
	}

	piece := cb.Board[position.Y][position.X]
	return piece != nil && piece.GetColor() != color
}

// MovePiece moves the occupant of from onto to, capturing anything there.
func (cb *ChessBoard) MovePiece(from, to Coordinates) error {
	if err := cb.checkBounds(from); err != nil {
		return err
	}
	if err := cb.checkBounds(to); err != nil {
		return err
	}
	piece := cb.Board[from.Y][from.X]
	if piece == nil {
		return fmt.Errorf("%w: no piece on %s", ErrNotPlaced, from)
	}

	cb.Board[to.Y][to.X] = piece
	cb.Board[from.Y][from.X] = nil
	log.WithFields(logrus.Fields{"from": from, "to": to, "piece": piece.ToString()}).Debug("piece moved")
	return nil
}

// DeepCopy copies the grid. Pieces hold no position so the copy shares them.
func (cb *ChessBoard) DeepCopy() *ChessBoard {
	newBoard := ChessBoard{NextTurn: cb.NextTurn}
	newBoard.Board = cb.Board
	return &newBoard
}

// Occupied lists the occupied squares of the given color, lowest y first.
func (cb *ChessBoard) Occupied(color Color) []Square {
	var squares []Square
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			piece := cb.Board[y][x]
			if piece != nil && piece.GetColor() == color {
				squares = append(squares, Square{Position: Coordinates{X: x, Y: y}, Piece: piece})
			}
		}
	}
	return squares
}

// Successors applies every generated move of the side to move and returns the
// resulting boards with the turn flipped. Check is not considered.
func (cb *ChessBoard) Successors() ([]*ChessBoard, error) {
	var possibleBoards []*ChessBoard

	for _, square := range cb.Occupied(cb.NextTurn) {
		targets, err := square.Piece.GetPossibleMoves(cb)
		if err != nil {
			return nil, fmt.Errorf("moves for %s on %s: %w", square.Piece.ToString(), square.Position, err)
		}
		for _, target := range targets.Sorted() {
			newBoard := cb.DeepCopy()
			if err := newBoard.MovePiece(square.Position, target); err != nil {
				return nil, err
			}
			newBoard.NextTurn = !cb.NextTurn
			possibleBoards = append(possibleBoards, newBoard)
		}
	}

	return possibleBoards, nil
}

// String draws the board with the highest rank on top.
func (cb *ChessBoard) String() string {
	var sb strings.Builder
	sb.WriteString("  ----------------------------------------\n")
	for y := BoardSize - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%d-|", y)
		for x := 0; x < BoardSize; x++ {
			if piece := cb.Board[y][x]; piece != nil {
				sb.WriteString(piece.ToString())
			} else {
				sb.WriteString("     ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("  ----------------------------------------\n")
	sb.WriteString("     0    1    2    3    4    5    6    7\n")
	fmt.Fprintf(&sb, "%s to move\n", cb.NextTurn)
	return sb.String()
}
