package components

import (
	"fmt"
	"strings"
)

type Color bool // white = true, black = false

const (
	White Color = true
	Black Color = false
)

func (c Color) String() string {
	if c {
		return "white"
	}
	return "black"
}

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return Black, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

type Kind int

const (
	KindPawn Kind = iota + 1
	KindKnight
	KindBishop
	KindRook
	KindQueen
	KindKing
)

var kindLetters = map[Kind]byte{
	KindPawn:   'P',
	KindKnight: 'N', // N so it is not confused with King
	KindBishop: 'B',
	KindRook:   'R',
	KindQueen:  'Q',
	KindKing:   'K',
}

var kindNames = map[Kind]string{
	KindPawn:   "pawn",
	KindKnight: "knight",
	KindBishop: "bishop",
	KindRook:   "rook",
	KindQueen:  "queen",
	KindKing:   "king",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Letter is the upper-case notation letter of the kind.
func (k Kind) Letter() byte {
	return kindLetters[k]
}

func ParseKind(s string) (Kind, error) {
	for kind, name := range kindNames {
		if strings.EqualFold(s, name) || (len(s) == 1 && strings.ToUpper(s)[0] == kindLetters[kind]) {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// ChessPiece is implemented by every piece kind. Pieces do not know where they
// stand; each query takes the board and looks the piece up on it.
type ChessPiece interface {
	GetPossibleMoves(board *ChessBoard) (CoordinateSet, error)
	GetColor() Color
	Kind() Kind
	ToString() string
}

func NewPiece(kind Kind, color Color) (ChessPiece, error) {
	switch kind {
	case KindPawn:
		return &Pawn{Color: color}, nil
	case KindKnight:
		return &Knight{Color: color}, nil
	case KindBishop:
		return &Bishop{Color: color}, nil
	case KindRook:
		return &Rook{Color: color}, nil
	case KindQueen:
		return &Queen{Color: color}, nil
	case KindKing:
		return &King{Color: color}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalidKind, int(kind))
}

func pieceString(color Color, kind Kind) string {
	if color {
		return fmt.Sprintf(" W %c ", kind.Letter())
	}
	return fmt.Sprintf(" B %c ", kind.Letter())
}
