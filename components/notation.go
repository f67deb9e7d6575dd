package components

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// StartPlacement is the standard initial position, white on y 0 and 1.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"

func StandardBoard() *ChessBoard {
	board, err := ParseBoard(StartPlacement)
	if err != nil {
		panic(err)
	}
	return board
}

// Encode writes the board as placement text: ranks from y=7 down to y=0
// separated by '/', upper case for white, digits for runs of empty squares,
// then the side to move.
func (cb *ChessBoard) Encode() string {
	var sb strings.Builder
	for y := BoardSize - 1; y >= 0; y-- {
		empty := 0
		for x := 0; x < BoardSize; x++ {
			piece := cb.Board[y][x]
			if piece == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := rune(piece.Kind().Letter())
			if piece.GetColor() == Black {
				letter = unicode.ToLower(letter)
			}
			sb.WriteRune(letter)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}
	if cb.NextTurn == White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	return sb.String()
}

// ParseBoard reads placement text as written by Encode. The side to move is
// optional and defaults to white.
func ParseBoard(text string) (*ChessBoard, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 || len(fields) > 2 {
		return nil, fmt.Errorf("%w: want placement and optional side, got %q", ErrInvalidNotation, text)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != BoardSize {
		return nil, fmt.Errorf("%w: want %d ranks, got %d", ErrInvalidNotation, BoardSize, len(ranks))
	}

	board := NewChessBoard()
	for i, rank := range ranks {
		y := BoardSize - 1 - i
		x := 0
		for _, ch := range rank {
			if ch >= '1' && ch <= '8' {
				x += int(ch - '0')
				continue
			}
			kind, err := ParseKind(string(ch))
			if err != nil {
				return nil, fmt.Errorf("%w: rank %d: %v", ErrInvalidNotation, y, err)
			}
			color := White
			if unicode.IsLower(ch) {
				color = Black
			}
			if x >= BoardSize {
				return nil, fmt.Errorf("%w: rank %d is longer than %d squares", ErrInvalidNotation, y, BoardSize)
			}
			piece, err := NewPiece(kind, color)
			if err != nil {
				return nil, err
			}
			board.Board[y][x] = piece
			x++
		}
		if x != BoardSize {
			return nil, fmt.Errorf("%w: rank %d covers %d squares", ErrInvalidNotation, y, x)
		}
	}

	if len(fields) == 2 {
		color, err := ParseColor(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidNotation, err)
		}
		board.NextTurn = color
	}
	return board, nil
}
