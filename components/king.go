package components

type King struct {
	Color Color
}

// GetPossibleMoves returns the single steps onto empty or enemy squares. It
// does not filter moves that leave the king in check.
func (king *King) GetPossibleMoves(board *ChessBoard) (CoordinateSet, error) {
	position, err := board.PositionOf(king)
	if err != nil {
		return nil, err
	}
	return stepMoves(board, position, QueenDirections, king.Color), nil
}

func (king *King) GetColor() Color {
	return king.Color
}

func (king *King) Kind() Kind {
	return KindKing
}

func (king *King) ToString() string {
	return pieceString(king.Color, KindKing)
}
