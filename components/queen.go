package components

type Queen struct {
	Color Color
}

// GetPossibleMoves combines the rook and bishop rays.
func (queen *Queen) GetPossibleMoves(board *ChessBoard) (CoordinateSet, error) {
	position, err := board.PositionOf(queen)
	if err != nil {
		return nil, err
	}
	return SlidingMoves(board, position, QueenDirections, queen.Color)
}

func (queen *Queen) GetColor() Color {
	return queen.Color
}

func (queen *Queen) Kind() Kind {
	return KindQueen
}

func (queen *Queen) ToString() string {
	return pieceString(queen.Color, KindQueen)
}
