package components

type Bishop struct {
	Color Color
}

func (bishop *Bishop) GetPossibleMoves(board *ChessBoard) (CoordinateSet, error) {
	position, err := board.PositionOf(bishop)
	if err != nil {
		return nil, err
	}
	return SlidingMoves(board, position, BishopDirections, bishop.Color)
}

func (bishop *Bishop) GetColor() Color {
	return bishop.Color
}

func (bishop *Bishop) Kind() Kind {
	return KindBishop
}

func (bishop *Bishop) ToString() string {
	return pieceString(bishop.Color, KindBishop)
}
