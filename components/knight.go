package components

var knightJumps = []Coordinates{
	// Vertical (y +/- 2) (x +/- 1)
	{X: 1, Y: 2}, {X: -1, Y: 2}, {X: 1, Y: -2}, {X: -1, Y: -2},
	// Horizontal (y +/- 1) (x +/- 2)
	{X: 2, Y: 1}, {X: -2, Y: 1}, {X: 2, Y: -1}, {X: -2, Y: -1},
}

type Knight struct {
	Color Color
}

func (knight *Knight) GetPossibleMoves(board *ChessBoard) (CoordinateSet, error) {
	position, err := board.PositionOf(knight)
	if err != nil {
		return nil, err
	}
	return stepMoves(board, position, knightJumps, knight.Color), nil
}

func (knight *Knight) GetColor() Color {
	return knight.Color
}

func (knight *Knight) Kind() Kind {
	return KindKnight
}

func (knight *Knight) ToString() string {
	return pieceString(knight.Color, KindKnight)
}
