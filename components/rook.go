package components

type Rook struct {
	Color Color
}

// RightMoves scans toward increasing x.
func (rook *Rook) RightMoves(board *ChessBoard) (CoordinateSet, error) {
	return rook.movesToward(board, Right)
}

// LeftMoves scans toward decreasing x.
func (rook *Rook) LeftMoves(board *ChessBoard) (CoordinateSet, error) {
	return rook.movesToward(board, Left)
}

// ForwardMoves scans toward increasing y, whatever the rook's color.
func (rook *Rook) ForwardMoves(board *ChessBoard) (CoordinateSet, error) {
	return rook.movesToward(board, Forward)
}

// BackMoves scans toward decreasing y, whatever the rook's color.
func (rook *Rook) BackMoves(board *ChessBoard) (CoordinateSet, error) {
	return rook.movesToward(board, Back)
}

func (rook *Rook) movesToward(board *ChessBoard, direction Coordinates) (CoordinateSet, error) {
	position, err := board.PositionOf(rook)
	if err != nil {
		return nil, err
	}
	return RayMoves(board, position, direction, rook.Color)
}

func (rook *Rook) GetPossibleMoves(board *ChessBoard) (CoordinateSet, error) {
	position, err := board.PositionOf(rook)
	if err != nil {
		return nil, err
	}
	return SlidingMoves(board, position, RookDirections, rook.Color)
}

func (rook *Rook) GetColor() Color {
	return rook.Color
}

func (rook *Rook) Kind() Kind {
	return KindRook
}

func (rook *Rook) ToString() string {
	return pieceString(rook.Color, KindRook)
}
