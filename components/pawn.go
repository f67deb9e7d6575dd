package components

type Pawn struct {
	Color Color
}

// Unlike the rook's queries, a pawn's forward depends on its color.
func (pawn *Pawn) direction() int {
	if pawn.Color == White {
		return 1
	}
	return -1
}

func (pawn *Pawn) homeRank() int {
	if pawn.Color == White {
		return 1
	}
	return BoardSize - 2
}

// GetPossibleMoves covers the single step, the double step from the home rank
// and diagonal captures. En passant and promotion are not generated.
func (pawn *Pawn) GetPossibleMoves(board *ChessBoard) (CoordinateSet, error) {
	position, err := board.PositionOf(pawn)
	if err != nil {
		return nil, err
	}
	moves := NewCoordinateSet()
	dy := pawn.direction()

	// Forward 1
	one := position.Add(Coordinates{Y: dy})
	if board.IsEmpty(one) {
		moves.Add(one)
		// (First Move) Forward 2
		two := one.Add(Coordinates{Y: dy})
		if position.Y == pawn.homeRank() && board.IsEmpty(two) {
			moves.Add(two)
		}
	}

	// (Capture) Diagonal 1 (L/R)
	for _, dx := range []int{-1, 1} {
		target := position.Add(Coordinates{X: dx, Y: dy})
		if board.IsEnemy(target, pawn.Color) {
			moves.Add(target)
		}
	}
	return moves, nil
}

func (pawn *Pawn) GetColor() Color {
	return pawn.Color
}

func (pawn *Pawn) Kind() Kind {
	return KindPawn
}

func (pawn *Pawn) ToString() string {
	return pieceString(pawn.Color, KindPawn)
}
