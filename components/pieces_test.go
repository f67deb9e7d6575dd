package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movesAt(t *testing.T, board *ChessBoard, at Coordinates) CoordinateSet {
	t.Helper()
	square, err := board.At(at)
	require.NoError(t, err)
	require.NotNil(t, square.Piece, "no piece on %s", at)
	moves, err := square.Piece.GetPossibleMoves(board)
	require.NoError(t, err)
	return moves
}

func TestBishopMoves(t *testing.T) {
	board := NewChessBoard()
	_, err := board.AddPiece(Coordinates{2, 0}, KindBishop, White)
	require.NoError(t, err)
	_, err = board.AddPiece(Coordinates{4, 2}, KindPawn, Black)
	require.NoError(t, err)

	want := NewCoordinateSet(Coordinates{1, 1}, Coordinates{0, 2}, Coordinates{3, 1}, Coordinates{4, 2})
	got := movesAt(t, board, Coordinates{2, 0})
	assert.True(t, want.Equal(got), "want %s, got %s", want, got)
}

func TestQueenMovesInCorner(t *testing.T) {
	board := NewChessBoard()
	_, err := board.AddPiece(Coordinates{7, 7}, KindQueen, Black)
	require.NoError(t, err)
	_, err = board.AddPiece(Coordinates{7, 5}, KindPawn, Black)
	require.NoError(t, err)
	_, err = board.AddPiece(Coordinates{5, 5}, KindRook, White)
	require.NoError(t, err)

	got := movesAt(t, board, Coordinates{7, 7})
	// 7 along the top rank, 1 down the file, 2 along the diagonal
	assert.Equal(t, 10, got.Len(), "got %s", got)
	assert.True(t, got.Contains(Coordinates{5, 5}))
	assert.False(t, got.Contains(Coordinates{7, 5}))
	assert.False(t, got.Contains(Coordinates{4, 4}))
}

func TestKnightMoves(t *testing.T) {
	board := NewChessBoard()
	_, err := board.AddPiece(Coordinates{1, 0}, KindKnight, White)
	require.NoError(t, err)
	_, err = board.AddPiece(Coordinates{3, 1}, KindPawn, White)
	require.NoError(t, err)
	_, err = board.AddPiece(Coordinates{0, 2}, KindPawn, Black)
	require.NoError(t, err)

	want := NewCoordinateSet(Coordinates{0, 2}, Coordinates{2, 2})
	got := movesAt(t, board, Coordinates{1, 0})
	assert.True(t, want.Equal(got), "want %s, got %s", want, got)
}

func TestKingMoves(t *testing.T) {
	board := NewChessBoard()
	_, err := board.AddPiece(Coordinates{4, 0}, KindKing, White)
	require.NoError(t, err)
	_, err = board.AddPiece(Coordinates{4, 1}, KindPawn, White)
	require.NoError(t, err)
	_, err = board.AddPiece(Coordinates{5, 1}, KindKnight, Black)
	require.NoError(t, err)

	want := NewCoordinateSet(Coordinates{3, 0}, Coordinates{5, 0}, Coordinates{3, 1}, Coordinates{5, 1})
	got := movesAt(t, board, Coordinates{4, 0})
	assert.True(t, want.Equal(got), "want %s, got %s", want, got)
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name   string
		pawn   placement
		others []placement
		want   CoordinateSet
	}{
		{
			name: "white from home rank",
			pawn: placement{Coordinates{4, 1}, KindPawn, White},
			want: NewCoordinateSet(Coordinates{4, 2}, Coordinates{4, 3}),
		},
		{
			name: "black from home rank moves down",
			pawn: placement{Coordinates{4, 6}, KindPawn, Black},
			want: NewCoordinateSet(Coordinates{4, 5}, Coordinates{4, 4}),
		},
		{
			name:   "double step blocked",
			pawn:   placement{Coordinates{2, 1}, KindPawn, White},
			others: []placement{{Coordinates{2, 3}, KindKnight, Black}},
			want:   NewCoordinateSet(Coordinates{2, 2}),
		},
		{
			name:   "blocked in front, cannot jump",
			pawn:   placement{Coordinates{2, 1}, KindPawn, White},
			others: []placement{{Coordinates{2, 2}, KindKnight, White}},
			want:   NewCoordinateSet(),
		},
		{
			name: "diagonal captures only on enemies",
			pawn: placement{Coordinates{3, 4}, KindPawn, Black},
			others: []placement{
				{Coordinates{2, 3}, KindRook, White},
				{Coordinates{4, 3}, KindRook, Black},
			},
			want: NewCoordinateSet(Coordinates{3, 3}, Coordinates{2, 3}),
		},
		{
			name: "last rank has nowhere to go",
			pawn: placement{Coordinates{0, 7}, KindPawn, White},
			want: NewCoordinateSet(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewChessBoard()
			_, err := board.AddPiece(tt.pawn.at, tt.pawn.kind, tt.pawn.color)
			require.NoError(t, err)
			for _, p := range tt.others {
				_, err := board.AddPiece(p.at, p.kind, p.color)
				require.NoError(t, err)
			}
			got := movesAt(t, board, tt.pawn.at)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestPiecesOffBoardAreNotPlaced(t *testing.T) {
	board := NewChessBoard()
	for _, kind := range []Kind{KindPawn, KindKnight, KindBishop, KindRook, KindQueen, KindKing} {
		piece, err := NewPiece(kind, Black)
		require.NoError(t, err)
		_, err = piece.GetPossibleMoves(board)
		assert.ErrorIs(t, err, ErrNotPlaced, kind.String())
		assert.Equal(t, kind, piece.Kind())
	}
}

func TestSuccessorsFromStart(t *testing.T) {
	board := StandardBoard()
	next, err := board.Successors()
	require.NoError(t, err)
	// 16 pawn moves and 4 knight moves
	assert.Len(t, next, 20)
	for _, b := range next {
		assert.Equal(t, Black, b.NextTurn)
		assert.Len(t, b.Occupied(White), 16)
	}

	board.NextTurn = Black
	next, err = board.Successors()
	require.NoError(t, err)
	assert.Len(t, next, 20)
}

func TestParseKindAndColor(t *testing.T) {
	kind, err := ParseKind("Rook")
	require.NoError(t, err)
	assert.Equal(t, KindRook, kind)
	kind, err = ParseKind("n")
	require.NoError(t, err)
	assert.Equal(t, KindKnight, kind)
	_, err = ParseKind("dragon")
	assert.ErrorIs(t, err, ErrInvalidKind)

	color, err := ParseColor("white")
	require.NoError(t, err)
	assert.Equal(t, White, color)
	color, err = ParseColor("b")
	require.NoError(t, err)
	assert.Equal(t, Black, color)
	_, err = ParseColor("green")
	assert.ErrorIs(t, err, ErrInvalidColor)
}
