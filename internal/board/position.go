package board

import "fmt"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// maxPiecesOfKind bounds the piece list per (side, piece type): more than
// 10 of any one kind on a legal-ish board never happens (8 pawns promoted
// is the pathological worst case), generously rounded up.
const maxPiecesOfKind = 10

// Board is a complete chess position kept across four mutually consistent
// views (spec.md §3): piece bitboards, side bitboards, a piece list on the
// mailbox scale, and the mailbox/packed square maps from mailbox.go. Tables
// (leaper attacks, magics, Zobrist keys) are package-level and immutable;
// a Board only carries the mutable game-state header and the derived
// bitboard/piece-list views.
type Board struct {
	// Piece bitboards: [Color][PieceType]
	pieces [2][6]Bitboard

	// Occupancy bitboards (cached, derived from pieces)
	occupied    [2]Bitboard
	allOccupied Bitboard

	// Piece list on the mailbox scale: squares[side][piece][0:counts[side][piece]]
	squares [2][6][maxPiecesOfKind]MailboxSquare
	counts  [2][6]int

	// Game-state header
	sideToMove     Color
	castlingRights CastlingRights
	enPassant      MailboxSquare // NoMailboxSquare if none
	halfMoveClock  int
	fullMoveNumber int
	hash           uint64

	// King squares, cached for O(1) KingSquare/IsAttacked self-checks.
	kingSquare [2]MailboxSquare
}

// NewBoard returns a board in the initialised-with-tables state (spec.md
// §4.6): package tables are already built by the package's init functions;
// the board itself starts empty until SetupFEN populates it.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset clears the board back to the initialised-with-tables state.
// Tables (leaper/magic/Zobrist) are untouched — they are package-level and
// immutable after package init.
func (b *Board) Reset() {
	*b = Board{
		enPassant:      NoMailboxSquare,
		fullMoveNumber: 1,
	}
	b.kingSquare[White] = NoMailboxSquare
	b.kingSquare[Black] = NoMailboxSquare
}

// PieceBB returns the bitboard of one side's pieces of one type.
func (b *Board) PieceBB(side Color, pt PieceType) Bitboard {
	return b.pieces[side][pt]
}

// SideBB returns the union bitboard of one side's pieces.
func (b *Board) SideBB(side Color) Bitboard {
	return b.occupied[side]
}

// Occupancy returns the bitboard of all occupied squares.
func (b *Board) Occupancy() Bitboard {
	return b.allOccupied
}

// KingSquare returns the mailbox square of one side's king.
func (b *Board) KingSquare(side Color) MailboxSquare {
	return b.kingSquare[side]
}

// SideToMove returns the side on move.
func (b *Board) SideToMove() Color {
	return b.sideToMove
}

// CastlingRights returns the current castling rights mask.
func (b *Board) CastlingRights() CastlingRights {
	return b.castlingRights
}

// EnPassant returns the en-passant target square, or NoMailboxSquare.
func (b *Board) EnPassant() MailboxSquare {
	return b.enPassant
}

// HalfMoveClock returns the halfmove clock (plies since pawn move/capture).
func (b *Board) HalfMoveClock() int {
	return b.halfMoveClock
}

// FullMoveNumber returns the 1-based fullmove counter.
func (b *Board) FullMoveNumber() int {
	return b.fullMoveNumber
}

// ZobristKey returns the position's Zobrist hash.
func (b *Board) ZobristKey() uint64 {
	return b.hash
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece {
	bb := SquareBB(sq)

	if b.allOccupied&bb == 0 {
		return NoPiece
	}

	var c Color
	if b.occupied[White]&bb != 0 {
		c = White
	} else {
		c = Black
	}

	for pt := Pawn; pt <= King; pt++ {
		if b.pieces[c][pt]&bb != 0 {
			return NewPiece(pt, c)
		}
	}

	return NoPiece
}

// IsEmpty returns true if the square is empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b.allOccupied&SquareBB(sq) == 0
}

// placePiece sets a single piece bit during FEN ingestion. Bitboards only;
// callers must follow up with rebuildDerivedViews once placement is done.
func (b *Board) placePiece(piece Piece, sq Square) {
	if piece == NoPiece {
		return
	}
	c := piece.Color()
	pt := piece.Type()
	b.pieces[c][pt] |= SquareBB(sq)
}

// rebuildDerivedViews recomputes side bitboards, the piece list, and king
// squares from the piece bitboards (spec.md §4.6 step 4, invariants
// I2-I4). Must run after any bulk change to b.pieces.
func (b *Board) rebuildDerivedViews() error {
	b.occupied[White] = Empty
	b.occupied[Black] = Empty
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			b.occupied[c] |= b.pieces[c][pt]
		}
	}
	b.allOccupied = b.occupied[White] | b.occupied[Black]

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := b.pieces[c][pt]
			n := 0
			for bb != 0 {
				sq := bb.PopLSB() // lowest set bit first: A1=bit0, matches LERF
				if n >= maxPiecesOfKind {
					return fmt.Errorf("%w: too many %s %s pieces on board", ErrMalformedFEN, c, pt)
				}
				b.squares[c][pt][n] = sq.ToMailbox()
				n++
			}
			b.counts[c][pt] = n
		}
	}

	if b.pieces[White][King].PopCount() != 1 {
		return fmt.Errorf("%w: white must have exactly one king", ErrMalformedFEN)
	}
	if b.pieces[Black][King].PopCount() != 1 {
		return fmt.Errorf("%w: black must have exactly one king", ErrMalformedFEN)
	}
	b.kingSquare[White] = b.pieces[White][King].LSB().ToMailbox()
	b.kingSquare[Black] = b.pieces[Black][King].LSB().ToMailbox()

	return nil
}

// String returns a visual representation of the position.
func (b *Board) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			piece := b.PieceAt(sq)
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", b.sideToMove)
	s += fmt.Sprintf("Castling: %s\n", b.castlingRights)
	s += fmt.Sprintf("En passant: %s\n", b.enPassant)
	s += fmt.Sprintf("Half-move clock: %d\n", b.halfMoveClock)
	s += fmt.Sprintf("Full move: %d\n", b.fullMoveNumber)
	s += fmt.Sprintf("Hash: %016x\n", b.hash)
	return s
}

// InCheck returns true if the side to move is in check.
func (b *Board) InCheck() bool {
	return b.IsAttacked(b.kingSquare[b.sideToMove], b.sideToMove.Other())
}
