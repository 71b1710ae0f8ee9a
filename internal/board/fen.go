package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// SetupFEN parses a FEN string and populates the board (spec.md §4.6).
// Parsing happens entirely against a scratch board; the receiver is only
// overwritten once the whole string has been validated, so a malformed
// FEN never leaves a prior position half-clobbered (spec.md §9,
// "Non-atomic FEN setup").
func (b *Board) SetupFEN(fen string) error {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return fmt.Errorf("%w: need at least 4 fields, got %d", ErrMalformedFEN, len(parts))
	}

	scratch := &Board{
		enPassant:      NoMailboxSquare,
		fullMoveNumber: 1,
	}

	if err := parsePiecePlacement(scratch, parts[0]); err != nil {
		return err
	}

	switch parts[1] {
	case "w":
		scratch.sideToMove = White
	case "b":
		scratch.sideToMove = Black
	default:
		return fmt.Errorf("%w: invalid side to move %q", ErrMalformedFEN, parts[1])
	}

	if err := parseCastlingRights(scratch, parts[2]); err != nil {
		return err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return fmt.Errorf("%w: invalid en passant square %q", ErrMalformedFEN, parts[3])
		}
		scratch.enPassant = sq.ToMailbox()
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return fmt.Errorf("%w: invalid half-move clock %q", ErrMalformedFEN, parts[4])
		}
		scratch.halfMoveClock = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return fmt.Errorf("%w: invalid full-move number %q", ErrMalformedFEN, parts[5])
		}
		scratch.fullMoveNumber = fmn
	}

	if err := scratch.rebuildDerivedViews(); err != nil {
		return err
	}
	if err := scratch.validateEnPassant(); err != nil {
		return err
	}
	scratch.hash = computeZobrist(scratch)

	*b = *scratch
	return nil
}

// validateEnPassant enforces invariant I7: a set ep target sits on rank 3
// (black to move) or rank 6 (white to move), with an opposing pawn on the
// square directly in front of it.
func (b *Board) validateEnPassant() error {
	if !b.enPassant.IsOnBoard() {
		return nil
	}
	sq := b.enPassant.ToSquare()

	var wantRank, pawnRank int
	var pawnSide Color
	if b.sideToMove == Black {
		wantRank, pawnRank, pawnSide = 2, 3, White // rank 3 (0-indexed 2)
	} else {
		wantRank, pawnRank, pawnSide = 5, 4, Black // rank 6 (0-indexed 5)
	}
	if sq.Rank() != wantRank {
		return fmt.Errorf("%w: en passant square %s not on expected rank", ErrMalformedFEN, sq)
	}
	pawnSq := NewSquare(sq.File(), pawnRank)
	if !b.pieces[pawnSide][Pawn].IsSet(pawnSq) {
		return fmt.Errorf("%w: en passant square %s has no pawn in front", ErrMalformedFEN, sq)
	}
	return nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: need 8 ranks, got %d", ErrMalformedFEN, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return fmt.Errorf("%w: too many squares in rank %d", ErrMalformedFEN, rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
			} else {
				piece := PieceFromChar(byte(c))
				if piece == NoPiece {
					return fmt.Errorf("%w: invalid piece character %q", ErrMalformedFEN, c)
				}
				sq := NewSquare(file, rank)
				b.placePiece(piece, sq)
				file++
			}
		}

		if file != 8 {
			return fmt.Errorf("%w: rank %d sums to %d files, want 8", ErrMalformedFEN, rank+1, file)
		}
	}

	return nil
}

// parseCastlingRights parses the castling rights section of a FEN string.
func parseCastlingRights(b *Board, castling string) error {
	if castling == "-" {
		b.castlingRights = NoCastling
		return nil
	}

	for _, c := range castling {
		switch c {
		case 'K':
			b.castlingRights |= WhiteKingSideCastle
		case 'Q':
			b.castlingRights |= WhiteQueenSideCastle
		case 'k':
			b.castlingRights |= BlackKingSideCastle
		case 'q':
			b.castlingRights |= BlackQueenSideCastle
		default:
			return fmt.Errorf("%w: invalid castling character %q", ErrMalformedFEN, c)
		}
	}

	return nil
}

// ToFEN returns the FEN representation of the position.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			piece := b.PieceAt(sq)
			if piece == NoPiece {
				empty++
			} else {
				if empty > 0 {
					sb.WriteString(strconv.Itoa(empty))
					empty = 0
				}
				sb.WriteString(piece.String())
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(b.castlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(b.enPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullMoveNumber))

	return sb.String()
}
