package board

import "fmt"

// MailboxSquare is an index on the historical 12x10 padded board: the
// playable 8x8 board sits at rows 2..9 (rank 1..8) so that A1 = 21 and
// H8 = 98, surrounded on every side by a one-square-wide off-board rim.
// File/rank edge-crossings can be detected structurally (±1/±10 offsets
// that land off the padded board hit the rim) without masking bitboards.
//
// Square is the currency of bitboard math; MailboxSquare is purely a
// boundary-format convention used by the piece list, king square, and
// en-passant target (spec.md §4, §9 "Dual square encoding").
type MailboxSquare uint8

const (
	mailboxFiles = 10
	mailboxSize  = 120
	mailboxA1    = 21 // BOARD_64_OFFSET in the original source

	// NoMailboxSquare is the sentinel for "no square" / off-board, mirroring
	// BoardSquares::NO_SQ in the C++ original (index 99 there; this port
	// reserves the whole unused tail of the 120 array instead of one slot).
	NoMailboxSquare MailboxSquare = mailboxSize
)

var (
	// packedToMailbox[s] gives the mailbox-120 index of packed square s.
	packedToMailbox [64]MailboxSquare

	// mailboxToPacked[m] gives the packed-64 index of mailbox square m, or
	// InvalidSquare64 if m lies on the off-board rim.
	mailboxToPacked [mailboxSize]Square
)

// InvalidSquare64 marks a mailbox slot that has no corresponding packed
// square (the off-board rim). Matches INVALID_SQUARE_ON_64 in the
// original source, there fixed at 65; this port uses NoSquare (64) since
// Square only ranges 0..64 here.
const InvalidSquare64 = NoSquare

func init() {
	initMailbox()
}

// initMailbox builds the bijection between the packed-64 and mailbox-120
// encodings. Pure geometry: no PRNG, no occupancy, runs once at package
// load alongside the other immutable tables (attacks.go's init).
func initMailbox() {
	for m := 0; m < mailboxSize; m++ {
		mailboxToPacked[m] = InvalidSquare64
	}

	packed := 0
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			m := fileRankToMailbox(file, rank)
			packedToMailbox[packed] = m
			mailboxToPacked[m] = Square(packed)
			packed++
		}
	}
}

// fileRankToMailbox maps 0-indexed (file, rank) to its mailbox-120 index.
func fileRankToMailbox(file, rank int) MailboxSquare {
	return MailboxSquare(mailboxA1 + file + rank*mailboxFiles)
}

// ToMailbox converts a packed square to its mailbox-120 index.
func (sq Square) ToMailbox() MailboxSquare {
	if !sq.IsValid() {
		return NoMailboxSquare
	}
	return packedToMailbox[sq]
}

// ToSquare converts a mailbox-120 index to its packed-64 square, or
// NoSquare if the index names an off-board rim square.
func (m MailboxSquare) ToSquare() Square {
	if int(m) >= mailboxSize {
		return NoSquare
	}
	return mailboxToPacked[m]
}

// IsOnBoard reports whether the mailbox index names one of the 64
// playable squares (as opposed to the off-board rim or the sentinel).
func (m MailboxSquare) IsOnBoard() bool {
	return int(m) < mailboxSize && mailboxToPacked[m] != InvalidSquare64
}

// String renders the mailbox square in algebraic notation via its packed
// form, or "-" if it is off-board / the sentinel.
func (m MailboxSquare) String() string {
	if !m.IsOnBoard() {
		return "-"
	}
	return m.ToSquare().String()
}

// NewMailboxSquare builds a MailboxSquare from 0-indexed file and rank,
// validating both are on the playable board.
func NewMailboxSquare(file, rank int) (MailboxSquare, error) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoMailboxSquare, fmt.Errorf("%w: file=%d rank=%d", ErrInvalidSquare, file, rank)
	}
	return fileRankToMailbox(file, rank), nil
}
