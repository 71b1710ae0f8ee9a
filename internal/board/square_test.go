package board

import (
	"errors"
	"testing"
)

func TestParseSquareRoundTrip(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		got, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("ParseSquare(%s): %v", sq, err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%s) = %v, want %v", sq.String(), got, sq)
		}
	}
}

func TestParseSquareInvalid(t *testing.T) {
	tests := []string{"", "a", "a9", "i4", "e44", "z0"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			if _, err := ParseSquare(s); !errors.Is(err, ErrInvalidSquare) {
				t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", s, err)
			}
		})
	}
}

func TestMailboxRoundTrip(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		m := sq.ToMailbox()
		if !m.IsOnBoard() {
			t.Fatalf("square %v mailbox %v not on board", sq, m)
		}
		if back := m.ToSquare(); back != sq {
			t.Errorf("square %v -> mailbox %v -> square %v, want round-trip", sq, m, back)
		}
	}
}

func TestMailboxA1H8(t *testing.T) {
	if got := A1.ToMailbox(); got != 21 {
		t.Errorf("A1.ToMailbox() = %d, want 21", got)
	}
	if got := H8.ToMailbox(); got != 98 {
		t.Errorf("H8.ToMailbox() = %d, want 98", got)
	}
}

func TestMailboxOffBoardRim(t *testing.T) {
	for m := MailboxSquare(0); m < mailboxSize; m++ {
		if m.IsOnBoard() {
			continue
		}
		if m.ToSquare() != NoSquare {
			t.Errorf("off-board mailbox %d maps to %v, want NoSquare", m, m.ToSquare())
		}
	}
}
