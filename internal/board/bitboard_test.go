package board

import "testing"

func TestSquareBBAndIsSet(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)
		if !bb.IsSet(sq) {
			t.Errorf("SquareBB(%v) is not set at %v", sq, sq)
		}
		if bb.PopCount() != 1 {
			t.Errorf("SquareBB(%v).PopCount() = %d, want 1", sq, bb.PopCount())
		}
	}
}

func TestPopLSBDrainsAllBits(t *testing.T) {
	bb := Rank4 | FileD
	count := 0
	for bb != 0 {
		bb.PopLSB()
		count++
	}
	want := Rank4.PopCount() + FileD.PopCount() - 1 // D4 counted once
	if count != want {
		t.Errorf("drained %d bits, want %d", count, want)
	}
}

func TestLSBMSBOfEmpty(t *testing.T) {
	if Empty.LSB() != NoSquare {
		t.Errorf("Empty.LSB() = %v, want NoSquare", Empty.LSB())
	}
	if Empty.MSB() != NoSquare {
		t.Errorf("Empty.MSB() = %v, want NoSquare", Empty.MSB())
	}
}

func TestRankFileConstantsBitExact(t *testing.T) {
	if Rank4 != 0x00000000FF000000 {
		t.Errorf("Rank4 = %#x, want %#x", uint64(Rank4), uint64(0x00000000FF000000))
	}
	if Rank5 != 0x000000FF00000000 {
		t.Errorf("Rank5 = %#x, want %#x", uint64(Rank5), uint64(0x000000FF00000000))
	}
	if FileA != 0x0101010101010101 {
		t.Errorf("FileA = %#x, want %#x", uint64(FileA), uint64(0x0101010101010101))
	}
	if FileH != 0x8080808080808080 {
		t.Errorf("FileH = %#x, want %#x", uint64(FileH), uint64(0x8080808080808080))
	}
}

func TestCastlingRightsBitExact(t *testing.T) {
	if WhiteKingSideCastle != 1 {
		t.Errorf("WhiteKingSideCastle = %d, want 1", WhiteKingSideCastle)
	}
	if WhiteQueenSideCastle != 2 {
		t.Errorf("WhiteQueenSideCastle = %d, want 2", WhiteQueenSideCastle)
	}
	if BlackKingSideCastle != 4 {
		t.Errorf("BlackKingSideCastle = %d, want 4", BlackKingSideCastle)
	}
	if BlackQueenSideCastle != 8 {
		t.Errorf("BlackQueenSideCastle = %d, want 8", BlackQueenSideCastle)
	}
}
