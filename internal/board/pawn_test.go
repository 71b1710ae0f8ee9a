package board

import "testing"

func TestPawnTargetsStartingPosition(t *testing.T) {
	b := NewBoard()
	if err := b.SetupFEN(StartFEN); err != nil {
		t.Fatalf("SetupFEN: %v", err)
	}

	white := b.PawnTargets(White)
	if got := white.SinglePush.PopCount(); got != 8 {
		t.Errorf("white single push popcount = %d, want 8", got)
	}
	if got := white.DoublePush.PopCount(); got != 8 {
		t.Errorf("white double push popcount = %d, want 8", got)
	}
	if white.Captures != Empty || white.PromotionPush != Empty || white.PromotionCaptures != Empty {
		t.Error("no captures/promotions possible from the starting position")
	}

	black := b.PawnTargets(Black)
	if got := black.SinglePush.PopCount(); got != 8 {
		t.Errorf("black single push popcount = %d, want 8", got)
	}
	if got := black.DoublePush.PopCount(); got != 8 {
		t.Errorf("black double push popcount = %d, want 8", got)
	}
}

func TestPawnTargetsCaptures(t *testing.T) {
	b := NewBoard()
	if err := b.SetupFEN("4k3/8/8/8/3p4/4P3/8/4K3 w - - 0 1"); err != nil {
		t.Fatalf("SetupFEN: %v", err)
	}
	white := b.PawnTargets(White)
	if !white.Captures.IsSet(D4) {
		t.Error("white pawn on e3 should be able to capture on d4")
	}
}

func TestPawnTargetsPromotion(t *testing.T) {
	b := NewBoard()
	if err := b.SetupFEN("4k3/4P3/8/8/8/8/8/4K3 w - - 0 1"); err != nil {
		t.Fatalf("SetupFEN: %v", err)
	}
	white := b.PawnTargets(White)
	if !white.PromotionPush.IsSet(E8) {
		t.Error("white pawn on e7 should have a promotion push to e8")
	}
	if white.SinglePush != Empty {
		t.Error("promotion push must not also appear as a plain single push")
	}
}

func TestPawnTargetsEnPassant(t *testing.T) {
	b := NewBoard()
	if err := b.SetupFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1"); err != nil {
		t.Fatalf("SetupFEN: %v", err)
	}
	white := b.PawnTargets(White)
	d6, _ := ParseSquare("d6")
	if !white.EnPassant.IsSet(d6) {
		t.Error("white pawn on e5 should have an en-passant target on d6")
	}
}

func TestPawnNorthSouthNoFileWraparound(t *testing.T) {
	aFile := FileA
	if aFile.North()&FileH != 0 {
		t.Error("north(A-file) must not bleed into H-file")
	}
	hFile := FileH
	if hFile.South()&FileA != 0 {
		t.Error("south(H-file) must not bleed into A-file")
	}
}
