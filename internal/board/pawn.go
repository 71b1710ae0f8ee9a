package board

// PawnTargets bundles the pseudo-legal pawn target sets for one side under
// the board's current occupancy (spec.md §4.5). Each field is a bitboard;
// callers enumerate set bits and synthesise moves downstream — move
// encoding is outside this package's scope.
type PawnTargets struct {
	SinglePush        Bitboard
	DoublePush        Bitboard
	PromotionPush     Bitboard
	Captures          Bitboard
	PromotionCaptures Bitboard
	EnPassant         Bitboard
}

// PawnTargets computes side's pseudo-legal pawn targets against the
// board's current occupancy and en-passant square.
func (b *Board) PawnTargets(side Color) PawnTargets {
	pawns := b.pieces[side][Pawn]
	empty := ^b.allOccupied
	enemy := b.occupied[side.Other()]

	if side == White {
		return whitePawnTargets(pawns, empty, enemy, b.enPassant)
	}
	return blackPawnTargets(pawns, empty, enemy, b.enPassant)
}

func whitePawnTargets(pawns, empty, enemy Bitboard, ep MailboxSquare) PawnTargets {
	singlePush := pawns.North() & empty
	doublePush := singlePush.North() & empty & Rank4
	promotionPush := pawns.North() & empty & Rank8
	singlePush &^= Rank8 // promotions are reported separately

	diagonals := pawns.NorthWest() | pawns.NorthEast()
	captures := diagonals & enemy
	promotionCaptures := captures & Rank8
	captures &^= Rank8

	var epTargets Bitboard
	if ep.IsOnBoard() {
		epTargets = diagonals & SquareBB(ep.ToSquare())
	}

	return PawnTargets{
		SinglePush:        singlePush,
		DoublePush:        doublePush,
		PromotionPush:     promotionPush,
		Captures:          captures,
		PromotionCaptures: promotionCaptures,
		EnPassant:         epTargets,
	}
}

func blackPawnTargets(pawns, empty, enemy Bitboard, ep MailboxSquare) PawnTargets {
	singlePush := pawns.South() & empty
	doublePush := singlePush.South() & empty & Rank5
	promotionPush := pawns.South() & empty & Rank1
	singlePush &^= Rank1

	diagonals := pawns.SouthWest() | pawns.SouthEast()
	captures := diagonals & enemy
	promotionCaptures := captures & Rank1
	captures &^= Rank1

	var epTargets Bitboard
	if ep.IsOnBoard() {
		epTargets = diagonals & SquareBB(ep.ToSquare())
	}

	return PawnTargets{
		SinglePush:        singlePush,
		DoublePush:        doublePush,
		PromotionPush:     promotionPush,
		Captures:          captures,
		PromotionCaptures: promotionCaptures,
		EnPassant:         epTargets,
	}
}
