// Package game runs pai gow rounds for one player against the dealer.
//
// The main type is Session, which owns the player's balance, deals two
// seven-card pools per round, lets the player set a split (retrying on
// invalid input), sets the dealer's split with an automated strategy and
// settles the bet.
//
// # Basic Usage
//
//	s, _ := game.NewSession(game.DefaultConfig().Table, randutil.New(42))
//	round, _ := s.Deal(10)
//	// show round.PlayerPool, read a selection...
//	indices, _ := paigow.ParseSelection("1 2 3 4 5")
//	settled, err := s.SetPlayerHand(indices)
//	if paigow.IsUserError(err) {
//	    // prompt again, the round is still pending
//	}
//
// # Deterministic Testing
//
// Pass a seeded *rand.Rand, or a CardSource with stacked cards through
// WithCardSource, and a quartz mock clock through WithClock.
//
// # Errors
//
// Selection mistakes (paigow.ErrWrongCount, paigow.ErrBadToken,
// paigow.ErrIllegalDominance) leave the round pending. A defect in the dealt
// cards or the dealer's strategy aborts the round with ErrRoundAborted and
// refunds the stake.
package game
