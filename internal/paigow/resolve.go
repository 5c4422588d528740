package paigow

import "github.com/lox/paigow/poker"

// Outcome is the result of a split against an opponent's split.
type Outcome int

const (
	Lose Outcome = iota
	Push
	Win
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case Lose:
		return "lose"
	case Push:
		return "push"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

// Result holds the per-hand comparisons (1 player ahead, 0 tie, -1 opponent
// ahead) and the combined outcome.
type Result struct {
	Back    int
	Front   int
	Outcome Outcome
}

// Resolve compares player's split against opponent's hand by hand.
func Resolve(player, opponent Split) Result {
	back := player.Back.Compare(opponent.Back)
	front := player.Front.Compare(opponent.Front)
	return Result{Back: back, Front: front, Outcome: combine(back > 0, front > 0)}
}

// ResolveRanks combines two sub-hand comparisons. The player wins only by
// beating both opponent hands, loses by beating neither, and pushes on a
// split decision. Ties count as not beating.
func ResolveRanks(playerBack, playerFront, oppBack, oppFront poker.HandRank) Outcome {
	return combine(playerBack.Beats(oppBack), playerFront.Beats(oppFront))
}

func combine(backWins, frontWins bool) Outcome {
	switch {
	case backWins && frontWins:
		return Win
	case !backWins && !frontWins:
		return Lose
	default:
		return Push
	}
}
