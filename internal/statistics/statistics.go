package statistics

import (
	"fmt"
	"math"

	"github.com/lox/paigow/internal/paigow"
	"github.com/lox/paigow/poker"
)

// RoundResult represents the outcome of a single round for the player
type RoundResult struct {
	Outcome       paigow.Outcome
	Net           int  // Chips won (+stake), returned (0) or lost (-stake)
	Aborted       bool // Round abandoned after a dealer defect; stake refunded
	BackCategory  poker.Category
	FrontCategory poker.Category
}

// Statistics tracks results across rounds
type Statistics struct {
	Rounds  int // Completed rounds, excluding aborted ones
	Wins    int
	Pushes  int
	Losses  int
	Aborted int

	SumNet  int
	SumNet2 int // Sum of squares for variance calculation

	// Category counts for the player's hands
	BackCategories  [poker.StraightFlush + 1]int
	FrontCategories [poker.StraightFlush + 1]int
}

// Add incorporates a new round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	if result.Aborted {
		s.Aborted++
		return
	}

	s.Rounds++
	switch result.Outcome {
	case paigow.Win:
		s.Wins++
	case paigow.Push:
		s.Pushes++
	default:
		s.Losses++
	}
	s.SumNet += result.Net
	s.SumNet2 += result.Net * result.Net
	s.BackCategories[result.BackCategory]++
	s.FrontCategories[result.FrontCategory]++
}

// Merge folds other into s
func (s *Statistics) Merge(other Statistics) {
	s.Rounds += other.Rounds
	s.Wins += other.Wins
	s.Pushes += other.Pushes
	s.Losses += other.Losses
	s.Aborted += other.Aborted
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	for i := range s.BackCategories {
		s.BackCategories[i] += other.BackCategories[i]
		s.FrontCategories[i] += other.FrontCategories[i]
	}
}

// Mean returns the average net chips per completed round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.SumNet) / float64(s.Rounds)
}

// Variance returns the sample variance of net chips per round
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (float64(s.SumNet2) - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	if s.Rounds == 0 {
		return 0, 0
	}
	margin := 1.96 * s.StdDev() / math.Sqrt(float64(s.Rounds))
	return s.Mean() - margin, s.Mean() + margin
}

// WinRate returns the fraction of completed rounds won
func (s *Statistics) WinRate() float64 {
	return s.rate(s.Wins)
}

// PushRate returns the fraction of completed rounds pushed
func (s *Statistics) PushRate() float64 {
	return s.rate(s.Pushes)
}

// LossRate returns the fraction of completed rounds lost
func (s *Statistics) LossRate() float64 {
	return s.rate(s.Losses)
}

func (s *Statistics) rate(n int) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(n) / float64(s.Rounds)
}

// Validate checks that the outcome counts add up
func (s *Statistics) Validate() error {
	if s.Wins+s.Pushes+s.Losses != s.Rounds {
		return fmt.Errorf("outcome counts %d+%d+%d do not sum to %d rounds", s.Wins, s.Pushes, s.Losses, s.Rounds)
	}
	back, front := 0, 0
	for i := range s.BackCategories {
		back += s.BackCategories[i]
		front += s.FrontCategories[i]
	}
	if back != s.Rounds || front != s.Rounds {
		return fmt.Errorf("category counts (%d back, %d front) do not match %d rounds", back, front, s.Rounds)
	}
	return nil
}

// Summary returns a one-line description of the results
func (s *Statistics) Summary() string {
	return fmt.Sprintf("%d rounds: %d wins (%.1f%%), %d pushes (%.1f%%), %d losses (%.1f%%), %d aborted, net %+d",
		s.Rounds, s.Wins, s.WinRate()*100, s.Pushes, s.PushRate()*100, s.Losses, s.LossRate()*100, s.Aborted, s.SumNet)
}
