package domain

import "fmt"

// checkMinScore fails when a minimum is configured and score is below it.
func checkMinScore(minScore, score float64) error {
	if minScore <= 0 || score >= minScore {
		return nil
	}

	return fmt.Errorf("%w: %.2f%% < %.2f%%", ErrScoreBelowMinimum, score*100, minScore*100)
}
