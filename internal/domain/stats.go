package domain

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// CommentStats summarizes the comment counts of the analyzed pull requests.
type CommentStats struct {
	Count int
	Mean  float64
	Min   int
	Max   int
}

// SummarizeComments computes count, mean, minimum and maximum over the
// recorded comment counts. An empty input yields a zero summary; the
// derived values are only meaningful when Count > 0.
func SummarizeComments(counts []int) (CommentStats, error) {
	if len(counts) == 0 {
		return CommentStats{}, nil
	}
	data := stats.LoadRawData(counts)
	mean, err := stats.Mean(data)
	if err != nil {
		return CommentStats{}, fmt.Errorf("failed to compute mean: %w", err)
	}
	min, err := stats.Min(data)
	if err != nil {
		return CommentStats{}, fmt.Errorf("failed to compute minimum: %w", err)
	}
	max, err := stats.Max(data)
	if err != nil {
		return CommentStats{}, fmt.Errorf("failed to compute maximum: %w", err)
	}
	return CommentStats{
		Count: len(counts),
		Mean:  mean,
		Min:   int(min),
		Max:   int(max),
	}, nil
}
