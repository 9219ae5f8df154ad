package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeComments(t *testing.T) {
	testCases := []struct {
		name     string
		counts   []int
		expected CommentStats
	}{
		{
			name:     "three pull requests",
			counts:   []int{2, 4, 6},
			expected: CommentStats{Count: 3, Mean: 4.0, Min: 2, Max: 6},
		},
		{
			name:     "single pull request",
			counts:   []int{7},
			expected: CommentStats{Count: 1, Mean: 7.0, Min: 7, Max: 7},
		},
		{
			name:     "fractional mean",
			counts:   []int{1, 2},
			expected: CommentStats{Count: 2, Mean: 1.5, Min: 1, Max: 2},
		},
		{
			name:     "all zero comments",
			counts:   []int{0, 0, 0},
			expected: CommentStats{Count: 3, Mean: 0.0, Min: 0, Max: 0},
		},
		{
			name:     "empty input yields zero summary",
			counts:   nil,
			expected: CommentStats{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			summary, err := SummarizeComments(tc.counts)
			require.NoError(t, err)
			assert.Equal(t, tc.expected.Count, summary.Count)
			assert.InDelta(t, tc.expected.Mean, summary.Mean, 1e-9)
			assert.Equal(t, tc.expected.Min, summary.Min)
			assert.Equal(t, tc.expected.Max, summary.Max)
		})
	}
}
