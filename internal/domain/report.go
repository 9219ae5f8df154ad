package domain

import (
	"fmt"
	"strings"
)

// ReviewTimeStats summarizes the time from pull request creation to first
// review activity, for the pull requests that had any.
type ReviewTimeStats struct {
	Reviewed          int
	MeanBusinessHours float64
}

// Report is the result of one analysis run. Its rendered form is written to
// standard output and appended verbatim to downstream Markdown reports, so
// line order and labels must stay stable.
type Report struct {
	Repo     Repo
	Window   TimeWindow
	Comments CommentStats

	// ReviewTime is nil unless review-time reporting was requested.
	ReviewTime *ReviewTimeStats
}

// String renders the plain-text report.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PR comment stats for %s (%s):\n", r.Repo, r.Window)
	fmt.Fprintf(&b, "PRs analyzed: %d", r.Comments.Count)
	if r.Comments.Count == 0 {
		b.WriteString("\nNo pull requests were created in this window.")
	} else {
		fmt.Fprintf(&b, "\nMean comments: %.2f", r.Comments.Mean)
		fmt.Fprintf(&b, "\nMin comments: %d", r.Comments.Min)
		fmt.Fprintf(&b, "\nMax comments: %d", r.Comments.Max)
	}
	if r.ReviewTime != nil {
		if r.ReviewTime.Reviewed == 0 {
			b.WriteString("\nAvg review time: no review activity found")
		} else {
			fmt.Fprintf(&b, "\nAvg review time: %.1f business hours (excluding weekends)", r.ReviewTime.MeanBusinessHours)
		}
	}
	return b.String()
}
