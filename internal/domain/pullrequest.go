// Package domain contains the core data structures and domain logic for the
// application.
package domain

import "time"

// PullRequest is one pull request opened within the analysis window. It is
// constructed transiently while paging the listing endpoint; once its comment
// count has been recorded it carries no further state.
type PullRequest struct {
	Number    int
	CreatedAt time.Time
}
