// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/gregjones/httpcache"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/oss-insights/pr-comment-stats/internal/domain"
)

// requestTimeout bounds each API call so a stalled connection fails the run
// instead of hanging it.
const requestTimeout = 30 * time.Second

// secondarySleepLimit caps how long the rate-limit waiter may sleep through a
// secondary rate limit. It must stay under requestTimeout because the sleep
// happens inside the request round trip; longer throttles surface as
// rate-limit errors and fail the run.
const secondarySleepLimit = 20 * time.Second

// Fetcher defines the behavior of a gateway for fetching pull request
// information from GitHub.
type Fetcher interface {
	// FetchPullRequests returns the pull requests created within the window.
	FetchPullRequests(ctx context.Context, repo domain.Repo, window domain.TimeWindow) ([]domain.PullRequest, error)
	// FetchCommentCount returns the discussion comment count of one pull request.
	FetchCommentCount(ctx context.Context, repo domain.Repo, number int) (int, error)
	// FetchFirstReviewActivity returns the timestamp of the earliest review
	// comment or review on a pull request. The boolean is false when the
	// pull request has neither.
	FetchFirstReviewActivity(ctx context.Context, repo domain.Repo, number int) (time.Time, bool, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

var _ Fetcher = (*GitHubGateway)(nil)

// prCommentsQuery fetches the discussion comment count for a single pull request.
type prCommentsQuery struct {
	Repository struct {
		PullRequest struct {
			Comments struct {
				TotalCount int
			}
		} `graphql:"pullRequest(number: $number)"`
	} `graphql:"repository(owner: $owner, name: $name)"`
}

// NewGitHubGateway creates a gateway whose HTTP stack is, outermost first:
// oauth2 token injection (skipped when the token is empty, degrading to
// unauthenticated access), an in-memory ETag cache, and a secondary
// rate-limit waiter that sleeps through short throttles.
func NewGitHubGateway(token string, logger *log.Logger) (*GitHubGateway, error) {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	waiter, err := github_ratelimit.NewRateLimitWaiter(cacheTransport, github_ratelimit.WithSingleSleepLimit(secondarySleepLimit, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	var transport http.RoundTripper = waiter
	if token != "" {
		transport = &oauth2.Transport{
			Base:   waiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	httpClient := &http.Client{
		Transport: transport,
		Timeout:   requestTimeout,
	}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// FetchPullRequests pages through the repository's pull request listing,
// sorted by creation time descending, and keeps the pull requests created
// within the window. Because the sort is monotone, paging stops at the first
// item that precedes the window start; no further pages are requested.
func (g *GitHubGateway) FetchPullRequests(ctx context.Context, repo domain.Repo, window domain.TimeWindow) ([]domain.PullRequest, error) {
	g.logger.Printf("Fetching pull requests for %s created %s...", repo, window)
	opts := &github.PullRequestListOptions{
		State:       "all",
		Sort:        "created",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	var prs []domain.PullRequest
	for {
		page, resp, err := g.restClient.PullRequests.List(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests for %s: %w", repo, classifyRESTError(err))
		}
		for _, pr := range page {
			created := pr.GetCreatedAt().Time
			if window.PrecedesStart(created) {
				g.logger.Printf("Reached pull requests older than the window; stopping with %d in-window PRs.", len(prs))
				return prs, nil
			}
			if window.Contains(created) {
				prs = append(prs, domain.PullRequest{Number: pr.GetNumber(), CreatedAt: created})
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Println("  Fetching next page of pull requests...")
	}
	g.logger.Printf("Completed listing; %d pull requests in window.", len(prs))
	return prs, nil
}

// FetchCommentCount looks up the discussion comment count of one pull
// request with a single GraphQL query.
func (g *GitHubGateway) FetchCommentCount(ctx context.Context, repo domain.Repo, number int) (int, error) {
	variables := map[string]interface{}{
		"owner":  githubv4.String(repo.Owner),
		"name":   githubv4.String(repo.Name),
		"number": githubv4.Int(number),
	}
	var q prCommentsQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return 0, fmt.Errorf("failed to fetch comment count for PR #%d: %w", number, err)
	}
	return q.Repository.PullRequest.Comments.TotalCount, nil
}

// FetchFirstReviewActivity finds the earliest of the pull request's first
// review comment and first submitted review.
func (g *GitHubGateway) FetchFirstReviewActivity(ctx context.Context, repo domain.Repo, number int) (time.Time, bool, error) {
	commentOpts := &github.PullRequestListCommentsOptions{
		Sort:        "created",
		Direction:   "asc",
		ListOptions: github.ListOptions{PerPage: 1},
	}
	comments, _, err := g.restClient.PullRequests.ListComments(ctx, repo.Owner, repo.Name, number, commentOpts)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to list review comments for PR #%d: %w", number, classifyRESTError(err))
	}
	var earliest time.Time
	var found bool
	if len(comments) > 0 {
		earliest = comments[0].GetCreatedAt().Time
		found = true
	}
	reviews, _, err := g.restClient.PullRequests.ListReviews(ctx, repo.Owner, repo.Name, number, &github.ListOptions{PerPage: 100})
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to list reviews for PR #%d: %w", number, classifyRESTError(err))
	}
	for _, review := range reviews {
		submitted := review.GetSubmittedAt().Time
		if submitted.IsZero() {
			continue // Pending reviews have no submission time.
		}
		if !found || submitted.Before(earliest) {
			earliest = submitted
			found = true
		}
	}
	return earliest, found, nil
}
