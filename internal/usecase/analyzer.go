// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/oss-insights/pr-comment-stats/internal/domain"
	"github.com/oss-insights/pr-comment-stats/internal/gateway"
)

// maxLookupWorkers bounds the concurrent per-PR lookups.
const maxLookupWorkers = 10

// Analyzer is the use case that produces comment statistics for the pull
// requests opened in a time window. It orchestrates the listing sweep, the
// per-PR lookups and the aggregation.
type Analyzer struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer(fetcher gateway.Fetcher, logger *log.Logger) *Analyzer {
	return &Analyzer{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Analyze performs the main business logic: list the pull requests created
// within the window, look up each one's comment count (and, when requested,
// its first review activity), and summarize. Any lookup failure aborts the
// run; accumulated partial data is discarded rather than reported.
func (a *Analyzer) Analyze(ctx context.Context, repo domain.Repo, window domain.TimeWindow, includeReviewTime bool) (*domain.Report, error) {
	a.logger.Printf("Usecase: analyzing %s for %s...", repo, window)

	prs, err := a.fetcher.FetchPullRequests(ctx, repo, window)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{Repo: repo, Window: window}
	if len(prs) == 0 {
		if includeReviewTime {
			report.ReviewTime = &domain.ReviewTimeStats{}
		}
		a.logger.Println("Usecase: no pull requests in window.")
		return report, nil
	}

	// Results are written by index so the bounded concurrency cannot
	// reorder them.
	counts := make([]int, len(prs))
	reviewHours := make([]float64, len(prs))
	reviewed := make([]bool, len(prs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxLookupWorkers)
	for i, pr := range prs {
		i, pr := i, pr
		eg.Go(func() error {
			count, err := a.fetcher.FetchCommentCount(egCtx, repo, pr.Number)
			if err != nil {
				return err
			}
			counts[i] = count
			if !includeReviewTime {
				return nil
			}
			first, ok, err := a.fetcher.FetchFirstReviewActivity(egCtx, repo, pr.Number)
			if err != nil {
				return err
			}
			if ok {
				reviewed[i] = true
				reviewHours[i] = domain.BusinessHours(pr.CreatedAt, first)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	summary, err := domain.SummarizeComments(counts)
	if err != nil {
		return nil, err
	}
	report.Comments = summary

	if includeReviewTime {
		rt := &domain.ReviewTimeStats{}
		var total float64
		for i := range prs {
			if reviewed[i] {
				rt.Reviewed++
				total += reviewHours[i]
			}
		}
		if rt.Reviewed > 0 {
			rt.MeanBusinessHours = total / float64(rt.Reviewed)
		}
		report.ReviewTime = rt
	}

	a.logger.Printf("Usecase: analysis complete; %d pull requests summarized.", summary.Count)
	return report, nil
}
