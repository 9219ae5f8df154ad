// Package cmd contains the CLI entry point for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/oss-insights/pr-comment-stats/internal/domain"
	"github.com/oss-insights/pr-comment-stats/internal/gateway"
	"github.com/oss-insights/pr-comment-stats/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "pr-comment-stats",
	Short: "Reports comment statistics for a repository's recent pull requests",
	Long: `pr-comment-stats fetches the pull requests opened in a GitHub repository
during the previous calendar month (or an explicit date range) and reports
the mean, minimum and maximum number of comments per pull request.

The report is written to standard output as stable plain text so that the
surrounding automation can append it to a Markdown report verbatim.`,
	Run: runAnalysis,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().String("repo", "", "GitHub repository URL (e.g. https://github.com/owner/repo)")
	rootCmd.Flags().String("token", "", "GitHub access token (falls back to the GITHUB_TOKEN environment variable)")
	rootCmd.Flags().String("start-date", "", "Start date in YYYY-MM-DD format (requires --end-date)")
	rootCmd.Flags().String("end-date", "", "End date in YYYY-MM-DD format, inclusive (requires --start-date)")
	rootCmd.Flags().String("reference-date", "", "Analyze the month preceding this date instead of today (YYYY-MM-DD)")
	rootCmd.Flags().Bool("review-time", false, "Also report the mean time to first review in business hours")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.MarkFlagRequired("repo")
	rootCmd.MarkFlagsRequiredTogether("start-date", "end-date")
	rootCmd.MarkFlagsMutuallyExclusive("start-date", "reference-date")
}

func runAnalysis(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	// The logger writes to standard error so report text on standard output
	// stays clean. The token itself is never logged.
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose {
		logger.SetOutput(os.Stderr)
	}

	repoURL, _ := cmd.Flags().GetString("repo")
	repo, err := domain.ParseRepoURL(repoURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	token, _ := cmd.Flags().GetString("token")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	window, err := resolveWindow(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reviewTime, _ := cmd.Flags().GetBool("review-time")

	githubGateway, err := gateway.NewGitHubGateway(token, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
		os.Exit(1)
	}
	analyzer := usecase.NewAnalyzer(githubGateway, logger)

	report, err := analyzer.Analyze(ctx, repo, window, reviewTime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to analyze pull requests: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(report)
}

// resolveWindow picks the explicit --start-date/--end-date range when given,
// otherwise the previous calendar month relative to --reference-date or the
// current wall clock.
func resolveWindow(cmd *cobra.Command) (domain.TimeWindow, error) {
	startStr, _ := cmd.Flags().GetString("start-date")
	endStr, _ := cmd.Flags().GetString("end-date")
	if startStr != "" {
		return domain.ParseDateWindow(startStr, endStr)
	}
	ref := time.Now().UTC()
	if refStr, _ := cmd.Flags().GetString("reference-date"); refStr != "" {
		parsed, err := domain.ParseDate(refStr)
		if err != nil {
			return domain.TimeWindow{}, err
		}
		ref = parsed
	}
	return domain.PreviousMonth(ref), nil
}
