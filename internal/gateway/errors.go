package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v62/github"
)

// Sentinel errors distinguishing the failure kinds a caller may want to
// report differently. All API failures abort the run; none are retried here.
var (
	ErrAuth        = errors.New("github: authentication failed")
	ErrRateLimited = errors.New("github: rate limit exceeded")
	ErrNotFound    = errors.New("github: repository not found")
	ErrBadResponse = errors.New("github: unexpected response")
)

// classifyRESTError maps go-github's typed errors onto the gateway sentinels.
// Anything unrecognized (DNS, TLS, timeouts) passes through as the transport
// error it is.
func classifyRESTError(err error) error {
	if err == nil {
		return nil
	}
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrAuth, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return err
}
