// Package gitlab provides GitLab API client functionality.
package gitlab

import (
	"errors"
)

var (
	// ErrRateLimit is returned when waiting on the API rate limiter fails.
	ErrRateLimit = errors.New("rate limit wait failed")
	// ErrAuthentication is returned when the token cannot be used to identify a user.
	ErrAuthentication = errors.New("authentication failed")
	// ErrEmptyResponse is returned when GitLab answers without an object.
	ErrEmptyResponse = errors.New("empty response from Gitlab API")
	// ErrInvalidEndpoint is returned when the GitLab endpoint cannot be used.
	ErrInvalidEndpoint = errors.New("invalid Gitlab endpoint")
)
