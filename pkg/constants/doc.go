// Package constants provides centralized configuration constants for the gitlab-forker project.
//
// This package consolidates the hard-coded values, limits and defaults used
// across the codebase into a single source of truth.
//
// Organization:
//   - gitlab.go: GitLab API constants (endpoints, pagination, rate limits)
//   - retry.go: retry policy defaults
//   - validation.go: validation constraints (AWS limits, redaction)
//   - output.go: CLI output formatting constants
//
// Most constants mirror external API limits (GitLab, AWS). Check the
// documentation comment of a constant before changing it.
package constants
