package constants

// GitLab API Endpoint.
const (
	// GitLabAPIEndpoint is the default GitLab API endpoint for gitlab.com.
	GitLabAPIEndpoint = "https://gitlab.com/api/v4"

	// GitLabBaseURL is the default GitLab base URL without API version.
	GitLabBaseURL = "https://gitlab.com"
)

// Pagination.
const (
	// ListPageSize is the page size used when listing group projects and subgroups.
	// GitLab caps per_page at 100.
	ListPageSize = 100
)

// GitLab API Rate Limits
//
// Forking a project and creating a group are both mutating calls that GitLab
// throttles per user. The limiter in pkg/gitlab is shared by both.
//
// References:
//   - General Rate Limits: https://docs.gitlab.com/security/rate_limits/
//   - Groups API limits: https://docs.gitlab.com/administration/settings/rate_limit_on_groups_api/
const (
	// MutationRateLimitIntervalSeconds is the time window for fork/create rate limiting.
	MutationRateLimitIntervalSeconds = 60

	// MutationRateLimitBurst is the maximum number of fork/create requests allowed per interval.
	MutationRateLimitBurst = 30
)

// Subgroup placeholders.
const (
	// SimulatedTargetPrefix prefixes the placeholder identifier of a subgroup
	// that is only simulated during a dry run.
	SimulatedTargetPrefix = "fake_subgroup_id_for_"
)
