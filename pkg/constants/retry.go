package constants

// Retry policy defaults applied to fork and subgroup creation calls.
const (
	// DefaultMaxRetries is the number of attempts made before giving up.
	DefaultMaxRetries = 3

	// DefaultRetryDelaySeconds is the fixed delay between two attempts.
	DefaultRetryDelaySeconds = 3

	// MaxRetryDelaySeconds bounds the configurable delay (typos in config).
	MaxRetryDelaySeconds = 600
)
