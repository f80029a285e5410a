// Package config provides configuration management for the GitLab group forker.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sgaunet/gitlab-forker/pkg/constants"
	"github.com/sgaunet/gitlab-forker/pkg/hooks"
	"github.com/sgaunet/gitlab-forker/pkg/retry"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingToken is returned when no GitLab token is configured.
	ErrMissingToken = errors.New("gitlab token is required")
	// ErrInvalidGroupID is returned when a source or target group id is not positive.
	ErrInvalidGroupID = errors.New("invalid group id")
	// ErrInvalidURI is returned when the GitLab URI is not an http(s) URL.
	ErrInvalidURI = errors.New("invalid gitlab URI")
	// ErrInvalidRetry is returned when the retry settings are out of range.
	ErrInvalidRetry = errors.New("invalid retry configuration")
	// ErrInvalidS3Config is returned when the S3 section is incomplete or malformed.
	ErrInvalidS3Config = errors.New("invalid S3 configuration")
	// ErrPathTraversal is returned when a path contains '..' elements.
	ErrPathTraversal = errors.New("path traversal detected")
)

// S3Config holds the configuration for S3 storage backend.
type S3Config struct {
	Endpoint   string `env:"S3ENDPOINT"            env-default:""   yaml:"endpoint"`
	BucketName string `env:"S3BUCKETNAME"          env-default:""   yaml:"bucketName"`
	BucketPath string `env:"S3BUCKETPATH"          env-default:""   yaml:"bucketPath"`
	Region     string `env:"S3REGION"              env-default:""   yaml:"region"`
	AccessKey  string `env:"AWS_ACCESS_KEY_ID"     yaml:"accessKey"`
	SecretKey  string `env:"AWS_SECRET_ACCESS_KEY" yaml:"secretKey"`
}

// Config holds the application configuration.
type Config struct {
	GitlabToken    string      `env:"GITLAB_TOKEN"    env-default:""                   yaml:"gitlabToken"`
	GitlabURI      string      `env:"GITLAB_URI"      env-default:"https://gitlab.com" yaml:"gitlabURI"`
	SourceGroupID  int64       `env:"SOURCE_GROUP_ID" env-default:"0"                  yaml:"sourceGroupID"`
	TargetGroupID  int64       `env:"TARGET_GROUP_ID" env-default:"0"                  yaml:"targetGroupID"`
	DryRun         bool        `env:"DRY_RUN"         env-default:"false"              yaml:"dryRun"`
	MaxRetries     int         `env:"MAX_RETRIES"     env-default:"3"                  yaml:"maxRetries"`
	RetryDelaySecs int         `env:"RETRY_DELAY_SEC" env-default:"3"                  yaml:"retryDelaySec"`
	LocalPath      string      `env:"LOCALPATH"       env-default:""                   yaml:"localpath"`
	Hooks          hooks.Hooks `yaml:"hooks"`
	S3cfg          S3Config    `yaml:"s3cfg"`
	NoLogTime      bool        `env:"NOLOGTIME"       env-default:"false"              yaml:"noLogTime"`
}

// NewConfigFromFile returns a new validated Config struct from the given file.
// Values missing from the file are taken from the environment.
func NewConfigFromFile(filePath string) (*Config, error) {
	cfg, err := NewConfigFromFileNoValidate(filePath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewConfigFromFileNoValidate reads the file without validating it, so that
// command line overrides can be applied first.
func NewConfigFromFileNoValidate(filePath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(filePath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from file %s: %w", filePath, err)
	}
	return &cfg, nil
}

// NewConfigFromEnv returns a new Config struct from the environment variables.
func NewConfigFromEnv() (*Config, error) {
	var cfg Config
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if c.GitlabToken == "" {
		return ErrMissingToken
	}
	if !strings.HasPrefix(c.GitlabURI, "http://") && !strings.HasPrefix(c.GitlabURI, "https://") {
		return fmt.Errorf("%w: %q", ErrInvalidURI, c.GitlabURI)
	}
	if c.SourceGroupID <= 0 {
		return fmt.Errorf("%w: source group id %d", ErrInvalidGroupID, c.SourceGroupID)
	}
	if c.TargetGroupID <= 0 {
		return fmt.Errorf("%w: target group id %d", ErrInvalidGroupID, c.TargetGroupID)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("%w: maxRetries must be at least 1, got %d", ErrInvalidRetry, c.MaxRetries)
	}
	if c.RetryDelaySecs < 0 || c.RetryDelaySecs > constants.MaxRetryDelaySeconds {
		return fmt.Errorf("%w: retryDelaySec must be between 0 and %d, got %d",
			ErrInvalidRetry, constants.MaxRetryDelaySeconds, c.RetryDelaySecs)
	}
	if c.LocalPath != "" {
		if err := validatePath(c.LocalPath, "localpath"); err != nil {
			return err
		}
	}
	if c.IsS3ConfigValid() {
		return c.validateS3()
	}
	return nil
}

func (c *Config) validateS3() error {
	name := c.S3cfg.BucketName
	if len(name) < constants.S3BucketNameMinLength || len(name) > constants.S3BucketNameMaxLength {
		return fmt.Errorf("%w: bucket name must be between %d and %d characters, got %q",
			ErrInvalidS3Config, constants.S3BucketNameMinLength, constants.S3BucketNameMaxLength, name)
	}
	if c.S3cfg.Endpoint != "" &&
		!strings.HasPrefix(c.S3cfg.Endpoint, "http://") && !strings.HasPrefix(c.S3cfg.Endpoint, "https://") {
		return fmt.Errorf("%w: endpoint must start with http:// or https://, got %q", ErrInvalidS3Config, c.S3cfg.Endpoint)
	}
	return nil
}

func validatePath(p, field string) error {
	for _, elem := range strings.Split(filepath.ToSlash(p), "/") {
		if elem == ".." {
			return fmt.Errorf("%w in %s: %s", ErrPathTraversal, field, p)
		}
	}
	return nil
}

// IsS3ConfigValid returns true if an S3 destination is configured.
func (c *Config) IsS3ConfigValid() bool {
	return len(c.S3cfg.BucketName) > 0 && len(c.S3cfg.Region) > 0
}

// IsLocalConfigValid returns true if a local report directory is configured.
func (c *Config) IsLocalConfigValid() bool {
	return len(c.LocalPath) > 0
}

// HasReportStorage returns true when the run report has somewhere to go.
func (c *Config) HasReportStorage() bool {
	return c.IsS3ConfigValid() || c.IsLocalConfigValid()
}

// GitlabAPIEndpoint returns the v4 API endpoint of the configured instance.
func (c *Config) GitlabAPIEndpoint() string {
	return strings.TrimSuffix(c.GitlabURI, "/") + "/api/v4"
}

// RetryDelay returns the delay between two attempts.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySecs) * time.Second
}

// RetryPolicy returns the retry policy applied to fork and create calls.
func (c *Config) RetryPolicy() retry.Policy {
	return retry.NewPolicy(c.MaxRetries, c.RetryDelay())
}

func (c *Config) String() string {
	cyaml, err := yaml.Marshal(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return string(cyaml)
}

// Redacted returns a YAML representation of the config with sensitive fields redacted.
func (c *Config) Redacted() string {
	redacted := *c
	if redacted.GitlabToken != "" {
		redacted.GitlabToken = constants.RedactedValue
	}
	if redacted.S3cfg.AccessKey != "" {
		redacted.S3cfg.AccessKey = constants.RedactedValue
	}
	if redacted.S3cfg.SecretKey != "" {
		redacted.S3cfg.SecretKey = constants.RedactedValue
	}
	cyaml, err := yaml.Marshal(redacted)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return string(cyaml)
}

// Usage prints the usage of the config.
func (c *Config) Usage() {
	f := cleanenv.Usage(c, nil)
	f()
}
