// Package main provides the gitlab-forker command-line tool copying a GitLab group into another group.
// Copyright (C) 2021  Sylvain Gaunet

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sgaunet/gitlab-forker/pkg/app"
	"github.com/sgaunet/gitlab-forker/pkg/config"
)

var version = "development"

var errInvalidFlag = errors.New("invalid flag")

// cliFlags holds command-line flag values.
type cliFlags struct {
	gitlabURL     string
	privateToken  string
	sourceGroupID int64
	targetGroupID int64
	sourceSet     bool
	targetSet     bool
	dryRun        bool
	maxRetries    int
	retryDelay    int
	reportDir     string
}

func printVersion() {
	fmt.Println(version)
}

func printConfiguration() {
	c, err := config.NewConfigFromEnv()
	if err != nil {
		c = &config.Config{}
	}
	c.Usage()

	fmt.Println("--------------------------------------------------")
	fmt.Println("Gitlab-forker configuration:")
	fmt.Print(c.Redacted())
	os.Exit(0)
}

func loadConfiguration(cfgFile string) (*config.Config, error) {
	if len(cfgFile) > 0 {
		// CLI overrides may still fix the file, validation comes later
		cfg, err := config.NewConfigFromFileNoValidate(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}
	return cfg, nil
}

// validateCliFlags rejects group ids given explicitly on the command line
// that can never be valid.
func validateCliFlags(flags cliFlags) error {
	if flags.sourceSet && flags.sourceGroupID <= 0 {
		return fmt.Errorf("%w: --source-group-id must be positive, got %d", errInvalidFlag, flags.sourceGroupID)
	}
	if flags.targetSet && flags.targetGroupID <= 0 {
		return fmt.Errorf("%w: --target-group-id must be positive, got %d", errInvalidFlag, flags.targetGroupID)
	}
	return nil
}

// applyCliOverrides applies command-line flag values to the configuration.
func applyCliOverrides(cfg *config.Config, flags cliFlags) {
	if flags.gitlabURL != "" {
		cfg.GitlabURI = flags.gitlabURL
	}
	if flags.privateToken != "" {
		cfg.GitlabToken = flags.privateToken
	}
	if flags.sourceSet {
		cfg.SourceGroupID = flags.sourceGroupID
	}
	if flags.targetSet {
		cfg.TargetGroupID = flags.targetGroupID
	}
	if flags.dryRun {
		cfg.DryRun = true
	}

	// -1 is the sentinel for "not set"
	if flags.maxRetries >= 0 {
		cfg.MaxRetries = flags.maxRetries
	}
	if flags.retryDelay >= 0 {
		cfg.RetryDelaySecs = flags.retryDelay
	}

	if flags.reportDir != "" {
		cfg.LocalPath = flags.reportDir
	}
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gitlab-forker [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Copy every project (as a fork) and subgroup of a GitLab group into another group\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEXAMPLES:\n")
		fmt.Fprintf(os.Stderr, "  # Show what would be copied\n")
		fmt.Fprintf(os.Stderr, "  gitlab-forker --gitlab-url https://gitlab.com --private-token xxx \\\n")
		fmt.Fprintf(os.Stderr, "    --source-group-id 123 --target-group-id 456 --dry-run\n\n")
		fmt.Fprintf(os.Stderr, "  # Copy and keep a report of the run\n")
		fmt.Fprintf(os.Stderr, "  gitlab-forker -c config.yaml --report-dir /var/log/forker\n\n")
		fmt.Fprintf(os.Stderr, "  # Be patient with a busy instance\n")
		fmt.Fprintf(os.Stderr, "  gitlab-forker -c config.yaml --max-retries 5 --retry-delay 10\n\n")
		fmt.Fprintf(os.Stderr, "CONFIGURATION PRECEDENCE:\n")
		fmt.Fprintf(os.Stderr, "  CLI flags > Environment variables > Config file\n\n")
		fmt.Fprintf(os.Stderr, "REQUIRED SETTINGS:\n")
		fmt.Fprintf(os.Stderr, "  - GitLab Token: --private-token, GITLAB_TOKEN env var or gitlabToken in config\n")
		fmt.Fprintf(os.Stderr, "  - Groups: --source-group-id and --target-group-id (or in config/env)\n")
	}
}

//nolint:funlen // Main function complexity is acceptable for CLI entry point
func main() {
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	flag.StringVar(configFile, "c", "", "Path to configuration file (YAML) (shorthand)")

	gitlabURL := flag.String("gitlab-url", "", "GitLab instance URL (default: https://gitlab.com)")
	privateToken := flag.String("private-token", "", "GitLab private token (default: GITLAB_TOKEN)")
	sourceGroupID := flag.Int64("source-group-id", 0, "ID of the group to copy from")
	targetGroupID := flag.Int64("target-group-id", 0, "ID of the group to copy into")
	dryRun := flag.Bool("dry-run", false, "Show what would be done without actually performing any operations")
	maxRetries := flag.Int("max-retries", -1, "Attempts for each fork and subgroup creation (default: 3)")
	retryDelay := flag.Int("retry-delay", -1, "Seconds between two attempts (default: 3)")
	reportDir := flag.String("report-dir", "", "Directory where the run report is saved")

	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.BoolVar(showVersion, "v", false, "Show version and exit (shorthand)")
	showHelp := flag.Bool("help", false, "Show help and exit")
	flag.BoolVar(showHelp, "h", false, "Show help and exit (shorthand)")
	printCfg := flag.Bool("cfg", false, "Print configuration and exit")

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *printCfg {
		printConfiguration()
	}

	cfg, err := loadConfiguration(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	flags := cliFlags{
		gitlabURL:     *gitlabURL,
		privateToken:  *privateToken,
		sourceGroupID: *sourceGroupID,
		targetGroupID: *targetGroupID,
		dryRun:        *dryRun,
		maxRetries:    *maxRetries,
		retryDelay:    *retryDelay,
		reportDir:     *reportDir,
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source-group-id":
			flags.sourceSet = true
		case "target-group-id":
			flags.targetSet = true
		}
	})
	if err := validateCliFlags(flags); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	applyCliOverrides(cfg, flags)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation failed: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, redactCredentials(err.Error(), cfg))
		os.Exit(1) //nolint:gocritic // stop is only a signal unregistration
	}

	l := initTrace(os.Getenv("DEBUGLEVEL"), cfg.NoLogTime)
	a.SetLogger(l)
	if err := a.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", redactCredentials(err.Error(), cfg))
		os.Exit(1) //nolint:gocritic // stop is only a signal unregistration
	}
}
