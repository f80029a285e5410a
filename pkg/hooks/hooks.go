// Package hooks provides pre and post copy hook functionality.
package hooks

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/go-andiamo/splitter"
)

const (
	sourcePlaceholder = "%SOURCE%"
	targetPlaceholder = "%TARGET%"
)

// Hooks holds the configuration for pre and post copy hooks.
// %SOURCE% and %TARGET% are replaced with the group ids.
type Hooks struct {
	PreCopy  string `env:"PRECOPY"  env-default:"" yaml:"precopy"`
	PostCopy string `env:"POSTCOPY" env-default:"" yaml:"postcopy"`
}

// GeneratePreCopyCmd generates the pre copy command.
func (h *Hooks) GeneratePreCopyCmd(source, target string) string {
	return expand(h.PreCopy, source, target)
}

// GeneratePostCopyCmd generates the post copy command.
func (h *Hooks) GeneratePostCopyCmd(source, target string) string {
	return expand(h.PostCopy, source, target)
}

// HasPreCopy returns true if a pre copy command is defined.
func (h *Hooks) HasPreCopy() bool {
	return h.PreCopy != ""
}

// HasPostCopy returns true if a post copy command is defined.
func (h *Hooks) HasPostCopy() bool {
	return h.PostCopy != ""
}

// ExecutePreCopy executes the pre copy command.
func (h *Hooks) ExecutePreCopy(ctx context.Context, source, target string) error {
	return execute(ctx, h.GeneratePreCopyCmd(source, target))
}

// ExecutePostCopy executes the post copy command.
func (h *Hooks) ExecutePostCopy(ctx context.Context, source, target string) error {
	return execute(ctx, h.GeneratePostCopyCmd(source, target))
}

func expand(command, source, target string) string {
	return strings.NewReplacer(sourcePlaceholder, source, targetPlaceholder, target).Replace(command)
}

// execute executes the given command.
func execute(ctx context.Context, command string) error {
	if command == "" {
		return nil
	}
	commandSplitter, err := splitter.NewSplitter(' ', splitter.SingleQuotes, splitter.DoubleQuotes)
	if err != nil {
		return fmt.Errorf("failed to create command splitter: %w", err)
	}
	trimmer := splitter.Trim("'\"")
	splitCmd, err := commandSplitter.Split(command, trimmer)
	if err != nil {
		return fmt.Errorf("failed to parse command '%s': %w", command, err)
	}
	if len(splitCmd) == 0 {
		return nil
	}
	//nolint:gosec // G204: Command execution with user input is intentional for hook functionality
	out, err := exec.CommandContext(ctx, splitCmd[0], splitCmd[1:]...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to execute %s: %w (output: %s)", command, err, strings.TrimSpace(string(out)))
	}
	return nil
}
