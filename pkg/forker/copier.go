// Package forker copies the content of a GitLab group into another group:
// projects are forked, subgroups are re-created and walked recursively.
package forker

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sgaunet/gitlab-forker/pkg/retry"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

// Logger interface defines the logging methods used by the copier.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

// API is the part of the GitLab API the copier relies on.
type API interface {
	GetGroup(ctx context.Context, groupID int64) (*gitlab.Group, error)
	GetProject(ctx context.Context, projectID int64) (*gitlab.Project, error)
	ListGroupProjects(ctx context.Context, groupID int64) ([]*gitlab.Project, error)
	ListSubGroups(ctx context.Context, groupID int64) ([]*gitlab.Group, error)
	ForkProject(ctx context.Context, projectID int64, namespaceID int64) (*gitlab.Project, error)
	CreateSubgroup(ctx context.Context, name string, path string, parentID int64) (*gitlab.Group, error)
}

// Copier walks a source group depth first and reproduces it under a target.
// In dry run mode it only reports what it would do.
type Copier struct {
	api      API
	policy   retry.Policy
	dryRun   bool
	reporter Reporter
}

// NewCopier creates a copier. Fork and create calls are retried with policy.
// A nil reporter logs nothing.
func NewCopier(api API, policy retry.Policy, dryRun bool, reporter Reporter) *Copier {
	if reporter == nil {
		reporter = NewConsoleReporter(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}
	return &Copier{
		api:      api,
		policy:   policy,
		dryRun:   dryRun,
		reporter: reporter,
	}
}

// DryRun reports whether the copier runs without touching the target.
func (c *Copier) DryRun() bool {
	return c.dryRun
}

// CopyGroup forks every direct project of source into target, then creates
// each subgroup under target and copies it recursively.
// Projects of a group are handled before its subgroups, in listing order.
// The first failure stops the whole walk and is returned.
func (c *Copier) CopyGroup(ctx context.Context, source *gitlab.Group, target Target) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("copy of %s interrupted: %w", source.FullPath, err)
	}
	c.reporter.Report(Action{
		Kind:   KindCopyGroup,
		Status: c.noticeStatus(),
		Source: source.FullPath,
		Target: target.String(),
		DryRun: c.dryRun,
	})

	projects, err := c.api.ListGroupProjects(ctx, int64(source.ID))
	if err != nil {
		return fmt.Errorf("copy of %s: %w", source.FullPath, err)
	}
	for _, p := range projects {
		project, err := c.api.GetProject(ctx, int64(p.ID))
		if err != nil {
			return fmt.Errorf("copy of %s: %w", source.FullPath, err)
		}
		if _, err := c.forkProject(ctx, project, target); err != nil {
			return err
		}
	}

	subgroups, err := c.api.ListSubGroups(ctx, int64(source.ID))
	if err != nil {
		return fmt.Errorf("copy of %s: %w", source.FullPath, err)
	}
	for _, sg := range subgroups {
		subgroup, err := c.api.GetGroup(ctx, int64(sg.ID))
		if err != nil {
			return fmt.Errorf("copy of %s: %w", source.FullPath, err)
		}
		newTarget, err := c.createSubgroup(ctx, subgroup, target)
		if err != nil {
			return err
		}
		if err := c.CopyGroup(ctx, subgroup, newTarget); err != nil {
			return err
		}
	}
	return nil
}

// forkProject forks project into target. A dry run returns a nil project.
func (c *Copier) forkProject(ctx context.Context, project *gitlab.Project, target Target) (*gitlab.Project, error) {
	action := Action{
		Kind:   KindForkProject,
		Status: c.noticeStatus(),
		Source: project.PathWithNamespace,
		Target: target.String(),
		DryRun: c.dryRun,
	}
	c.reporter.Report(action)
	if c.dryRun {
		return nil, nil //nolint:nilnil // nothing is created during a dry run
	}

	namespaceID, err := target.RemoteID()
	if err != nil {
		return nil, c.fail(action, fmt.Errorf("fork of %s: %w", project.PathWithNamespace, err))
	}
	fork, err := retry.Do(ctx, c.policy, func(ctx context.Context) (*gitlab.Project, error) {
		return c.api.ForkProject(ctx, int64(project.ID), namespaceID)
	})
	if err != nil {
		return nil, c.fail(action, fmt.Errorf("fork of %s: %w", project.PathWithNamespace, err))
	}

	action.Status = StatusDone
	action.ResultID = int64(fork.ID)
	c.reporter.Report(action)
	return fork, nil
}

// createSubgroup creates group under parent and returns the target standing for it.
// A dry run returns a placeholder target derived from the group name.
func (c *Copier) createSubgroup(ctx context.Context, group *gitlab.Group, parent Target) (Target, error) {
	action := Action{
		Kind:   KindCreateSubgroup,
		Status: c.noticeStatus(),
		Source: group.Name,
		Target: parent.String(),
		DryRun: c.dryRun,
	}
	c.reporter.Report(action)
	if c.dryRun {
		return SimulatedTarget(group.Name), nil
	}

	parentID, err := parent.RemoteID()
	if err != nil {
		return Target{}, c.fail(action, fmt.Errorf("creation of subgroup %s: %w", group.FullPath, err))
	}
	created, err := retry.Do(ctx, c.policy, func(ctx context.Context) (*gitlab.Group, error) {
		return c.api.CreateSubgroup(ctx, group.Name, group.Path, parentID)
	})
	if err != nil {
		return Target{}, c.fail(action, fmt.Errorf("creation of subgroup %s: %w", group.FullPath, err))
	}

	action.Status = StatusDone
	action.ResultID = int64(created.ID)
	c.reporter.Report(action)
	return RemoteTarget(int64(created.ID)), nil
}

func (c *Copier) fail(action Action, err error) error {
	action.Status = StatusFailed
	action.Error = err.Error()
	c.reporter.Report(action)
	return err
}

func (c *Copier) noticeStatus() ActionStatus {
	if c.dryRun {
		return StatusPlanned
	}
	return StatusStarted
}
