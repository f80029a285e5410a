package forker

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ActionKind identifies what the copier is doing.
type ActionKind string

const (
	// KindCopyGroup is the copy of a group's content into a target.
	KindCopyGroup ActionKind = "copy-group"
	// KindForkProject is the fork of a project into a target namespace.
	KindForkProject ActionKind = "fork-project"
	// KindCreateSubgroup is the creation of a subgroup under a target.
	KindCreateSubgroup ActionKind = "create-subgroup"
)

// ActionStatus tells where an action stands.
type ActionStatus string

const (
	// StatusPlanned is used for every action of a dry run.
	StatusPlanned ActionStatus = "planned"
	// StatusStarted is reported right before a remote call.
	StatusStarted ActionStatus = "started"
	// StatusDone is reported once the remote call succeeded.
	StatusDone ActionStatus = "done"
	// StatusFailed is reported when the remote call gave up.
	StatusFailed ActionStatus = "failed"
)

// Action is one step of a copy.
type Action struct {
	Kind   ActionKind   `yaml:"kind"`
	Status ActionStatus `yaml:"status"`
	// Source is the full path of the copied group or project.
	Source string `yaml:"source"`
	// Target is the id, or placeholder, of the receiving group.
	Target string `yaml:"target"`
	// ResultID is the id of the fork or of the created subgroup.
	ResultID int64  `yaml:"resultID,omitempty"`
	Error    string `yaml:"error,omitempty"`
	DryRun   bool   `yaml:"dryRun"`
}

// Message returns the human readable notice of the action.
func (a Action) Message() string {
	if a.DryRun {
		switch a.Kind {
		case KindCopyGroup:
			return fmt.Sprintf("[DRY RUN] Would copy contents from %s to group ID %s", a.Source, a.Target)
		case KindForkProject:
			return fmt.Sprintf("[DRY RUN] Would fork project %s to group ID %s", a.Source, a.Target)
		case KindCreateSubgroup:
			return fmt.Sprintf("[DRY RUN] Would create subgroup %s in target group ID %s", a.Source, a.Target)
		}
		return fmt.Sprintf("[DRY RUN] %s %s -> %s", a.Kind, a.Source, a.Target)
	}
	switch a.Kind {
	case KindCopyGroup:
		return fmt.Sprintf("Copying contents from %s to group ID %s", a.Source, a.Target)
	case KindForkProject:
		return fmt.Sprintf("Forking project %s to group ID %s", a.Source, a.Target)
	case KindCreateSubgroup:
		return fmt.Sprintf("Creating subgroup %s in target group ID %s", a.Source, a.Target)
	}
	return fmt.Sprintf("%s %s -> %s", a.Kind, a.Source, a.Target)
}

// Reporter receives every action of a copy, in traversal order.
type Reporter interface {
	Report(a Action)
}

// Reporters fans an action out to several reporters.
type Reporters []Reporter

// Report forwards the action to every reporter.
func (rs Reporters) Report(a Action) {
	for _, r := range rs {
		if r != nil {
			r.Report(a)
		}
	}
}

// ConsoleReporter logs the notice of each action.
type ConsoleReporter struct {
	logger Logger
}

// NewConsoleReporter creates a reporter writing to the given logger.
func NewConsoleReporter(logger Logger) *ConsoleReporter {
	return &ConsoleReporter{logger: logger}
}

// Report logs the action.
func (r *ConsoleReporter) Report(a Action) {
	switch a.Status {
	case StatusPlanned, StatusStarted:
		r.logger.Info(a.Message())
	case StatusDone:
		r.logger.Debug("done", "kind", a.Kind, "source", a.Source, "target", a.Target, "id", a.ResultID)
	case StatusFailed:
		r.logger.Error("failed", "kind", a.Kind, "source", a.Source, "target", a.Target, "error", a.Error)
	}
}

// Summary counts what a run did, or would have done.
type Summary struct {
	ProjectsForked   int `yaml:"projectsForked"`
	SubgroupsCreated int `yaml:"subgroupsCreated"`
	Failures         int `yaml:"failures"`
}

// Report keeps the full history of a run so it can be saved once the run ends.
type Report struct {
	SourceGroup string    `yaml:"sourceGroup"`
	TargetGroup int64     `yaml:"targetGroup"`
	DryRun      bool      `yaml:"dryRun"`
	StartedAt   time.Time `yaml:"startedAt"`
	FinishedAt  time.Time `yaml:"finishedAt,omitempty"`
	Summary     Summary   `yaml:"summary"`
	Actions     []Action  `yaml:"actions"`
	Error       string    `yaml:"error,omitempty"`
}

// NewReport starts the report of a run copying sourceGroup into targetGroup.
func NewReport(sourceGroup string, targetGroup int64, dryRun bool) *Report {
	return &Report{
		SourceGroup: sourceGroup,
		TargetGroup: targetGroup,
		DryRun:      dryRun,
		StartedAt:   time.Now(),
	}
}

// Report records the action and updates the summary.
func (r *Report) Report(a Action) {
	r.Actions = append(r.Actions, a)
	switch {
	case a.Status == StatusFailed:
		r.Summary.Failures++
	case a.Status == StatusDone || (a.Status == StatusPlanned && a.DryRun):
		switch a.Kind {
		case KindForkProject:
			r.Summary.ProjectsForked++
		case KindCreateSubgroup:
			r.Summary.SubgroupsCreated++
		}
	}
}

// Finish closes the report, recording err when the run failed.
func (r *Report) Finish(err error) {
	r.FinishedAt = time.Now()
	if err != nil {
		r.Error = err.Error()
	}
}

// Notices returns the notice of every planned or started action, in order.
func (r *Report) Notices() []string {
	var res []string
	for _, a := range r.Actions {
		if a.Status == StatusPlanned || a.Status == StatusStarted {
			res = append(res, a.Message())
		}
	}
	return res
}

// YAML encodes the report.
func (r *Report) YAML() ([]byte, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return out, nil
}
