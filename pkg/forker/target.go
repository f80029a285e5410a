package forker

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sgaunet/gitlab-forker/pkg/constants"
)

var (
	// ErrSimulatedTarget is returned when a placeholder target is about to reach the API.
	ErrSimulatedTarget = errors.New("simulated target cannot be used for a remote call")
	// ErrInvalidTarget is returned for a target holding neither a group id nor a placeholder.
	ErrInvalidTarget = errors.New("invalid target group")
)

// Target is the group receiving copied content. It is either a group that
// exists on the GitLab instance or, during a dry run, a placeholder standing
// for a subgroup that would have been created.
type Target struct {
	id          int64
	placeholder string
}

// RemoteTarget returns a target pointing at an existing group.
func RemoteTarget(groupID int64) Target {
	return Target{id: groupID}
}

// SimulatedTarget returns the placeholder target of a subgroup that is not created.
// The placeholder is derived from the subgroup name and never parses as a group id.
func SimulatedTarget(groupName string) Target {
	return Target{placeholder: constants.SimulatedTargetPrefix + groupName}
}

// Simulated reports whether the target is a dry run placeholder.
func (t Target) Simulated() bool {
	return t.placeholder != ""
}

// RemoteID returns the GitLab id of the target group.
// Placeholders have no id and yield ErrSimulatedTarget.
func (t Target) RemoteID() (int64, error) {
	if t.Simulated() {
		return 0, fmt.Errorf("%w: %s", ErrSimulatedTarget, t.placeholder)
	}
	if t.id <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTarget, t.id)
	}
	return t.id, nil
}

func (t Target) String() string {
	if t.Simulated() {
		return t.placeholder
	}
	return strconv.FormatInt(t.id, 10)
}
