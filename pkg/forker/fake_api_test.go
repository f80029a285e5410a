package forker_test

import (
	"context"
	"errors"
	"fmt"

	gitlab "gitlab.com/gitlab-org/api/client-go"
)

var errNotFound = errors.New("404 Not Found")

// node is a group of the fake instance with its direct content.
type node struct {
	group     *gitlab.Group
	projects  []*gitlab.Project
	subgroups []*node
}

type forkCall struct {
	ProjectID   int64
	NamespaceID int64
}

type createCall struct {
	Name     string
	Path     string
	ParentID int64
}

// fakeAPI is an in-memory GitLab instance.
type fakeAPI struct {
	groups   map[int64]*node
	projects map[int64]*gitlab.Project
	nextID   int64

	forks   []forkCall
	creates []createCall

	// failFork makes the fork of the given project fail on every attempt.
	failFork map[int64]bool
	// failCreateUntil makes subgroup creation fail for the first n calls.
	failCreateUntil int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		groups:   map[int64]*node{},
		projects: map[int64]*gitlab.Project{},
		nextID:   1,
		failFork: map[int64]bool{},
	}
}

func (f *fakeAPI) id() int64 {
	id := f.nextID
	f.nextID++
	return id
}

// addGroup registers a group under parent (nil for a top level group).
func (f *fakeAPI) addGroup(parent *node, name string) *node {
	fullPath := name
	if parent != nil {
		fullPath = parent.group.FullPath + "/" + name
	}
	n := &node{group: &gitlab.Group{ID: f.id(), Name: name, Path: name, FullPath: fullPath}}
	f.groups[int64(n.group.ID)] = n
	if parent != nil {
		parent.subgroups = append(parent.subgroups, n)
	}
	return n
}

func (f *fakeAPI) addProject(parent *node, name string) *gitlab.Project {
	p := &gitlab.Project{ID: f.id(), Name: name, Path: name, PathWithNamespace: parent.group.FullPath + "/" + name}
	f.projects[int64(p.ID)] = p
	parent.projects = append(parent.projects, p)
	return p
}

func (f *fakeAPI) mutations() int {
	return len(f.forks) + len(f.creates)
}

func (f *fakeAPI) GetGroup(_ context.Context, groupID int64) (*gitlab.Group, error) {
	n, ok := f.groups[groupID]
	if !ok {
		return nil, fmt.Errorf("group %d: %w", groupID, errNotFound)
	}
	return n.group, nil
}

func (f *fakeAPI) GetProject(_ context.Context, projectID int64) (*gitlab.Project, error) {
	p, ok := f.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("project %d: %w", projectID, errNotFound)
	}
	return p, nil
}

func (f *fakeAPI) ListGroupProjects(_ context.Context, groupID int64) ([]*gitlab.Project, error) {
	n, ok := f.groups[groupID]
	if !ok {
		return nil, fmt.Errorf("group %d: %w", groupID, errNotFound)
	}
	// listings only carry ids, the copier must fetch the full record
	res := make([]*gitlab.Project, 0, len(n.projects))
	for _, p := range n.projects {
		res = append(res, &gitlab.Project{ID: p.ID})
	}
	return res, nil
}

func (f *fakeAPI) ListSubGroups(_ context.Context, groupID int64) ([]*gitlab.Group, error) {
	n, ok := f.groups[groupID]
	if !ok {
		return nil, fmt.Errorf("group %d: %w", groupID, errNotFound)
	}
	res := make([]*gitlab.Group, 0, len(n.subgroups))
	for _, sg := range n.subgroups {
		res = append(res, &gitlab.Group{ID: sg.group.ID})
	}
	return res, nil
}

func (f *fakeAPI) ForkProject(_ context.Context, projectID int64, namespaceID int64) (*gitlab.Project, error) {
	f.forks = append(f.forks, forkCall{ProjectID: projectID, NamespaceID: namespaceID})
	if f.failFork[projectID] {
		return nil, fmt.Errorf("fork of %d: 500 Internal Server Error", projectID)
	}
	if _, ok := f.groups[namespaceID]; !ok {
		return nil, fmt.Errorf("namespace %d: %w", namespaceID, errNotFound)
	}
	return &gitlab.Project{ID: f.id()}, nil
}

func (f *fakeAPI) CreateSubgroup(_ context.Context, name string, path string, parentID int64) (*gitlab.Group, error) {
	f.creates = append(f.creates, createCall{Name: name, Path: path, ParentID: parentID})
	if len(f.creates) <= f.failCreateUntil {
		return nil, errors.New("502 Bad Gateway")
	}
	parent, ok := f.groups[parentID]
	if !ok {
		return nil, fmt.Errorf("parent %d: %w", parentID, errNotFound)
	}
	return f.addGroup(parent, path).group, nil
}
