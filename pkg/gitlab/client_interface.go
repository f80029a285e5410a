package gitlab

import (
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

//go:generate go tool github.com/matryer/moq -out mocks/client.go -pkg mocks . GitLabClient
//go:generate go tool github.com/matryer/moq -out mocks/groups.go -pkg mocks . GroupsService
//go:generate go tool github.com/matryer/moq -out mocks/projects.go -pkg mocks . ProjectsService
//go:generate go tool github.com/matryer/moq -out mocks/users.go -pkg mocks . UsersService

// GitLabClient defines the interface for GitLab client operations.
//
//nolint:revive // Client interface naming is intentionally explicit
type GitLabClient interface {
	Groups() GroupsService
	Projects() ProjectsService
	Users() UsersService
}

// GroupsService defines the interface for GitLab Groups API operations.
type GroupsService interface {
	//nolint:lll // GitLab API method signatures are inherently long
	GetGroup(gid any, opt *gitlab.GetGroupOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Group, *gitlab.Response, error)
	//nolint:lll // GitLab API method signatures are inherently long
	ListSubGroups(gid any, opt *gitlab.ListSubGroupsOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.Group, *gitlab.Response, error)
	//nolint:lll // GitLab API method signatures are inherently long
	ListGroupProjects(gid any, opt *gitlab.ListGroupProjectsOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.Project, *gitlab.Response, error)
	CreateGroup(opt *gitlab.CreateGroupOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Group, *gitlab.Response, error)
}

// ProjectsService defines the interface for GitLab Projects API operations.
type ProjectsService interface {
	//nolint:lll // GitLab API method signatures are inherently long
	GetProject(pid any, opt *gitlab.GetProjectOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Project, *gitlab.Response, error)
	//nolint:lll // GitLab API method signatures are inherently long
	ForkProject(pid any, opt *gitlab.ForkProjectOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Project, *gitlab.Response, error)
}

// UsersService defines the interface for GitLab Users API operations.
type UsersService interface {
	CurrentUser(options ...gitlab.RequestOptionFunc) (*gitlab.User, *gitlab.Response, error)
}

// gitlabClientWrapper wraps the official GitLab client to implement our interface.
type gitlabClientWrapper struct {
	client *gitlab.Client
}

// NewGitLabClientWrapper creates a new wrapper around the official GitLab client.
//
//nolint:ireturn // Interface return is intentional for dependency injection
func NewGitLabClientWrapper(client *gitlab.Client) GitLabClient {
	return &gitlabClientWrapper{client: client}
}

// Groups returns the groups service.
//
//nolint:ireturn // Interface return is intentional for dependency injection
func (w *gitlabClientWrapper) Groups() GroupsService {
	return &groupsServiceWrapper{service: w.client.Groups}
}

// Projects returns the projects service.
//
//nolint:ireturn // Interface return is intentional for dependency injection
func (w *gitlabClientWrapper) Projects() ProjectsService {
	return &projectsServiceWrapper{service: w.client.Projects}
}

// Users returns the users service.
//
//nolint:ireturn // Interface return is intentional for dependency injection
func (w *gitlabClientWrapper) Users() UsersService {
	return &usersServiceWrapper{service: w.client.Users}
}

// groupsServiceWrapper wraps the official GitLab groups service.
type groupsServiceWrapper struct {
	service gitlab.GroupsServiceInterface
}

//nolint:lll,wrapcheck // Wrapper method with long signature, error passthrough intentional
func (w *groupsServiceWrapper) GetGroup(gid any, opt *gitlab.GetGroupOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Group, *gitlab.Response, error) {
	return w.service.GetGroup(gid, opt, options...)
}

//nolint:lll,wrapcheck // Wrapper method with long signature, error passthrough intentional
func (w *groupsServiceWrapper) ListSubGroups(gid any, opt *gitlab.ListSubGroupsOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.Group, *gitlab.Response, error) {
	return w.service.ListSubGroups(gid, opt, options...)
}

//nolint:lll,wrapcheck // Wrapper method with long signature, error passthrough intentional
func (w *groupsServiceWrapper) ListGroupProjects(gid any, opt *gitlab.ListGroupProjectsOptions, options ...gitlab.RequestOptionFunc) ([]*gitlab.Project, *gitlab.Response, error) {
	return w.service.ListGroupProjects(gid, opt, options...)
}

//nolint:lll,wrapcheck // Wrapper method with long signature, error passthrough intentional
func (w *groupsServiceWrapper) CreateGroup(opt *gitlab.CreateGroupOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Group, *gitlab.Response, error) {
	return w.service.CreateGroup(opt, options...)
}

// projectsServiceWrapper wraps the official GitLab projects service.
type projectsServiceWrapper struct {
	service gitlab.ProjectsServiceInterface
}

//nolint:lll,wrapcheck // Wrapper method with long signature, error passthrough intentional
func (w *projectsServiceWrapper) GetProject(pid any, opt *gitlab.GetProjectOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Project, *gitlab.Response, error) {
	return w.service.GetProject(pid, opt, options...)
}

//nolint:lll,wrapcheck // Wrapper method with long signature, error passthrough intentional
func (w *projectsServiceWrapper) ForkProject(pid any, opt *gitlab.ForkProjectOptions, options ...gitlab.RequestOptionFunc) (*gitlab.Project, *gitlab.Response, error) {
	return w.service.ForkProject(pid, opt, options...)
}

// usersServiceWrapper wraps the official GitLab users service.
type usersServiceWrapper struct {
	service gitlab.UsersServiceInterface
}

//nolint:wrapcheck // Wrapper method, error passthrough intentional
func (w *usersServiceWrapper) CurrentUser(options ...gitlab.RequestOptionFunc) (*gitlab.User, *gitlab.Response, error) {
	return w.service.CurrentUser(options...)
}
