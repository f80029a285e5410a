package gitlab

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/sgaunet/gitlab-forker/pkg/constants"
	gitlab "gitlab.com/gitlab-org/api/client-go"
	"golang.org/x/time/rate"
)

var log Logger

// Logger interface defines the logging methods used by GitLab service.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

// Service provides methods to interact with GitLab API.
type Service struct {
	client               GitLabClient
	gitlabAPIEndpoint    string
	token                string
	rateLimitMutationAPI *rate.Limiter
}

func init() {
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetLogger sets the logger.
func SetLogger(l Logger) {
	if l != nil {
		log = l
	}
}

// NewGitlabService returns a new Service talking to gitlab.com with the
// token found in the GITLAB_TOKEN env variable.
func NewGitlabService() (*Service, error) {
	s := &Service{
		gitlabAPIEndpoint:    constants.GitLabAPIEndpoint,
		token:                os.Getenv("GITLAB_TOKEN"),
		rateLimitMutationAPI: newMutationLimiter(),
	}
	if err := s.newClient(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewGitlabServiceWithClient returns a Service using the given client.
// Mostly useful for tests.
func NewGitlabServiceWithClient(client GitLabClient) *Service {
	return &Service{
		client:               client,
		gitlabAPIEndpoint:    constants.GitLabAPIEndpoint,
		rateLimitMutationAPI: newMutationLimiter(),
	}
}

func newMutationLimiter() *rate.Limiter {
	// fork and group creation share the same per-user budget
	return rate.NewLimiter(
		rate.Every(constants.MutationRateLimitIntervalSeconds*time.Second/constants.MutationRateLimitBurst),
		constants.MutationRateLimitBurst,
	)
}

// newClient (re)creates the official client from the current endpoint and token.
func (s *Service) newClient() error {
	c, err := gitlab.NewClient(s.token, gitlab.WithBaseURL(s.gitlabAPIEndpoint))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidEndpoint, s.gitlabAPIEndpoint, err)
	}
	s.client = NewGitLabClientWrapper(c)
	return nil
}

// SetGitlabEndpoint sets the Gitlab API endpoint
// default: https://gitlab.com/api/v4
func (s *Service) SetGitlabEndpoint(gitlabAPIEndpoint string) error {
	s.gitlabAPIEndpoint = gitlabAPIEndpoint
	return s.newClient()
}

// SetToken sets the Gitlab API token
// default: GITLAB_TOKEN env variable
func (s *Service) SetToken(token string) error {
	if token == "" {
		log.Warn("no token provided")
	}
	s.token = token
	return s.newClient()
}

// SetRateLimitMutationAPI replaces the limiter applied to fork and create calls.
func (s *Service) SetRateLimitMutationAPI(l *rate.Limiter) {
	if l != nil {
		s.rateLimitMutationAPI = l
	}
}

// Client returns the underlying GitLab client.
//
//nolint:ireturn // Interface return is intentional for dependency injection
func (s *Service) Client() GitLabClient {
	return s.client
}

// CurrentUser returns the user owning the token. It is the cheapest way to
// check that the endpoint and the token are usable.
func (s *Service) CurrentUser(ctx context.Context) (*gitlab.User, error) {
	user, _, err := s.client.Users().CurrentUser(gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, ErrEmptyResponse)
	}
	log.Debug("CurrentUser", "username", user.Username)
	return user, nil
}

// GetGroup returns the gitlab group from the given ID.
func (s *Service) GetGroup(ctx context.Context, groupID int64) (*gitlab.Group, error) {
	group, _, err := s.client.Groups().GetGroup(groupID, nil, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("error retrieving group %d: %w", groupID, err)
	}
	if group == nil {
		return nil, fmt.Errorf("error retrieving group %d: %w", groupID, ErrEmptyResponse)
	}
	return group, nil
}

// GetProject returns informations of the project that matches the given ID.
func (s *Service) GetProject(ctx context.Context, projectID int64) (*gitlab.Project, error) {
	project, _, err := s.client.Projects().GetProject(projectID, nil, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("error retrieving project %d: %w", projectID, err)
	}
	if project == nil {
		return nil, fmt.Errorf("error retrieving project %d: %w", projectID, ErrEmptyResponse)
	}
	return project, nil
}

// ListGroupProjects returns every direct project of the group, walking all pages.
// Projects of subgroups are not included.
func (s *Service) ListGroupProjects(ctx context.Context, groupID int64) ([]*gitlab.Project, error) {
	var allProjects []*gitlab.Project
	opt := &gitlab.ListGroupProjectsOptions{
		ListOptions: gitlab.ListOptions{PerPage: constants.ListPageSize},
	}

	for {
		projects, resp, err := s.client.Groups().ListGroupProjects(groupID, opt, gitlab.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to list projects of group %d: %w", groupID, err)
		}

		allProjects = append(allProjects, projects...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	log.Debug("ListGroupProjects", "groupID", groupID, "count", len(allProjects))
	return allProjects, nil
}

// ListSubGroups returns every direct subgroup of the group, walking all pages.
func (s *Service) ListSubGroups(ctx context.Context, groupID int64) ([]*gitlab.Group, error) {
	var allGroups []*gitlab.Group
	opt := &gitlab.ListSubGroupsOptions{
		ListOptions: gitlab.ListOptions{PerPage: constants.ListPageSize},
	}

	for {
		groups, resp, err := s.client.Groups().ListSubGroups(groupID, opt, gitlab.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to list subgroups of group %d: %w", groupID, err)
		}

		allGroups = append(allGroups, groups...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	log.Debug("ListSubGroups", "groupID", groupID, "count", len(allGroups))
	return allGroups, nil
}

// ForkProject forks the project into the namespace identified by namespaceID.
func (s *Service) ForkProject(ctx context.Context, projectID int64, namespaceID int64) (*gitlab.Project, error) {
	if err := s.rateLimitMutationAPI.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRateLimit, err)
	}

	fork, _, err := s.client.Projects().ForkProject(
		projectID,
		&gitlab.ForkProjectOptions{
			NamespaceID: gitlab.Ptr(namespaceID),
		},
		gitlab.WithContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fork project %d into namespace %d: %w", projectID, namespaceID, err)
	}
	if fork == nil {
		return nil, fmt.Errorf("failed to fork project %d: %w", projectID, ErrEmptyResponse)
	}
	log.Debug("ForkProject", "projectID", projectID, "namespaceID", namespaceID, "forkID", fork.ID)
	return fork, nil
}

// CreateSubgroup creates a group named name with the given path under parentID.
func (s *Service) CreateSubgroup(ctx context.Context, name string, path string, parentID int64) (*gitlab.Group, error) {
	if err := s.rateLimitMutationAPI.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRateLimit, err)
	}

	group, _, err := s.client.Groups().CreateGroup(
		&gitlab.CreateGroupOptions{
			Name:     gitlab.Ptr(name),
			Path:     gitlab.Ptr(path),
			ParentID: gitlab.Ptr(parentID),
		},
		gitlab.WithContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create subgroup %s under group %d: %w", path, parentID, err)
	}
	if group == nil {
		return nil, fmt.Errorf("failed to create subgroup %s: %w", path, ErrEmptyResponse)
	}
	log.Debug("CreateSubgroup", "name", name, "parentID", parentID, "groupID", group.ID)
	return group, nil
}
