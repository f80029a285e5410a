package forker_test

import (
	"context"
	"testing"

	"github.com/sgaunet/gitlab-forker/pkg/forker"
	"github.com/sgaunet/gitlab-forker/pkg/gitlab"
	"github.com/sgaunet/gitlab-forker/pkg/gitlab/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gitlabapi "gitlab.com/gitlab-org/api/client-go"
)

// TestCopyGroup_ThroughService runs the copier on top of the real service
// with mocked GitLab endpoints, checking pagination is fully consumed.
func TestCopyGroup_ThroughService(t *testing.T) {
	source := &gitlabapi.Group{ID: 1, Name: "src", Path: "src", FullPath: "src"}

	groups := &mocks.GroupsServiceMock{
		ListGroupProjectsFunc: func(_ any, opt *gitlabapi.ListGroupProjectsOptions, _ ...gitlabapi.RequestOptionFunc) ([]*gitlabapi.Project, *gitlabapi.Response, error) {
			if opt.Page == 0 {
				return []*gitlabapi.Project{{ID: 10}}, &gitlabapi.Response{NextPage: 2}, nil
			}
			return []*gitlabapi.Project{{ID: 11}}, &gitlabapi.Response{}, nil
		},
		ListSubGroupsFunc: func(_ any, _ *gitlabapi.ListSubGroupsOptions, _ ...gitlabapi.RequestOptionFunc) ([]*gitlabapi.Group, *gitlabapi.Response, error) {
			return nil, &gitlabapi.Response{}, nil
		},
		CreateGroupFunc: func(_ *gitlabapi.CreateGroupOptions, _ ...gitlabapi.RequestOptionFunc) (*gitlabapi.Group, *gitlabapi.Response, error) {
			t.Fatal("no subgroup to create")
			return nil, nil, nil
		},
	}
	projects := &mocks.ProjectsServiceMock{
		GetProjectFunc: func(pid any, _ *gitlabapi.GetProjectOptions, _ ...gitlabapi.RequestOptionFunc) (*gitlabapi.Project, *gitlabapi.Response, error) {
			id, ok := pid.(int64)
			require.True(t, ok)
			return &gitlabapi.Project{ID: id, PathWithNamespace: "src/p"}, &gitlabapi.Response{}, nil
		},
		ForkProjectFunc: func(pid any, opt *gitlabapi.ForkProjectOptions, _ ...gitlabapi.RequestOptionFunc) (*gitlabapi.Project, *gitlabapi.Response, error) {
			assert.EqualValues(t, 42, *opt.NamespaceID)
			return &gitlabapi.Project{ID: 100}, &gitlabapi.Response{}, nil
		},
	}
	client := &mocks.GitLabClientMock{
		GroupsFunc:   func() gitlab.GroupsService { return groups },
		ProjectsFunc: func() gitlab.ProjectsService { return projects },
	}
	service := gitlab.NewGitlabServiceWithClient(client)

	c := forker.NewCopier(service, testPolicy(), false, nil)
	err := c.CopyGroup(context.Background(), source, forker.RemoteTarget(42))

	require.NoError(t, err)
	assert.Len(t, projects.GetProjectCalls(), 2)
	assert.Len(t, projects.ForkProjectCalls(), 2)
	assert.Equal(t, int64(10), projects.ForkProjectCalls()[0].Pid)
	assert.Equal(t, int64(11), projects.ForkProjectCalls()[1].Pid)
}
