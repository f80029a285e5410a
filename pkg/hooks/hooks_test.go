package hooks_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sgaunet/gitlab-forker/pkg/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePreCopyCmd(t *testing.T) {
	tests := []struct {
		name string
		h    hooks.Hooks
		want string
	}{
		{
			name: "no placeholder",
			h:    hooks.Hooks{PreCopy: "echo 'precopy'"},
			want: "echo 'precopy'",
		},
		{
			name: "placeholders",
			h:    hooks.Hooks{PreCopy: "notify %SOURCE% -> %TARGET% (%SOURCE%)"},
			want: "notify 10 -> 42 (10)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.GeneratePreCopyCmd("10", "42"); got != tt.want {
				t.Errorf("GeneratePreCopyCmd() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGeneratePostCopyCmd(t *testing.T) {
	h := hooks.Hooks{PostCopy: "echo 'postcopy %SOURCE% %TARGET%.out'"}
	assert.Equal(t, "echo 'postcopy 10 42.out'", h.GeneratePostCopyCmd("10", "42"))
}

func TestHasHooks(t *testing.T) {
	h := hooks.Hooks{}
	assert.False(t, h.HasPreCopy())
	assert.False(t, h.HasPostCopy())

	h = hooks.Hooks{PreCopy: "true", PostCopy: "true"}
	assert.True(t, h.HasPreCopy())
	assert.True(t, h.HasPostCopy())
}

func TestExecuteHooks(t *testing.T) {
	dir := t.TempDir()
	h := hooks.Hooks{
		PreCopy:  "touch " + filepath.Join(dir, "%SOURCE%.pre"),
		PostCopy: "touch " + filepath.Join(dir, "%TARGET%.post"),
	}

	require.NoError(t, h.ExecutePreCopy(context.Background(), "10", "42"))
	_, err := os.Stat(filepath.Join(dir, "10.pre"))
	require.NoError(t, err, "pre copy hook should have created its file")

	require.NoError(t, h.ExecutePostCopy(context.Background(), "10", "42"))
	_, err = os.Stat(filepath.Join(dir, "42.post"))
	require.NoError(t, err, "post copy hook should have created its file")
}

func TestExecuteEmptyHook(t *testing.T) {
	h := hooks.Hooks{}
	require.NoError(t, h.ExecutePreCopy(context.Background(), "1", "2"))
	require.NoError(t, h.ExecutePostCopy(context.Background(), "1", "2"))
}

func TestExecuteFailingHook(t *testing.T) {
	h := hooks.Hooks{PreCopy: "false"}
	require.Error(t, h.ExecutePreCopy(context.Background(), "1", "2"))

	h = hooks.Hooks{PreCopy: "/nonexistent/command-for-hooks"}
	require.Error(t, h.ExecutePreCopy(context.Background(), "1", "2"))
}

func TestExecuteHookCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h := hooks.Hooks{PostCopy: "sleep 5"}
	require.Error(t, h.ExecutePostCopy(ctx, "1", "2"))
}
