//go:build unit

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/issue-marker/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		Repository, PullRequest, ConfigPath = "", 0, ""
	})
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	event := filepath.Join(dir, "event.json")
	require.NoError(t, os.WriteFile(event, []byte(`{"pull_request":{"number":42}}`), 0644))

	cfg, err := loadConfig(config.NewManager(filepath.Join(dir, "missing.yaml")), env(map[string]string{
		config.EnvInputToken:      "token",
		config.EnvRepository:      "org/repo",
		config.EnvEventPath:       event,
		config.EnvZenHubKey:       "key",
		config.EnvZenHubWorkspace: "ws",
	}))
	require.NoError(t, err)
	assert.Equal(t, "org/repo", cfg.Repository.String())
	assert.Equal(t, 42, cfg.PullRequest)
	assert.Equal(t, "token", cfg.GitHub.Token)
	assert.True(t, cfg.ZenHub.Enabled())
}

func TestLoadConfig_FlagsOverrideEnvironment(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	event := filepath.Join(dir, "event.json")
	require.NoError(t, os.WriteFile(event, []byte(`{"number":42}`), 0644))

	Repository = "other/lib"
	PullRequest = 7

	cfg, err := loadConfig(config.NewManager(filepath.Join(dir, "missing.yaml")), env(map[string]string{
		config.EnvGitHubToken: "token",
		config.EnvRepository:  "org/repo",
		config.EnvEventPath:   event,
	}))
	require.NoError(t, err)
	assert.Equal(t, "other/lib", cfg.Repository.String())
	assert.Equal(t, 7, cfg.PullRequest)
	assert.False(t, cfg.ZenHub.Enabled())
}

func TestLoadConfig_Invalid(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()

	_, err := loadConfig(config.NewManager(filepath.Join(dir, "missing.yaml")), env(map[string]string{
		config.EnvRepository: "org/repo",
	}))
	assert.ErrorIs(t, err, config.ErrPullRequestInvalid)
}

func TestNewIssueMarker(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Repository = config.Repository{Owner: "org", Name: "repo"}
	cfg.PullRequest = 1
	cfg.GitHub.Token = "token"
	cfg.ZenHub.Key = "key"
	cfg.ZenHub.Workspace = "ws"

	m, err := NewIssueMarker(cfg, NewLogger())
	require.NoError(t, err)
	assert.NotNil(t, m)
}
