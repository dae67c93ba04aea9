//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/issue-marker/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Repository = Repository{Owner: "org", Name: "repo"}
	cfg.PullRequest = 7
	cfg.GitHub.Token = "token"
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:   "valid config",
			mutate: func(_ *Config) {},
		},
		{
			name:    "empty repository",
			mutate:  func(c *Config) { c.Repository.Name = "" },
			wantErr: ErrRepositoryEmpty,
		},
		{
			name:    "missing pull request",
			mutate:  func(c *Config) { c.PullRequest = 0 },
			wantErr: ErrPullRequestInvalid,
		},
		{
			name:    "missing token",
			mutate:  func(c *Config) { c.GitHub.Token = "" },
			wantErr: ErrTokenEmpty,
		},
		{
			name:    "blank marker",
			mutate:  func(c *Config) { c.Report.Marker = "  " },
			wantErr: ErrMarkerEmpty,
		},
		{
			name:    "unknown strategy",
			mutate:  func(c *Config) { c.HistoryStrategy = "both" },
			wantErr: ErrHistoryStrategyInvalid,
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.LookupConcurrency = 0 },
			wantErr: ErrLookupConcurrency,
		},
		{
			name:    "zenhub key without workspace",
			mutate:  func(c *Config) { c.ZenHub.Key = "key" },
			wantErr: ErrZenHubWorkspaceRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDefaultConfig_MatchesEmbeddedFile(t *testing.T) {
	var embedded Config
	require.NoError(t, yaml.Unmarshal(configs.DefaultConfigYAML, &embedded))

	assert.Equal(t, DefaultConfig(), embedded)
}

func TestRealManager_GetConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "issue-marker.yaml")
	content := `repository:
  owner: org
  name: repo
history_strategy: edits
labels:
  blocking: [frozen]
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := NewManager(configPath).GetConfig()

	require.NoError(t, err)
	assert.Equal(t, Repository{Owner: "org", Name: "repo"}, cfg.Repository)
	assert.Equal(t, "edits", cfg.HistoryStrategy)
	assert.Equal(t, []string{"frozen"}, cfg.Labels.Blocking)
	assert.Equal(t, "alpha", cfg.Labels.Relink)
	assert.Equal(t, 8, cfg.LookupConcurrency)
}

func TestRealManager_GetConfig_FileNotFound(t *testing.T) {
	_, err := NewManager("/nonexistent/path/config.yaml").GetConfig()

	assert.ErrorIs(t, err, ErrConfigFileNotFound)
}

func TestRealManager_GetConfig_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("labels: [unclosed"), 0644))

	_, err := NewManager(configPath).GetConfig()

	assert.ErrorIs(t, err, ErrConfigFileParse)
}

func TestRealManager_GetConfigWithFallback(t *testing.T) {
	cfg, err := NewManager("/nonexistent/path/config.yaml").GetConfigWithFallback()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestRealManager_WriteDefaultConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".github", "issue-marker.yaml")
	manager := NewManager(configPath)

	require.NoError(t, manager.WriteDefaultConfig(false))
	assert.ErrorIs(t, manager.WriteDefaultConfig(false), ErrConfigFileExists)
	require.NoError(t, manager.WriteDefaultConfig(true))

	cfg, err := manager.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestNewManager_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultConfigPath, NewManager("").GetConfigPath())
}

func TestApplyEnvironment(t *testing.T) {
	eventPath := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(eventPath, []byte(`{"action":"edited","number":12,"pull_request":{"number":12}}`), 0644))

	env := map[string]string{
		EnvGitHubToken:     "fallback",
		EnvInputToken:      "input",
		EnvZenHubKey:       "zh-key",
		EnvZenHubWorkspace: "workspace-id",
		EnvRepository:      "org/repo",
		EnvEventPath:       eventPath,
	}

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnvironment(&cfg, func(k string) string { return env[k] }))

	assert.Equal(t, "input", cfg.GitHub.Token)
	assert.Equal(t, "zh-key", cfg.ZenHub.Key)
	assert.Equal(t, "workspace-id", cfg.ZenHub.Workspace)
	assert.Equal(t, Repository{Owner: "org", Name: "repo"}, cfg.Repository)
	assert.Equal(t, 12, cfg.PullRequest)
	assert.True(t, cfg.ZenHub.Enabled())
}

func TestApplyEnvironment_KeepsExplicitPullRequest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PullRequest = 3

	require.NoError(t, ApplyEnvironment(&cfg, func(k string) string {
		if k == EnvEventPath {
			return "/nonexistent/event.json"
		}
		return ""
	}))
	assert.Equal(t, 3, cfg.PullRequest)
}

func TestApplyEnvironment_BadEvent(t *testing.T) {
	cfg := DefaultConfig()

	err := ApplyEnvironment(&cfg, func(k string) string {
		if k == EnvEventPath {
			return "/nonexistent/event.json"
		}
		return ""
	})
	assert.ErrorIs(t, err, ErrEventPayload)
}

func TestConfig_SetRepository(t *testing.T) {
	var cfg Config
	assert.ErrorIs(t, cfg.SetRepository("norepo"), ErrRepositoryEmpty)
	assert.ErrorIs(t, cfg.SetRepository("a/b/c"), ErrRepositoryEmpty)
	require.NoError(t, cfg.SetRepository("a/b"))
	assert.Equal(t, "a/b", cfg.Repository.String())
}
