package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/pyctx/internal/config"
	"github.com/hbjs97/pyctx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsBuiltinTable(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope", "config.toml"))
	require.NoError(t, err)

	require.Len(t, cfg.Projects, 5)
	assert.Equal(t, "Economic Indicators", cfg.Projects[0].DisplayName)
	assert.Equal(t, "Roof Maxx Analytics", cfg.Projects[4].DisplayName)
}

func TestLoad_BuiltinAliasUniverse(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	var aliases []string
	for _, p := range cfg.Projects {
		aliases = append(aliases, p.Aliases...)
	}
	assert.ElementsMatch(t,
		[]string{"econ", "economic", "kpi", "portfolio", "port", "analytics", "product", "roof", "roofmaxx"},
		aliases)
}

func TestLoad_CustomTablePreservesOrder(t *testing.T) {
	path := testutil.TempConfigFile(t, `version = 1
root = "/tmp/ws"

[[projects]]
aliases = ["alpha"]
display_name = "Alpha"
env_path = "envs/alpha"
project_path = "../../projects/alpha"

[[projects]]
aliases = ["beta", "b"]
display_name = "Beta"
env_path = "envs/beta"
project_path = "../../projects/beta"
hint = "Run 'make'."
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Projects, 2)
	assert.Equal(t, "Alpha", cfg.Projects[0].DisplayName)
	assert.Equal(t, "Beta", cfg.Projects[1].DisplayName)
	assert.Equal(t, "alpha", cfg.Projects[0].Name())
	assert.Equal(t, "/tmp/ws", cfg.Root)

	// hint 미지정 시 기본 힌트가 채워진다
	assert.Equal(t, "Run 'jupyter notebook' to start working.", cfg.Projects[0].Hint)
	assert.Equal(t, "Run 'make'.", cfg.Projects[1].Hint)
}

func TestLoad_AliasCollision(t *testing.T) {
	path := testutil.TempConfigFile(t, `version = 1

[[projects]]
aliases = ["econ"]
display_name = "First"
env_path = "envs/a"
project_path = "../../projects/a"

[[projects]]
aliases = ["kpi", "econ"]
display_name = "Second"
env_path = "envs/b"
project_path = "../../projects/b"
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfig)
	assert.Contains(t, err.Error(), "econ")
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{
			name: "no aliases",
			toml: "[[projects]]\ndisplay_name = \"X\"\nenv_path = \"envs/x\"\nproject_path = \"../x\"\n",
		},
		{
			name: "no env_path",
			toml: "[[projects]]\naliases = [\"x\"]\ndisplay_name = \"X\"\nproject_path = \"../x\"\n",
		},
		{
			name: "no project_path",
			toml: "[[projects]]\naliases = [\"x\"]\ndisplay_name = \"X\"\nenv_path = \"envs/x\"\n",
		},
		{
			name: "no display_name",
			toml: "[[projects]]\naliases = [\"x\"]\nenv_path = \"envs/x\"\nproject_path = \"../x\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.TempConfigFile(t, tt.toml)
			_, err := config.Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrConfig)
		})
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := testutil.TempConfigFile(t, "version = [broken\n")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestAbsRoot_EmptyUsesCwd(t *testing.T) {
	cfg := config.Default()

	cwd, err := os.Getwd()
	require.NoError(t, err)

	root, err := cfg.AbsRoot()
	require.NoError(t, err)
	assert.Equal(t, cwd, root)
}

func TestAbsRoot_ExpandsTilde(t *testing.T) {
	cfg := config.Default()
	cfg.Root = "~/analytics"

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	root, err := cfg.AbsRoot()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "analytics"), root)
}

func TestAbsRoot_AbsolutePathUnchanged(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Root = dir

	root, err := cfg.AbsRoot()
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}
