package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/pyctx/internal/cli"
	"github.com/hbjs97/pyctx/internal/config"
	"github.com/hbjs97/pyctx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSetupApp(t *testing.T, forms *testutil.MockFormRunner) *cli.App {
	t.Helper()

	return &cli.App{
		Commander: testutil.NewFakeCommander(),
		Forms:     forms,
		CfgPath:   filepath.Join(t.TempDir(), "pyctx", "config.toml"),
	}
}

func TestSetup_CreatesConfigWithRootFlag(t *testing.T) {
	app := newSetupApp(t, &testutil.MockFormRunner{})

	stdout, _, err := runCmd(t, app, "setup", "--root", "/tmp/analytics")
	require.NoError(t, err)
	assert.Contains(t, stdout, "설정 파일이 생성되었습니다")

	cfg, err := config.Load(app.CfgPath)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/analytics", cfg.Root)
	// 템플릿은 내장 프로젝트 테이블에 위임한다
	assert.Len(t, cfg.Projects, 5)
}

func TestSetup_RootFromForm(t *testing.T) {
	forms := &testutil.MockFormRunner{RootAnswer: "/srv/workspace"}
	app := newSetupApp(t, forms)

	_, _, err := runCmd(t, app, "setup")
	require.NoError(t, err)

	cfg, err := config.Load(app.CfgPath)
	require.NoError(t, err)
	assert.Equal(t, "/srv/workspace", cfg.Root)
}

func TestSetup_ExistingConfigWithoutForce(t *testing.T) {
	app := newSetupApp(t, &testutil.MockFormRunner{})
	require.NoError(t, os.MkdirAll(filepath.Dir(app.CfgPath), 0700))
	require.NoError(t, os.WriteFile(app.CfgPath, []byte("version = 1\n"), 0600))

	_, _, err := runCmd(t, app, "setup", "--root", "/tmp/ws")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "이미 존재합니다")

	// 기존 파일은 그대로 남는다
	data, readErr := os.ReadFile(app.CfgPath)
	require.NoError(t, readErr)
	assert.Equal(t, "version = 1\n", string(data))
}

func TestSetup_ForceOverwritesExistingConfig(t *testing.T) {
	app := newSetupApp(t, &testutil.MockFormRunner{})
	require.NoError(t, os.MkdirAll(filepath.Dir(app.CfgPath), 0700))
	require.NoError(t, os.WriteFile(app.CfgPath, []byte("old content"), 0600))

	_, _, err := runCmd(t, app, "setup", "--force", "--root", "/tmp/ws")
	require.NoError(t, err)

	data, readErr := os.ReadFile(app.CfgPath)
	require.NoError(t, readErr)
	assert.NotContains(t, string(data), "old content")
	assert.Contains(t, string(data), `root = "/tmp/ws"`)
}

func TestSetup_AsksHookInstall(t *testing.T) {
	forms := &testutil.MockFormRunner{} // ConfirmAnswer=false — hook 설치 안 함
	app := newSetupApp(t, forms)

	_, _, err := runCmd(t, app, "setup", "--root", "/tmp/ws")
	require.NoError(t, err)

	require.Len(t, forms.ConfirmMessages, 1)
	assert.Contains(t, forms.ConfirmMessages[0], "workon hook")
}

func TestSetup_ConfigFilePermissions(t *testing.T) {
	app := newSetupApp(t, &testutil.MockFormRunner{})

	_, _, err := runCmd(t, app, "setup", "--root", "/tmp/ws")
	require.NoError(t, err)

	info, err := os.Stat(app.CfgPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
