package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/pyctx/internal/setup"
	"github.com/spf13/cobra"
)

// setupTemplate는 pyctx setup이 생성하는 기본 config.toml 내용이다.
const setupTemplate = `# pyctx configuration file
# See: https://github.com/hbjs97/pyctx

version = 1
root = %q

# 내장 프로젝트 테이블을 재정의하려면 [[projects]] 블록을 추가한다.
# alias는 전체 테이블에서 중복될 수 없다.
#
# [[projects]]
# aliases = ["econ", "economic"]
# display_name = "Economic Indicators"
# env_path = "envs/economic_indicators"
# project_path = "../../projects/economic_indicators"
# hint = "Run 'jupyter notebook' to start working."
`

func (a *App) newSetupCmd() *cobra.Command {
	var force bool
	var rootFlag string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "pyctx 초기 설정을 시작한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSetup(cmd, force, rootFlag)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일을 덮어쓴다")
	cmd.Flags().StringVar(&rootFlag, "root", "", "워크스페이스 루트 (미지정 시 입력 폼)")
	return cmd
}

func (a *App) runSetup(cmd *cobra.Command, force bool, rootFlag string) error {
	out := cmd.OutOrStdout()

	if _, err := os.Stat(a.CfgPath); err == nil {
		if !force {
			return fmt.Errorf("cli.setup: 설정 파일이 이미 존재합니다: %s (--force로 덮어쓰기)", a.CfgPath)
		}
		if err := os.Remove(a.CfgPath); err != nil {
			return fmt.Errorf("cli.setup: 기존 설정 파일 제거 실패: %w", err)
		}
	}

	root := rootFlag
	if root == "" {
		var err error
		root, err = a.Forms.RunRootInput("~")
		if err != nil {
			return fmt.Errorf("cli.setup: %w", err)
		}
	}

	dir := filepath.Dir(a.CfgPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("cli.setup: 디렉토리 생성 실패: %w", err)
	}

	content := fmt.Sprintf(setupTemplate, root)
	if err := os.WriteFile(a.CfgPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("cli.setup: 설정 파일 생성 실패: %w", err)
	}

	fmt.Fprintf(out, "설정 파일이 생성되었습니다: %s\n", a.CfgPath)

	install, err := a.Forms.RunConfirm("셸 rc 파일에 workon hook을 설치할까요?")
	if err != nil {
		return fmt.Errorf("cli.setup: %w", err)
	}
	if install {
		shellType, err := a.Forms.RunShellSelect(setup.DetectShell())
		if err != nil {
			return fmt.Errorf("cli.setup: %w", err)
		}
		rcPath := setup.ShellRCPath(shellType)
		if err := setup.InstallShellHook(shellType, rcPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "hook이 설치되었습니다: %s (새 셸에서 workon 사용 가능)\n", rcPath)
	}

	fmt.Fprintln(out, "pyctx doctor로 환경을 확인하세요.")
	return nil
}
