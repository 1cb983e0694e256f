package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/pyctx/internal/config"
	"github.com/hbjs97/pyctx/internal/resolver"
	"github.com/spf13/cobra"
)

func (a *App) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "현재 활성화된 프로젝트 상태를 표시한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus(cmd)
		},
	}
}

func (a *App) runStatus(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	// 활성화 스크립트가 export한 현재 프로젝트 키
	key := os.Getenv("PYCTX_PROJECT")
	if key == "" {
		fmt.Fprintln(out, "활성화된 프로젝트가 없습니다. 'workon <project>'를 실행하세요.")
		return nil
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	project, err := resolver.New(cfg).Resolve(key)
	if err != nil {
		return fmt.Errorf("cli.status: %w", err)
	}

	root, err := cfg.AbsRoot()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "프로젝트: %s\n", project.DisplayName)
	fmt.Fprintf(out, "  key:     %s\n", project.Name())
	fmt.Fprintf(out, "  env:     %s\n", filepath.Join(root, project.EnvPath))
	fmt.Fprintf(out, "  workdir: %s\n", filepath.Join(root, project.EnvPath, project.ProjectPath))
	fmt.Fprintf(out, "  hint:    %s\n", project.Hint)
	return nil
}
