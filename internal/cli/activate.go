package cli

import (
	"fmt"

	"github.com/hbjs97/pyctx/internal/config"
	"github.com/hbjs97/pyctx/internal/resolver"
	"github.com/hbjs97/pyctx/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newActivateCmd() *cobra.Command {
	var shellType string
	var hookOnly bool

	cmd := &cobra.Command{
		Use:   "activate [project]",
		Short: "프로젝트 활성화 스크립트를 출력한다 (eval용)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if hookOnly {
				fmt.Fprint(cmd.OutOrStdout(), shell.HookSnippet(shellType))
				return nil
			}
			key := ""
			if len(args) > 0 {
				key = args[0]
			}
			return a.runActivate(cmd, key, shellType)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "zsh", "셸 유형 (bash, zsh, fish)")
	cmd.Flags().BoolVar(&hookOnly, "hook", false, "workon hook 스니펫만 출력")
	return cmd
}

// runActivate는 키를 판정하고 활성화 스크립트를 stdout으로 출력한다.
// stdout은 셸이 eval하는 wire format이므로 미일치 키의 usage는 stderr로 쓴다.
func (a *App) runActivate(cmd *cobra.Command, key, shellType string) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	project, err := resolver.New(cfg).Resolve(key)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), usageListing(cfg))
		return err
	}

	root, err := cfg.AbsRoot()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), shell.Activate(project, root, shellType))
	return nil
}
