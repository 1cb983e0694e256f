package cli

import (
	"fmt"

	"github.com/hbjs97/pyctx/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newDeactivateCmd() *cobra.Command {
	var shellType string

	cmd := &cobra.Command{
		Use:   "deactivate",
		Short: "프로젝트 비활성화 스크립트를 출력한다 (eval용)",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), shell.Deactivate(shellType))
			return nil
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "zsh", "셸 유형 (bash, zsh, fish)")
	return cmd
}
