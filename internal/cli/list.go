package cli

import (
	"fmt"

	"github.com/hbjs97/pyctx/internal/config"
	"github.com/spf13/cobra"
)

func (a *App) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "등록된 프로젝트 목록을 표시한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.CfgPath)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), projectTable(cfg))
			return nil
		},
	}
}
