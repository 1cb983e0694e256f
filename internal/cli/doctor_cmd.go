package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/hbjs97/pyctx/internal/config"
	"github.com/hbjs97/pyctx/internal/doctor"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "워크스페이스와 가상환경을 진단한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd.Context(), cmd)
		},
	}
}

func (a *App) runDoctor(ctx context.Context, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		fmt.Fprintf(out, "[FAIL] config: %v\n", err)
		fmt.Fprintln(out, "      Fix: pyctx setup 실행 또는 설정 파일 확인")
		return nil
	}

	root, err := cfg.AbsRoot()
	if err != nil {
		return err
	}

	printDiagResults(out, []doctor.DiagResult{doctor.CheckRoot(root)})

	for i := range cfg.Projects {
		p := &cfg.Projects[i]
		fmt.Fprintf(out, "\n--- 프로젝트: %s (%s) ---\n", p.DisplayName, p.Name())
		results := doctor.RunProject(ctx, a.Commander, root, p)
		printDiagResults(out, results)
	}
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(out io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		icon := statusIcon(r.Status)
		fmt.Fprintf(out, "  [%s] %s: %s\n", icon, r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(out, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
