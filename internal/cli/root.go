package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/pyctx/internal/cmdexec"
	"github.com/hbjs97/pyctx/internal/setup"
	"github.com/spf13/cobra"
)

// App은 CLI 전체가 공유하는 의존성 묶음이다.
// 테스트에서는 FakeCommander와 MockFormRunner를 주입한다.
type App struct {
	Commander cmdexec.Commander
	Forms     setup.FormRunner
	CfgPath   string
}

// NewApp은 프로덕션 의존성으로 구성된 App을 생성한다.
func NewApp() *App {
	return &App{
		Commander: &cmdexec.RealCommander{},
		Forms:     &setup.HuhFormRunner{},
		CfgPath:   filepath.Join(homeDir(), ".config", "pyctx", "config.toml"),
	}
}

// NewRootCmd는 pyctx CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pyctx",
		Short:        "Python 분석 프로젝트 가상환경 활성화 매니저",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")

	cmd.AddCommand(
		a.newActivateCmd(),
		a.newDeactivateCmd(),
		a.newListCmd(),
		a.newStatusCmd(),
		a.newDoctorCmd(),
		a.newSetupCmd(),
	)
	return cmd
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}
