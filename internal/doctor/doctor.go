package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/pyctx/internal/cmdexec"
	"github.com/hbjs97/pyctx/internal/config"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckRoot는 워크스페이스 루트 디렉토리 존재 여부를 확인한다.
func CheckRoot(root string) DiagResult {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return DiagResult{
			Name:    "root",
			Status:  StatusFail,
			Message: fmt.Sprintf("워크스페이스 루트 없음: %s", root),
			Fix:     "config.toml의 root 경로를 확인하세요",
		}
	}
	return DiagResult{Name: "root", Status: StatusOK, Message: root}
}

// CheckEnvDir는 프로젝트의 가상환경 디렉토리 존재 여부를 확인한다.
func CheckEnvDir(root string, p *config.Project) DiagResult {
	envDir := filepath.Join(root, p.EnvPath)
	info, err := os.Stat(envDir)
	if err != nil || !info.IsDir() {
		return DiagResult{
			Name:    "env_dir",
			Status:  StatusFail,
			Message: fmt.Sprintf("가상환경 디렉토리 없음: %s", envDir),
			Fix:     fmt.Sprintf("python -m venv %s 로 생성하세요", envDir),
		}
	}
	return DiagResult{Name: "env_dir", Status: StatusOK, Message: envDir}
}

// CheckActivateScript는 가상환경의 activate 스크립트 존재 여부를 확인한다.
func CheckActivateScript(root string, p *config.Project) DiagResult {
	script := filepath.Join(root, p.EnvPath, "bin", "activate")
	if _, err := os.Stat(script); err != nil {
		return DiagResult{
			Name:    "activate",
			Status:  StatusFail,
			Message: fmt.Sprintf("activate 스크립트 없음: %s", script),
			Fix:     "가상환경이 손상되었거나 생성되지 않았습니다. venv를 다시 생성하세요",
		}
	}
	return DiagResult{Name: "activate", Status: StatusOK, Message: script}
}

// CheckPython은 가상환경 인터프리터가 버전 질의에 응답하는지 확인한다.
func CheckPython(ctx context.Context, cmd cmdexec.Commander, root string, p *config.Project) DiagResult {
	python := filepath.Join(root, p.EnvPath, "bin", "python")
	out, err := cmd.Run(ctx, python, "--version")
	if err != nil {
		return DiagResult{
			Name:    "python",
			Status:  StatusFail,
			Message: fmt.Sprintf("인터프리터 실행 실패: %s", python),
			Fix:     "venv를 다시 생성하거나 심볼릭 링크를 확인하세요",
		}
	}
	return DiagResult{Name: "python", Status: StatusOK, Message: strings.TrimSpace(string(out))}
}

// CheckProjectDir는 프로젝트 작업 디렉토리 존재 여부를 확인한다.
// activate 스크립트는 이 실패를 검사하지 않으므로 doctor가 유일한 감지 지점이다.
func CheckProjectDir(root string, p *config.Project) DiagResult {
	projectDir := filepath.Join(root, p.EnvPath, p.ProjectPath)
	info, err := os.Stat(projectDir)
	if err != nil || !info.IsDir() {
		return DiagResult{
			Name:    "project_dir",
			Status:  StatusWarn,
			Message: fmt.Sprintf("프로젝트 디렉토리 없음: %s — 활성화 시 env 디렉토리에 남게 됩니다", projectDir),
			Fix:     fmt.Sprintf("mkdir -p %s", projectDir),
		}
	}
	return DiagResult{Name: "project_dir", Status: StatusOK, Message: projectDir}
}

// RunProject는 한 프로젝트에 대한 모든 진단을 실행한다.
func RunProject(ctx context.Context, cmd cmdexec.Commander, root string, p *config.Project) []DiagResult {
	results := []DiagResult{CheckEnvDir(root, p)}
	if results[0].Status == StatusFail {
		// env 디렉토리가 없으면 나머지 env 검사는 의미가 없다
		results = append(results, CheckProjectDir(root, p))
		return results
	}
	results = append(results,
		CheckActivateScript(root, p),
		CheckPython(ctx, cmd, root, p),
		CheckProjectDir(root, p),
	)
	return results
}
