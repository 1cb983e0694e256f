package setup

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunRootInput은 워크스페이스 루트 경로 입력 폼을 실행한다.
func (h *HuhFormRunner) RunRootInput(defaultRoot string) (string, error) {
	root := defaultRoot

	validate := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("워크스페이스 루트를 입력하세요")
		}
		return nil
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("워크스페이스 루트").
			Description("envs/와 projects/를 담는 디렉토리 (예: ~/analytics)").
			Value(&root).
			Validate(validate),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunRootInput: %w", err)
	}
	return strings.TrimSpace(root), nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirm, nil
}

// RunShellSelect는 hook을 설치할 셸 선택 UI를 표시한다.
func (h *HuhFormRunner) RunShellSelect(detected string) (string, error) {
	selected := detected
	if selected != "zsh" && selected != "bash" && selected != "fish" {
		selected = "zsh"
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("셸을 선택하세요").
			Options(
				huh.NewOption("zsh", "zsh"),
				huh.NewOption("bash", "bash"),
				huh.NewOption("fish", "fish"),
			).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("setup.RunShellSelect: %w", err)
	}
	return selected, nil
}

// DetectShell은 현재 사용자의 셸을 감지한다.
func DetectShell() string {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return ""
	}
	return sh[strings.LastIndex(sh, "/")+1:]
}
