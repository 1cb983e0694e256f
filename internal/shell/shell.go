package shell

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hbjs97/pyctx/internal/config"
)

// Activate는 프로젝트 활성화를 위한 shell 명령 시퀀스를 생성한다.
// 디렉토리 이동은 env → project 순서의 2단계이며, 두 번째 cd의 실패는
// 검사하지 않고 셸 자체 진단에 맡긴다.
func Activate(p *config.Project, root, shellType string) string {
	envDir := filepath.Join(root, p.EnvPath)

	var b strings.Builder
	switch shellType {
	case "fish":
		fmt.Fprintf(&b, "cd %q\n", envDir)
		fmt.Fprintf(&b, "cd %q\n", p.ProjectPath)
		fmt.Fprintf(&b, "source %q\n", filepath.Join(envDir, "bin", "activate.fish"))
		fmt.Fprintf(&b, "set -gx PYCTX_PROJECT %q\n", p.Name())
		fmt.Fprintf(&b, "echo %q\n", "Activated: "+p.DisplayName)
		b.WriteString("echo \"Working directory: $PWD\"\n")
		b.WriteString("echo \"Python: \"(python --version 2>&1)\n")
		fmt.Fprintf(&b, "echo %q\n", "Hint: "+p.Hint)
	default: // bash, zsh, sh
		fmt.Fprintf(&b, "cd %q\n", envDir)
		fmt.Fprintf(&b, "cd %q\n", p.ProjectPath)
		fmt.Fprintf(&b, ". %q\n", filepath.Join(envDir, "bin", "activate"))
		fmt.Fprintf(&b, "export PYCTX_PROJECT=%q\n", p.Name())
		fmt.Fprintf(&b, "echo %q\n", "Activated: "+p.DisplayName)
		b.WriteString("echo \"Working directory: $PWD\"\n")
		b.WriteString("echo \"Python: $(python --version 2>&1)\"\n")
		fmt.Fprintf(&b, "echo %q\n", "Hint: "+p.Hint)
	}
	return b.String()
}

// Deactivate는 프로젝트 비활성화를 위한 shell 명령 시퀀스를 생성한다.
func Deactivate(shellType string) string {
	switch shellType {
	case "fish":
		return "functions -q deactivate; and deactivate\nset -e PYCTX_PROJECT\n"
	default:
		return "type deactivate >/dev/null 2>&1 && deactivate\nunset PYCTX_PROJECT\n"
	}
}

// HookSnippet는 rc 파일에 설치하는 workon wrapper 함수 스니펫을 반환한다.
func HookSnippet(shellType string) string {
	switch shellType {
	case "zsh":
		return `# pyctx shell integration (zsh)
workon() {
  local script
  script="$(pyctx activate --shell zsh -- "$@")" || return $?
  eval "$script"
}
`
	case "bash":
		return `# pyctx shell integration (bash)
workon() {
  local script
  script="$(pyctx activate --shell bash -- "$@")" || return $?
  eval "$script"
}
`
	case "fish":
		return `# pyctx shell integration (fish)
function workon
  set -l script (pyctx activate --shell fish -- $argv | string collect)
  or return $status
  eval $script
end
`
	default:
		return ""
	}
}
