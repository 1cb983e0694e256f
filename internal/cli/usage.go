package cli

import (
	"fmt"
	"strings"

	"github.com/hbjs97/pyctx/internal/config"
)

// usageListing은 호출 구문과 전체 alias 테이블을 담은 usage 텍스트를 생성한다.
// activate 실패 경로와 list 명령이 같은 테이블을 공유한다.
func usageListing(cfg *config.Config) string {
	var b strings.Builder
	b.WriteString("사용법: pyctx activate <project> [--shell bash|zsh|fish]\n")
	b.WriteString("        workon <project>  (셸 hook 설치 후)\n\n")
	b.WriteString("프로젝트:\n")
	b.WriteString(projectTable(cfg))
	return b.String()
}

// projectTable은 alias와 표시 이름을 정렬한 테이블 행들을 생성한다.
func projectTable(cfg *config.Config) string {
	aliases := make([]string, len(cfg.Projects))
	width := 0
	for i, p := range cfg.Projects {
		aliases[i] = strings.Join(p.Aliases, ", ")
		if len(aliases[i]) > width {
			width = len(aliases[i])
		}
	}

	var b strings.Builder
	for i, p := range cfg.Projects {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, aliases[i], p.DisplayName)
	}
	return b.String()
}
