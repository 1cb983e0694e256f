package cli_test

import (
	"testing"
)

// 실제 셸에서 eval까지 수행하는 E2E 시나리오. 유닛 테스트 환경에는 대화형
// 셸과 실제 venv가 없으므로 수동 검증 절차만 기록해 둔다.

func TestE2E_WorkonRoundTrip(t *testing.T) {
	t.Skip("requires an interactive shell and a real venv")

	// Given: envs/roof_maxx_analytics venv와 projects/roof_maxx_analytics가 있는 워크스페이스
	// When: zsh에서 eval "$(pyctx activate --shell zsh -- roof)" 실행
	// Then: $PWD == <root>/projects/roof_maxx_analytics
	// And: $VIRTUAL_ENV가 envs/roof_maxx_analytics를 가리킨다
	// And: 상태 출력 4줄 (Activated / Working directory / Python / Hint)
}

func TestE2E_WorkonPreservesExitStatus(t *testing.T) {
	t.Skip("requires an interactive shell")

	// Given: hook이 설치된 zsh 세션
	// When: workon bogus 실행
	// Then: usage가 stderr로 출력되고 $? == 2
	// And: 디렉토리와 환경변수는 변하지 않는다
}

func TestE2E_MissingProjectDirLeavesShellInEnvDir(t *testing.T) {
	t.Skip("requires an interactive shell")

	// Given: env 디렉토리는 있으나 프로젝트 디렉토리가 없는 상태
	// When: workon kpi 실행
	// Then: 셸은 env 디렉토리에 남고 두 번째 cd의 셸 자체 에러만 출력된다
	//       (pyctx doctor가 감지 수단)
}
