package setup

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunRootInput은 워크스페이스 루트 경로 입력 폼을 실행한다.
	// defaultRoot는 기본값으로 표시된다.
	RunRootInput(defaultRoot string) (string, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)

	// RunShellSelect는 hook을 설치할 셸 선택 UI를 표시한다.
	// detected는 기본 선택으로 표시된다.
	RunShellSelect(detected string) (string, error)
}
