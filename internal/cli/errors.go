package cli

import (
	"github.com/hbjs97/pyctx/internal/config"
	"github.com/hbjs97/pyctx/internal/resolver"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrUnknownProject는 입력 키가 어떤 alias와도 일치하지 않을 때의 sentinel error다.
	ErrUnknownProject = resolver.ErrUnknownProject
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
