package resolver

import (
	"errors"
	"fmt"

	"github.com/hbjs97/pyctx/internal/config"
)

// ErrUnknownProject는 입력 키가 어떤 프로젝트 alias와도 일치하지 않을 때 반환된다.
var ErrUnknownProject = errors.New("알 수 없는 프로젝트 키")

// Resolver는 alias 테이블 기반 프로젝트 판정기다.
type Resolver struct {
	config *config.Config
}

// New는 새 Resolver를 생성한다.
func New(cfg *config.Config) *Resolver {
	return &Resolver{config: cfg}
}

// Resolve는 키를 완전 일치로 판정한다. 테이블 순서상 first-match-wins이며
// 빈 키를 포함한 모든 미일치 키는 ErrUnknownProject다.
func (r *Resolver) Resolve(key string) (*config.Project, error) {
	if key == "" {
		return nil, fmt.Errorf("resolver.Resolve: %w", ErrUnknownProject)
	}
	for i := range r.config.Projects {
		p := &r.config.Projects[i]
		for _, alias := range p.Aliases {
			if alias == key {
				return p, nil
			}
		}
	}
	return nil, fmt.Errorf("resolver.Resolve: %w: %s", ErrUnknownProject, key)
}
