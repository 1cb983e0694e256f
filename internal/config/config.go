package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// Config는 pyctx 설정 파일의 최상위 구조체다.
type Config struct {
	Version int `toml:"version"`
	// Root는 envs/와 projects/를 담는 워크스페이스 루트다.
	// 비어 있으면 현재 디렉토리를 사용한다.
	Root     string    `toml:"root"`
	Projects []Project `toml:"projects"`
}

// Project는 하나의 프로젝트 정의다. 테이블은 프로세스 수명 동안 불변이다.
type Project struct {
	// Aliases는 이 프로젝트를 가리키는 키 집합이다. 매칭은 대소문자를
	// 구분하는 완전 일치이며, 테이블 순서상 first-match-wins다.
	Aliases []string `toml:"aliases"`
	// EnvPath는 워크스페이스 루트 기준 가상환경 디렉토리다.
	EnvPath string `toml:"env_path"`
	// ProjectPath는 EnvPath 기준 작업 디렉토리다.
	ProjectPath string `toml:"project_path"`
	DisplayName string `toml:"display_name"`
	Hint        string `toml:"hint"`
}

// Name은 프로젝트의 대표 키(첫 번째 alias)를 반환한다.
func (p *Project) Name() string {
	if len(p.Aliases) == 0 {
		return ""
	}
	return p.Aliases[0]
}

const defaultHint = "Run 'jupyter notebook' to start working."

// Default는 내장 프로젝트 테이블을 가진 기본 설정을 반환한다.
func Default() *Config {
	return &Config{
		Version: 1,
		Projects: []Project{
			{
				Aliases:     []string{"econ", "economic"},
				EnvPath:     "envs/economic_indicators",
				ProjectPath: "../../projects/economic_indicators",
				DisplayName: "Economic Indicators",
				Hint:        defaultHint,
			},
			{
				Aliases:     []string{"kpi"},
				EnvPath:     "envs/kpi_recommender",
				ProjectPath: "../../projects/kpi_recommender",
				DisplayName: "KPI Recommender System",
				Hint:        defaultHint,
			},
			{
				Aliases:     []string{"portfolio", "port"},
				EnvPath:     "envs/portfolio_optimization",
				ProjectPath: "../../projects/portfolio_optimization",
				DisplayName: "Portfolio Optimization",
				Hint:        defaultHint,
			},
			{
				Aliases:     []string{"analytics", "product"},
				EnvPath:     "envs/product_analytics",
				ProjectPath: "../../projects/product_analytics",
				DisplayName: "Product Analytics",
				Hint:        defaultHint,
			},
			{
				Aliases:     []string{"roof", "roofmaxx"},
				EnvPath:     "envs/roof_maxx_analytics",
				ProjectPath: "../../projects/roof_maxx_analytics",
				DisplayName: "Roof Maxx Analytics",
				Hint:        "Run 'jupyter notebook' or 'streamlit run app/streamlit_dashboard.py' to start working.",
			},
		},
	}
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 내장 기본 설정을 반환한다 (graceful).
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w: %v", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AbsRoot는 워크스페이스 루트의 절대 경로를 반환한다.
// "~" 접두사는 홈 디렉토리로 확장한다.
func (c *Config) AbsRoot() (string, error) {
	root := c.Root
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("config.AbsRoot: %w", err)
		}
		return cwd, nil
	}

	if root == "~" || strings.HasPrefix(root, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("config.AbsRoot: %w", err)
		}
		root = filepath.Join(home, strings.TrimPrefix(root, "~"))
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("config.AbsRoot: %w", err)
	}
	return abs, nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	// 프로젝트 테이블을 정의하지 않은 설정 파일은 내장 테이블을 쓴다
	if len(c.Projects) == 0 {
		c.Projects = Default().Projects
	}
	for i := range c.Projects {
		if c.Projects[i].Hint == "" {
			c.Projects[i].Hint = defaultHint
		}
	}
}

func (c *Config) validate() error {
	seen := make(map[string]string) // alias -> display_name
	for i, p := range c.Projects {
		if len(p.Aliases) == 0 {
			return fmt.Errorf("config.Load: %w: projects[%d].aliases 필수", ErrConfig, i)
		}
		if p.EnvPath == "" {
			return fmt.Errorf("config.Load: %w: projects[%d].env_path 필수", ErrConfig, i)
		}
		if p.ProjectPath == "" {
			return fmt.Errorf("config.Load: %w: projects[%d].project_path 필수", ErrConfig, i)
		}
		if p.DisplayName == "" {
			return fmt.Errorf("config.Load: %w: projects[%d].display_name 필수", ErrConfig, i)
		}
		for _, alias := range p.Aliases {
			if other, dup := seen[alias]; dup {
				return fmt.Errorf("config.Load: %w: alias %q 충돌 (%s / %s)", ErrConfig, alias, other, p.DisplayName)
			}
			seen[alias] = p.DisplayName
		}
	}
	return nil
}
