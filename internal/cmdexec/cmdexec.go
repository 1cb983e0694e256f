// Package cmdexec abstracts external command execution for testability.
// Production code uses Commander interface; tests inject FakeCommander from testutil.
package cmdexec

import (
	"context"
	"os/exec"
)

// Commander abstracts external command execution.
type Commander interface {
	// Run executes an external command and returns its combined output.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// RealCommander executes actual external commands via os/exec.
type RealCommander struct{}

// Run executes the command using os/exec.CommandContext.
func (c *RealCommander) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
