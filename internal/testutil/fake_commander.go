package testutil

import (
	"context"
	"strings"
	"sync"
)

// FakeCommander is a cmdexec.Commander that returns canned outputs instead of
// executing real commands. Keys are the command name joined with its args by
// a single space; unmatched commands fall back to DefaultOutput/DefaultErr.
type FakeCommander struct {
	mu sync.Mutex

	Outputs       map[string][]byte
	Errs          map[string]error
	DefaultOutput []byte
	DefaultErr    error

	// Calls records every invocation in order.
	Calls []string
}

// NewFakeCommander creates a FakeCommander with empty canned tables.
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{
		Outputs: make(map[string][]byte),
		Errs:    make(map[string]error),
	}
}

// Stub registers a canned output and error for the given command line.
func (f *FakeCommander) Stub(cmdline string, out []byte, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Outputs[cmdline] = out
	f.Errs[cmdline] = err
}

// Run returns the canned output for the command line.
func (f *FakeCommander) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := strings.Join(append([]string{name}, args...), " ")
	f.Calls = append(f.Calls, key)

	if out, ok := f.Outputs[key]; ok {
		return out, f.Errs[key]
	}
	return f.DefaultOutput, f.DefaultErr
}
