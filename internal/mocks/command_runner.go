package mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// FakeCommandRunner records invocations instead of executing them.
type FakeCommandRunner struct {
	mu sync.Mutex

	// Installed lists the executables LookPath resolves.
	Installed map[string]string
	// Stdout is written to the stdout writer of every successful Run.
	Stdout string
	// FailOn makes Run fail for invocations whose joined argv contains the key.
	FailOn map[string]string
	// Report is written to the path following "--output", if set.
	Report string

	Calls [][]string
}

// NewFakeCommandRunner creates a runner where the given executables are installed.
func NewFakeCommandRunner(installed ...string) *FakeCommandRunner {
	f := &FakeCommandRunner{
		Installed: make(map[string]string),
		FailOn:    make(map[string]string),
	}
	for _, name := range installed {
		f.Installed[name] = "/usr/local/bin/" + name
	}
	return f
}

// LookPath resolves name from Installed.
func (f *FakeCommandRunner) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.Installed[name]; ok {
		return p, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

// Run records the call and simulates the command.
func (f *FakeCommandRunner) Run(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	argv := append([]string{name}, args...)
	f.Calls = append(f.Calls, argv)

	joined := strings.Join(argv, " ")
	for key, msg := range f.FailOn {
		if strings.Contains(joined, key) {
			_, _ = io.WriteString(stderr, msg+"\n")
			return errors.New(msg)
		}
	}

	for i, a := range args {
		if a == "--output" && i+1 < len(args) && f.Report != "" {
			if err := os.WriteFile(args[i+1], []byte(f.Report), 0o644); err != nil {
				return err
			}
		}
	}

	if f.Stdout != "" {
		_, _ = io.WriteString(stdout, f.Stdout)
	}
	return nil
}

// CallCount returns the number of recorded Run calls.
func (f *FakeCommandRunner) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}
