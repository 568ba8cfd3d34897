// Package scenariotest runs a complete IPPcode20 program through
// lang/loader and lang/machine and diffs its captured stdout/stderr/exit
// code against an expected transcript. The "golden" value is given inline
// by the test table rather than read from a sibling file, since scenarios
// are short enough to write directly in Go.
package scenariotest

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/diff"

	"ippcode20/lang/loader"
	"ippcode20/lang/machine"
)

// Scenario is one runnable IPPcode20 program and its expected observable
// behavior.
type Scenario struct {
	Name       string
	Source     string // XML program text
	Input      string // stdin fed to READ
	WantStdout string
	WantStderr string // substring; empty means "don't check"
	WantExit   int
}

// Run loads and executes Source, then diffs the actual transcript against
// the Scenario's expectations, failing t with a readable diff on mismatch.
func Run(t *testing.T, sc Scenario) {
	t.Helper()

	raws, err := loader.Load(strings.NewReader(sc.Source))
	if err != nil {
		diffExit(t, sc, exitCodeOf(err))
		return
	}

	var stdout, stderr bytes.Buffer
	m, err := machine.New(raws, strings.NewReader(sc.Input), &stdout, &stderr)
	if err != nil {
		diffExit(t, sc, exitCodeOf(err))
		return
	}

	runErr := m.Run()
	gotExit := m.StopCode()
	if runErr != nil {
		gotExit = exitCodeOf(runErr)
	}

	if patch := diff.Diff(sc.WantStdout, stdout.String()); patch != "" {
		t.Errorf("%s: stdout diff:\n%s", sc.Name, patch)
	}
	if sc.WantStderr != "" && !strings.Contains(stderr.String(), sc.WantStderr) {
		t.Errorf("%s: stderr %q does not contain %q", sc.Name, stderr.String(), sc.WantStderr)
	}
	if gotExit != sc.WantExit {
		t.Errorf("%s: exit code = %d, want %d", sc.Name, gotExit, sc.WantExit)
	}
}

func diffExit(t *testing.T, sc Scenario, gotExit int) {
	t.Helper()
	if gotExit != sc.WantExit {
		t.Errorf("%s: exit code = %d, want %d", sc.Name, gotExit, sc.WantExit)
	}
}

type exitCoder interface {
	error
	ExitCode() int
}

func exitCodeOf(err error) int {
	if ec, ok := err.(exitCoder); ok {
		return ec.ExitCode()
	}
	return -1
}

// FormatInt is a small convenience for scenario tables that build
// WantStdout by concatenating WRITE results.
func FormatInt(n int) string { return strconv.Itoa(n) }
