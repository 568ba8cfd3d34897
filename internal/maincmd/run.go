package maincmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mna/mainer"

	"ippcode20/lang/loader"
	"ippcode20/lang/machine"
)

// exitCoder is satisfied by both loader.LoadError and machine.RuntimeError,
// letting run map either layer's failure straight to a process exit code
// without inspecting error text.
type exitCoder interface {
	error
	ExitCode() int
}

// run opens the configured source/input files, loads and binds the
// program, executes it, and writes the statistics file, translating any
// failure into the exit code the driver reports. The interpreter runs
// synchronously to completion: it has no suspension points and nothing to
// cancel mid-instruction, so there is no wrapper here to stop it early —
// doing so would leave the program's files and streams in use by a
// goroutine the caller can no longer observe.
func (c *Cmd) run(stdio mainer.Stdio) (int, error) {
	source, closeSource, err := c.openSource(stdio)
	if err != nil {
		return exitInputErr, err
	}
	defer closeSource()

	input, closeInput, err := c.openInput(stdio)
	if err != nil {
		return exitInputErr, err
	}
	defer closeInput()

	raws, err := loader.Load(source)
	if err != nil {
		return exitCodeOf(err), err
	}

	m, err := machine.New(raws, input, stdio.Stdout, stdio.Stderr)
	if err != nil {
		return exitCodeOf(err), err
	}

	if err := m.Run(); err != nil {
		return exitCodeOf(err), err
	}

	if c.Stats != "" {
		if err := c.writeStats(m); err != nil {
			return exitOutErr, err
		}
	}

	return m.StopCode(), nil
}

func exitCodeOf(err error) int {
	if ec, ok := err.(exitCoder); ok {
		return ec.ExitCode()
	}
	return exitInternal
}

func (c *Cmd) openSource(stdio mainer.Stdio) (io.Reader, func(), error) {
	if c.Source == "" {
		return stdio.Stdin, func() {}, nil
	}
	f, err := os.Open(c.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("opening --source file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func (c *Cmd) openInput(stdio mainer.Stdio) (io.Reader, func(), error) {
	if c.Input == "" {
		return stdio.Stdin, func() {}, nil
	}
	f, err := os.Open(c.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("opening --input file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// writeStats writes one decimal integer per line, one line per requested
// statistic, in the order --insts/--vars appeared on the command line.
func (c *Cmd) writeStats(m *machine.Machine) error {
	f, err := os.Create(c.Stats)
	if err != nil {
		return fmt.Errorf("creating --stats file: %w", err)
	}
	defer f.Close()

	var lines []string
	for _, stat := range c.statOrder {
		switch stat {
		case "insts":
			lines = append(lines, fmt.Sprintf("%d", m.ExecutedInstructions()))
		case "vars":
			lines = append(lines, fmt.Sprintf("%d", m.MaxInitializedVariables()))
		}
	}
	_, err = io.WriteString(f, strings.Join(lines, "\n")+"\n")
	return err
}
