// Package maincmd implements the IPPcode20 interpreter's command-line
// driver. It is deliberately thin: it owns flag parsing, file handling and
// exit-code mapping, and delegates every interpreter decision to
// lang/loader and lang/machine, which know nothing about the CLI.
package maincmd

import (
	"errors"
	"fmt"

	"github.com/mna/mainer"
)

const binName = "ippcode20"

// CLI-layer exit codes; the instruction-set and loader codes are returned
// by lang/machine and lang/loader themselves through their ExitCode()
// methods.
const (
	exitSuccess  = 0
	exitBadCLI   = 10
	exitInputErr = 11
	exitOutErr   = 12
	exitInternal = 99
)

var (
	shortUsage = fmt.Sprintf(`
usage: %s [--source PATH] [--input PATH] [--stats PATH [--insts] [--vars]]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...]
       %[1]s -h|--help

Interpreter for IPPcode20, a three-address XML intermediate language.

Valid flag options are:
       -h --help                 Show this help and exit.
       --source PATH             Read the XML source from PATH instead
                                 of stdin.
       --input PATH              Read data for READ instructions from
                                 PATH instead of stdin.
       --stats PATH              Write execution statistics to PATH.
       --insts                  Write the number of executed
                                 instructions (requires --stats).
       --vars                   Write the maximum number of
                                 simultaneously initialized variables
                                 (requires --stats).

At least one of --source or --input is required. --help cannot be
combined with any other flag. --insts/--vars require --stats.
`, binName)
)

// Cmd is the interpreter's CLI surface, parsed by mainer.Parser from the
// struct's flag tags.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help bool `flag:"h,help"`

	Source string `flag:"source"`
	Input  string `flag:"input"`
	Stats  string `flag:"stats"`
	Insts  bool   `flag:"insts"`
	Vars   bool   `flag:"vars"`

	args      []string
	flags     map[string]bool
	statOrder []string
}

func (c *Cmd) SetArgs(args []string)         { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) { c.flags = flags }

// Validate enforces the CLI's flag-combination rules once mainer has
// populated the struct's fields and c.flags with which flags were
// actually supplied.
func (c *Cmd) Validate() error {
	if c.Help {
		for name, set := range c.flags {
			if set && name != "h" && name != "help" {
				return errors.New("--help cannot be combined with any other flag")
			}
		}
		return nil
	}

	if c.Source == "" && c.Input == "" {
		return errors.New("at least one of --source or --input is required")
	}
	if (c.Insts || c.Vars) && c.Stats == "" {
		return errors.New("--insts/--vars require --stats")
	}
	return nil
}

// Main parses args, dispatches --help, and otherwise runs the interpreter,
// mapping its result to a process exit code.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	c.statOrder = statFlagOrder(args)

	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.ExitCode(exitBadCLI)
	}

	if c.Help {
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.ExitCode(exitSuccess)
	}

	code, err := c.run(stdio)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
	}
	return mainer.ExitCode(code)
}

// statFlagOrder scans the raw CLI arguments (before mainer consumes them)
// to recover the order --insts and --vars were given in, since the
// statistics file must list them in that order, not in struct-field
// order.
func statFlagOrder(args []string) []string {
	var order []string
	for _, a := range args {
		switch a {
		case "--insts":
			order = append(order, "insts")
		case "--vars":
			order = append(order, "vars")
		}
	}
	return order
}
