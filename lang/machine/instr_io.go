package machine

import (
	"fmt"
	"strings"

	"ippcode20/lang/types"
)

func init() {
	registerHandlers(map[Opcode]handlerFunc{
		READ:   execRead,
		WRITE:  execWrite,
		DPRINT: execDprint,
		BREAK:  execBreak,
	})
}

// execRead reads one line of stdin and parses it as the given type. EOF or
// a failed int/float parse both coerce the destination variable to nil,
// never raising — READ has no runtime error of its own.
func execRead(m *Machine, ops []Operand) error {
	dst := ops[0].(Var)
	tag := ops[1].(TypeOperand).Tag

	line, eof := m.readLine()
	var val types.Value
	switch {
	case eof:
		val = types.Nil
	case tag == types.TagInt:
		if n, err := parseIntLiteral(line); err == nil {
			val = n
		} else {
			val = types.Nil
		}
	case tag == types.TagFloat:
		if f, err := types.ParseFloat(line); err == nil {
			val = f
		} else {
			val = types.Nil
		}
	case tag == types.TagBool:
		val = parseBoolLiteral(line)
	case tag == types.TagString:
		val = types.String(line)
	default:
		val = types.Nil
	}
	return m.assignVar(dst, val)
}

// readLine reads one newline-terminated line from stdin, stripping the
// trailing "\n" and, if present, "\r". It reports eof when no line at all
// could be read.
func (m *Machine) readLine() (line string, eof bool) {
	s, err := m.stdin.ReadString('\n')
	if err != nil && s == "" {
		return "", true
	}
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, false
}

// execWrite renders its operand: bool as "true"/"false", nil as the empty
// string, float as hexadecimal, and int/string as their natural text.
func execWrite(m *Machine, ops []Operand) error {
	v, err := m.symbValue(ops[0].(Symb))
	if err != nil {
		return err
	}
	fmt.Fprint(m.stdout, v.String())
	return nil
}

// execDprint writes its operand to stderr, for debugging a running program
// without disturbing its stdout transcript.
func execDprint(m *Machine, ops []Operand) error {
	v, err := m.symbValue(ops[0].(Symb))
	if err != nil {
		return err
	}
	fmt.Fprint(m.stderr, v.String())
	return nil
}

// execBreak writes a diagnostic snapshot of the interpreter's progress to
// stderr: the current instruction position and the counters the driver
// would otherwise only see after the run ends.
func execBreak(m *Machine, _ []Operand) error {
	fmt.Fprintf(m.stderr, "position %d, executed %d instructions, %d variables initialized\n",
		m.pc, m.executedInstructions, m.frames.MaxInitialized())
	return nil
}
