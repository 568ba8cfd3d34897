package machine

import (
	"bufio"
	"io"

	"ippcode20/lang/loader"
	"ippcode20/lang/types"
)

// Instruction is a bound, executable instruction: a known Opcode plus
// already kind-checked Operands. Every Instruction is the same struct; the
// opcode selects its handler out of the handlers table.
type Instruction struct {
	Op       Opcode
	Operands []Operand
}

// state is the executor's state machine: load-time errors happen in
// binding, runtime errors in running, and any of EXIT, falling off the
// end, or an unrecovered error moves to halted.
type state int

const (
	binding state = iota
	running
	halted
)

// Machine is the fetch-execute engine: the bound instruction stream, the
// label table and program counter, the call stack, the frame model, the
// data stack, and the two counters an external driver reads back after
// the run completes.
type Machine struct {
	instrs []Instruction
	labels map[string]int

	pc        int
	callStack []int
	state     state
	stopCode  int

	frames *FrameModel
	stack  dataStack

	stdin  *bufio.Reader
	stdout io.Writer
	stderr io.Writer

	executedInstructions int
}

// New binds a loaded program: it resolves each opcode (case-insensitive),
// constructs typed Operands from the raw (type, text) pairs, checks every
// instruction's operand kinds against its opcode, and builds the label
// table. Stdin/stdout/stderr are injected by the caller rather than bound
// to the process's own standard streams, so a driver can redirect them
// (e.g. --input substituting for stdin) without the engine knowing.
func New(raws []loader.RawInstruction, stdin io.Reader, stdout, stderr io.Writer) (*Machine, error) {
	m := &Machine{
		frames: NewFrameModel(),
		labels: make(map[string]int),
		stdin:  bufio.NewReader(stdin),
		stdout: stdout,
		stderr: stderr,
		state:  binding,
	}

	m.instrs = make([]Instruction, len(raws))
	for i, raw := range raws {
		instr, err := bindInstruction(raw)
		if err != nil {
			return nil, err
		}
		m.instrs[i] = instr
		if instr.Op == LABEL {
			name := instr.Operands[0].(Label).Name
			if _, dup := m.labels[name]; dup {
				return nil, errSemantic("duplicate label %q", name)
			}
			m.labels[name] = i
		}
	}
	return m, nil
}

func bindInstruction(raw loader.RawInstruction) (Instruction, error) {
	op, ok := ParseOpcode(raw.Opcode)
	if !ok {
		return Instruction{}, errUnknownOpcode(raw.Opcode)
	}

	kinds := operandKinds[op]
	if len(kinds) != len(raw.Operands) {
		return Instruction{}, errBadArity(op, len(kinds), len(raw.Operands))
	}

	operands := make([]Operand, len(raw.Operands))
	for i, rawOp := range raw.Operands {
		built, err := buildOperand(rawOp)
		if err != nil {
			return Instruction{}, err
		}
		if !kindMatches(kinds[i], built) {
			return Instruction{}, errOperandKind(op, i, kinds[i])
		}
		operands[i] = built
	}
	return Instruction{Op: op, Operands: operands}, nil
}

func kindMatches(expected OperandKind, got Operand) bool {
	switch expected {
	case KindVar:
		_, ok := got.(Var)
		return ok
	case KindSymb:
		switch got.(type) {
		case Var, Const:
			return true
		}
		return false
	case KindLabel:
		_, ok := got.(Label)
		return ok
	case KindType:
		_, ok := got.(TypeOperand)
		return ok
	}
	return false
}

// buildOperand casts a raw (type, text) pair into a typed Operand.
func buildOperand(raw loader.RawOperand) (Operand, error) {
	switch raw.Type {
	case "var":
		return Var{QName: raw.Text}, nil
	case "label":
		return Label{Name: raw.Text}, nil
	case "type":
		tag, ok := types.ParseTag(raw.Text)
		if !ok {
			return nil, errInvalidInput("unknown type operand %q", raw.Text)
		}
		return TypeOperand{Tag: tag}, nil
	case "nil":
		return Const{Value: types.Nil}, nil
	case "bool":
		return Const{Value: parseBoolLiteral(raw.Text)}, nil
	case "int":
		v, err := parseIntLiteral(raw.Text)
		if err != nil {
			return nil, err
		}
		return Const{Value: v}, nil
	case "float":
		v, err := types.ParseFloat(raw.Text)
		if err != nil {
			return nil, errInvalidInput("invalid float literal %q", raw.Text)
		}
		return Const{Value: v}, nil
	case "string":
		v, err := types.DecodeString(raw.Text)
		if err != nil {
			return nil, errInvalidInput("invalid string literal %q", raw.Text)
		}
		return Const{Value: v}, nil
	default:
		return nil, errInvalidInput("unknown operand type %q", raw.Type)
	}
}

// Run drives the fetch-execute loop to completion: EXIT sets the stop
// code explicitly, falling off the end of the program stops with code 0.
func (m *Machine) Run() error {
	m.state = running
	for m.pc < len(m.instrs) {
		instr := m.nextInstruction()

		if instr.Op == LABEL {
			// no-op at run time; indexed during binding
			m.afterExecute()
			continue
		}

		fn, ok := handlers[instr.Op]
		if !ok {
			return newError(ExitInternalError, "no handler registered for opcode %s", instr.Op)
		}
		if err := fn(m, instr.Operands); err != nil {
			m.state = halted
			return err
		}
		m.afterExecute()
		if m.state == halted {
			return nil
		}
	}
	m.state = halted
	return nil
}

// nextInstruction returns the instruction at the current pc and advances
// it.
func (m *Machine) nextInstruction() Instruction {
	instr := m.instrs[m.pc]
	m.pc++
	return instr
}

func (m *Machine) afterExecute() {
	m.executedInstructions++
	m.frames.UpdateMaxInitialized()
}

// jumpTo sets pc to label's instruction index, or a semantic error if the
// label is unknown.
func (m *Machine) jumpTo(label string) error {
	idx, ok := m.labels[label]
	if !ok {
		return errSemantic("jump to unknown label %q", label)
	}
	m.pc = idx
	return nil
}

// call pushes the index of the instruction immediately following CALL (pc
// already points past it, having been incremented during fetch) and jumps.
func (m *Machine) call(label string) error {
	m.callStack = append(m.callStack, m.pc)
	return m.jumpTo(label)
}

// ret pops the call stack and resumes there, or MISSING_VALUE if it is
// empty.
func (m *Machine) ret() error {
	if len(m.callStack) == 0 {
		return errMissingValue("call stack is empty")
	}
	n := len(m.callStack) - 1
	m.pc = m.callStack[n]
	m.callStack = m.callStack[:n]
	return nil
}

// exit halts the machine with the given stop code.
func (m *Machine) exit(code int) {
	m.stopCode = code
	m.state = halted
}

// StopCode is the process exit code this run should report: the operand
// of an explicit EXIT, or 0 if the program ran to completion normally.
func (m *Machine) StopCode() int { return m.stopCode }

// ExecutedInstructions is the number of instructions fully executed
// without raising, for --insts statistics.
func (m *Machine) ExecutedInstructions() int { return m.executedInstructions }

// MaxInitializedVariables is the running maximum of initialized variables
// across all live frames, for --vars statistics.
func (m *Machine) MaxInitializedVariables() int { return m.frames.MaxInitialized() }
