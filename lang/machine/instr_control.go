package machine

import "ippcode20/lang/types"

func init() {
	registerHandlers(map[Opcode]handlerFunc{
		CALL:       execCall,
		RETURN:     execReturn,
		JUMP:       execJump,
		JUMPIFEQ:   execJumpIfEq,
		JUMPIFNEQ:  execJumpIfNeq,
		EXIT:       execExit,
		JUMPIFEQS:  execJumpIfEqS,
		JUMPIFNEQS: execJumpIfNeqS,
	})
}

func execCall(m *Machine, ops []Operand) error {
	return m.call(ops[0].(Label).Name)
}

func execReturn(m *Machine, _ []Operand) error {
	return m.ret()
}

func execJump(m *Machine, ops []Operand) error {
	return m.jumpTo(ops[0].(Label).Name)
}

func execJumpIfEq(m *Machine, ops []Operand) error {
	eq, err := compareEqual(m, ops[1].(Symb), ops[2].(Symb))
	if err != nil {
		return err
	}
	if eq {
		return m.jumpTo(ops[0].(Label).Name)
	}
	return nil
}

func execJumpIfNeq(m *Machine, ops []Operand) error {
	eq, err := compareEqual(m, ops[1].(Symb), ops[2].(Symb))
	if err != nil {
		return err
	}
	if !eq {
		return m.jumpTo(ops[0].(Label).Name)
	}
	return nil
}

func execJumpIfEqS(m *Machine, ops []Operand) error {
	b, a, err := m.stack.pop2()
	if err != nil {
		return err
	}
	eq, err := valuesEqual(a, b)
	if err != nil {
		return err
	}
	if eq {
		return m.jumpTo(ops[0].(Label).Name)
	}
	return nil
}

func execJumpIfNeqS(m *Machine, ops []Operand) error {
	b, a, err := m.stack.pop2()
	if err != nil {
		return err
	}
	eq, err := valuesEqual(a, b)
	if err != nil {
		return err
	}
	if !eq {
		return m.jumpTo(ops[0].(Label).Name)
	}
	return nil
}

// compareEqual resolves two Symb operands and reports whether they are
// equal, applying the same nil-permissive rule JUMPIFEQ/JUMPIFNEQ share
// with EQ.
func compareEqual(m *Machine, x, y Symb) (bool, error) {
	a, err := m.symbValue(x)
	if err != nil {
		return false, err
	}
	b, err := m.symbValue(y)
	if err != nil {
		return false, err
	}
	return valuesEqual(a, b)
}

func valuesEqual(a, b types.Value) (bool, error) {
	if err := checkSameTag(a, b, true); err != nil {
		return false, err
	}
	if a.Tag() == types.TagNil || b.Tag() == types.TagNil {
		return a.Tag() == b.Tag(), nil
	}
	ord, ok := a.(types.Ordered)
	if !ok {
		return false, errBadOperands("values of type %s are not comparable", a.Tag())
	}
	return ord.Cmp(b) == 0, nil
}

// execExit validates the EXIT operand is an int in [0, 49] and halts the
// machine with that stop code.
func execExit(m *Machine, ops []Operand) error {
	val, err := m.symbValue(ops[0].(Symb))
	if err != nil {
		return err
	}
	code, err := asInt(val)
	if err != nil {
		return err
	}
	if code < 0 || code > 49 {
		return errBadOperandValue("exit code %d out of range [0, 49]", code)
	}
	m.exit(int(code))
	return nil
}
