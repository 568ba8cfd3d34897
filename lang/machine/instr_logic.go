package machine

import "ippcode20/lang/types"

func init() {
	registerHandlers(map[Opcode]handlerFunc{
		AND: execAnd,
		OR:  execOr,
		NOT: execNot,

		ANDS: execAndS,
		ORS:  execOrS,
		NOTS: execNotS,
	})
}

func execAnd(m *Machine, ops []Operand) error { return binaryLogic(m, ops, func(a, b bool) bool { return a && b }) }
func execOr(m *Machine, ops []Operand) error  { return binaryLogic(m, ops, func(a, b bool) bool { return a || b }) }

func binaryLogic(m *Machine, ops []Operand, fn func(a, b bool) bool) error {
	a, err := m.symbValue(ops[1].(Symb))
	if err != nil {
		return err
	}
	b, err := m.symbValue(ops[2].(Symb))
	if err != nil {
		return err
	}
	ab, err := asBool(a)
	if err != nil {
		return err
	}
	bb, err := asBool(b)
	if err != nil {
		return err
	}
	return m.assignVar(ops[0].(Var), types.Bool(fn(bool(ab), bool(bb))))
}

func execNot(m *Machine, ops []Operand) error {
	a, err := m.symbValue(ops[1].(Symb))
	if err != nil {
		return err
	}
	ab, err := asBool(a)
	if err != nil {
		return err
	}
	return m.assignVar(ops[0].(Var), types.Bool(!ab))
}

func execAndS(m *Machine, _ []Operand) error {
	return stackLogic(m, func(a, b bool) bool { return a && b })
}

func execOrS(m *Machine, _ []Operand) error {
	return stackLogic(m, func(a, b bool) bool { return a || b })
}

func stackLogic(m *Machine, fn func(a, b bool) bool) error {
	b, a, err := m.stack.pop2()
	if err != nil {
		return err
	}
	ab, err := asBool(a)
	if err != nil {
		return err
	}
	bb, err := asBool(b)
	if err != nil {
		return err
	}
	m.stack.push(types.Bool(fn(bool(ab), bool(bb))))
	return nil
}

func execNotS(m *Machine, _ []Operand) error {
	v, err := m.stack.pop()
	if err != nil {
		return err
	}
	b, err := asBool(v)
	if err != nil {
		return err
	}
	m.stack.push(types.Bool(!b))
	return nil
}
