package machine

import "ippcode20/lang/types"

func init() {
	registerHandlers(map[Opcode]handlerFunc{
		ADD:  execAdd,
		SUB:  execSub,
		MUL:  execMul,
		IDIV: execIdiv,
		DIV:  execDiv,

		ADDS:  execAddS,
		SUBS:  execSubS,
		MULS:  execMulS,
		IDIVS: execIdivS,
		DIVS:  execDivS,
	})
}

func execAdd(m *Machine, ops []Operand) error {
	return binaryArith(m, ops, addValues)
}

func execSub(m *Machine, ops []Operand) error {
	return binaryArith(m, ops, subValues)
}

func execMul(m *Machine, ops []Operand) error {
	return binaryArith(m, ops, mulValues)
}

func execIdiv(m *Machine, ops []Operand) error {
	return binaryArith(m, ops, idivValues)
}

func execDiv(m *Machine, ops []Operand) error {
	return binaryArith(m, ops, divValues)
}

type arithFunc func(a, b types.Value) (types.Value, error)

// binaryArith reads the two symb operands, validates them as a matching
// int or float pair, applies fn and assigns the result to the destination
// var — the shape shared by ADD/SUB/MUL/IDIV/DIV.
func binaryArith(m *Machine, ops []Operand, fn arithFunc) error {
	a, err := m.symbValue(ops[1].(Symb))
	if err != nil {
		return err
	}
	b, err := m.symbValue(ops[2].(Symb))
	if err != nil {
		return err
	}
	if err := checkNumericPair(a, b); err != nil {
		return err
	}
	res, err := fn(a, b)
	if err != nil {
		return err
	}
	return m.assignVar(ops[0].(Var), res)
}

func execAddS(m *Machine, _ []Operand) error  { return stackArith(m, addValues) }
func execSubS(m *Machine, _ []Operand) error  { return stackArith(m, subValues) }
func execMulS(m *Machine, _ []Operand) error  { return stackArith(m, mulValues) }
func execIdivS(m *Machine, _ []Operand) error { return stackArith(m, idivValues) }
func execDivS(m *Machine, _ []Operand) error  { return stackArith(m, divValues) }

// stackArith pops b then a (a was pushed first), computes fn(a, b) and
// pushes the result, matching PUSHS order.
func stackArith(m *Machine, fn arithFunc) error {
	b, a, err := m.stack.pop2()
	if err != nil {
		return err
	}
	if err := checkNumericPair(a, b); err != nil {
		return err
	}
	res, err := fn(a, b)
	if err != nil {
		return err
	}
	m.stack.push(res)
	return nil
}

func addValues(a, b types.Value) (types.Value, error) {
	if a.Tag() == types.TagInt {
		ai, bi := a.(types.Int), b.(types.Int)
		return ai + bi, nil
	}
	af, bf := a.(types.Float), b.(types.Float)
	return af + bf, nil
}

func subValues(a, b types.Value) (types.Value, error) {
	if a.Tag() == types.TagInt {
		ai, bi := a.(types.Int), b.(types.Int)
		return ai - bi, nil
	}
	af, bf := a.(types.Float), b.(types.Float)
	return af - bf, nil
}

func mulValues(a, b types.Value) (types.Value, error) {
	if a.Tag() == types.TagInt {
		ai, bi := a.(types.Int), b.(types.Int)
		return ai * bi, nil
	}
	af, bf := a.(types.Float), b.(types.Float)
	return af * bf, nil
}

// idivValues is integer division; it requires both operands be int and
// rejects division by zero.
func idivValues(a, b types.Value) (types.Value, error) {
	if a.Tag() != types.TagInt {
		return nil, errBadOperands("IDIV requires int operands, got %s", a.Tag())
	}
	ai, bi := a.(types.Int), b.(types.Int)
	if bi == 0 {
		return nil, errBadOperandValue("division by zero")
	}
	return ai / bi, nil
}

// divValues is floating point division; it requires both operands be
// float and rejects division by zero.
func divValues(a, b types.Value) (types.Value, error) {
	if a.Tag() != types.TagFloat {
		return nil, errBadOperands("DIV requires float operands, got %s", a.Tag())
	}
	af, bf := a.(types.Float), b.(types.Float)
	if bf == 0 {
		return nil, errBadOperandValue("division by zero")
	}
	return af / bf, nil
}
