package machine

import "ippcode20/lang/types"

func init() {
	registerHandlers(map[Opcode]handlerFunc{
		LT: execLt,
		GT: execGt,
		EQ: execEq,

		LTS: execLtS,
		GTS: execGtS,
		EQS: execEqS,
	})
}

func execLt(m *Machine, ops []Operand) error { return binaryRelational(m, ops, ltValues) }
func execGt(m *Machine, ops []Operand) error { return binaryRelational(m, ops, gtValues) }
func execEq(m *Machine, ops []Operand) error { return binaryRelational(m, ops, eqValues) }

type relFunc func(a, b types.Value) (bool, error)

func binaryRelational(m *Machine, ops []Operand, fn relFunc) error {
	a, err := m.symbValue(ops[1].(Symb))
	if err != nil {
		return err
	}
	b, err := m.symbValue(ops[2].(Symb))
	if err != nil {
		return err
	}
	res, err := fn(a, b)
	if err != nil {
		return err
	}
	return m.assignVar(ops[0].(Var), types.Bool(res))
}

func execLtS(m *Machine, _ []Operand) error { return stackRelational(m, ltValues) }
func execGtS(m *Machine, _ []Operand) error { return stackRelational(m, gtValues) }
func execEqS(m *Machine, _ []Operand) error { return stackRelational(m, eqValues) }

func stackRelational(m *Machine, fn relFunc) error {
	b, a, err := m.stack.pop2()
	if err != nil {
		return err
	}
	res, err := fn(a, b)
	if err != nil {
		return err
	}
	m.stack.push(types.Bool(res))
	return nil
}

// ltValues and gtValues forbid nil on either side: LT/GT never allow nil,
// unlike EQ.
func ltValues(a, b types.Value) (bool, error) {
	if err := checkSameTag(a, b, false); err != nil {
		return false, err
	}
	ord, ok := a.(types.Ordered)
	if !ok {
		return false, errBadOperands("values of type %s are not ordered", a.Tag())
	}
	return ord.Cmp(b) < 0, nil
}

func gtValues(a, b types.Value) (bool, error) {
	if err := checkSameTag(a, b, false); err != nil {
		return false, err
	}
	ord, ok := a.(types.Ordered)
	if !ok {
		return false, errBadOperands("values of type %s are not ordered", a.Tag())
	}
	return ord.Cmp(b) > 0, nil
}

func eqValues(a, b types.Value) (bool, error) {
	return valuesEqual(a, b)
}
