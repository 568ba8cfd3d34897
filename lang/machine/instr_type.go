package machine

import "ippcode20/lang/types"

func init() {
	registerHandlers(map[Opcode]handlerFunc{
		TYPE: execType,
	})
}

// execType writes its operand's type tag, or the empty string if it is an
// uninitialized variable — the one place in the language a read doesn't
// raise MISSING_VALUE.
func execType(m *Machine, ops []Operand) error {
	tag, err := m.symbTag(ops[1].(Symb))
	if err != nil {
		return err
	}
	return m.assignVar(ops[0].(Var), types.String(tag))
}
