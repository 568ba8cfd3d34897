package machine

func init() {
	registerHandlers(map[Opcode]handlerFunc{
		PUSHS:  execPushs,
		POPS:   execPops,
		CLEARS: execClears,
	})
}

func execPushs(m *Machine, ops []Operand) error {
	v, err := m.symbValue(ops[0].(Symb))
	if err != nil {
		return err
	}
	m.stack.push(v)
	return nil
}

func execPops(m *Machine, ops []Operand) error {
	v, err := m.stack.pop()
	if err != nil {
		return err
	}
	return m.assignVar(ops[0].(Var), v)
}

func execClears(m *Machine, _ []Operand) error {
	m.stack.clear()
	return nil
}
