package machine

func init() {
	registerHandlers(map[Opcode]handlerFunc{
		DEFVAR:      execDefvar,
		MOVE:        execMove,
		CREATEFRAME: execCreateFrame,
		PUSHFRAME:   execPushFrame,
		POPFRAME:    execPopFrame,
	})
}

func execDefvar(m *Machine, ops []Operand) error {
	v := ops[0].(Var)
	return m.frames.Defvar(v.QName)
}

func execMove(m *Machine, ops []Operand) error {
	dst := ops[0].(Var)
	val, err := m.symbValue(ops[1].(Symb))
	if err != nil {
		return err
	}
	return m.assignVar(dst, val)
}

func execCreateFrame(m *Machine, _ []Operand) error {
	m.frames.CreateFrame()
	return nil
}

func execPushFrame(m *Machine, _ []Operand) error {
	return m.frames.PushFrame()
}

func execPopFrame(m *Machine, _ []Operand) error {
	return m.frames.PopFrame()
}
