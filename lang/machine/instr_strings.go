package machine

import "ippcode20/lang/types"

func init() {
	registerHandlers(map[Opcode]handlerFunc{
		CONCAT:  execConcat,
		STRLEN:  execStrlen,
		GETCHAR: execGetchar,
		SETCHAR: execSetchar,
	})
}

func execConcat(m *Machine, ops []Operand) error {
	a, err := m.symbValue(ops[1].(Symb))
	if err != nil {
		return err
	}
	b, err := m.symbValue(ops[2].(Symb))
	if err != nil {
		return err
	}
	as, err := asString(a)
	if err != nil {
		return err
	}
	bs, err := asString(b)
	if err != nil {
		return err
	}
	return m.assignVar(ops[0].(Var), as+bs)
}

func execStrlen(m *Machine, ops []Operand) error {
	v, err := m.symbValue(ops[1].(Symb))
	if err != nil {
		return err
	}
	s, err := asString(v)
	if err != nil {
		return err
	}
	return m.assignVar(ops[0].(Var), types.Int(len([]rune(string(s)))))
}

func execGetchar(m *Machine, ops []Operand) error {
	sv, err := m.symbValue(ops[1].(Symb))
	if err != nil {
		return err
	}
	iv, err := m.symbValue(ops[2].(Symb))
	if err != nil {
		return err
	}
	s, err := asString(sv)
	if err != nil {
		return err
	}
	idx, err := asInt(iv)
	if err != nil {
		return err
	}
	runes := []rune(string(s))
	if idx < 0 || int(idx) >= len(runes) {
		return errInvalidStringOp("character index %d out of range", idx)
	}
	return m.assignVar(ops[0].(Var), types.String(runes[idx]))
}

// execSetchar overwrites the idx-th character of the destination
// variable's own current string value with src's first character; the
// destination's first read is itself subject to missing-value checking,
// since it is both the source of the base string and the assignment
// target.
func execSetchar(m *Machine, ops []Operand) error {
	dst := ops[0].(Var)
	dstVar, err := m.resolveVar(dst)
	if err != nil {
		return err
	}
	base, err := requireInitialized(dstVar)
	if err != nil {
		return err
	}
	baseStr, err := asString(base)
	if err != nil {
		return err
	}

	iv, err := m.symbValue(ops[1].(Symb))
	if err != nil {
		return err
	}
	sv, err := m.symbValue(ops[2].(Symb))
	if err != nil {
		return err
	}
	idx, err := asInt(iv)
	if err != nil {
		return err
	}
	src, err := asString(sv)
	if err != nil {
		return err
	}
	if len(src) == 0 {
		return errInvalidStringOp("SETCHAR source string is empty")
	}

	runes := []rune(string(baseStr))
	if idx < 0 || int(idx) >= len(runes) {
		return errInvalidStringOp("character index %d out of range", idx)
	}
	runes[idx] = []rune(string(src))[0]
	dstVar.Set(types.String(string(runes)))
	return nil
}
