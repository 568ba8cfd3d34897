package machine

import (
	"unicode/utf8"

	"ippcode20/lang/types"
)

func init() {
	registerHandlers(map[Opcode]handlerFunc{
		INT2CHAR:  execInt2Char,
		STRI2INT:  execStri2Int,
		INT2FLOAT: execInt2Float,
		FLOAT2INT: execFloat2Int,

		INT2CHARS:  execInt2CharS,
		STRI2INTS:  execStri2IntS,
		INT2FLOATS: execInt2FloatS,
		FLOAT2INTS: execFloat2IntS,
	})
}

func execInt2Char(m *Machine, ops []Operand) error {
	v, err := m.symbValue(ops[1].(Symb))
	if err != nil {
		return err
	}
	n, err := asInt(v)
	if err != nil {
		return err
	}
	s, err := int2char(n)
	if err != nil {
		return err
	}
	return m.assignVar(ops[0].(Var), s)
}

func execStri2Int(m *Machine, ops []Operand) error {
	s, err := m.symbValue(ops[1].(Symb))
	if err != nil {
		return err
	}
	i, err := m.symbValue(ops[2].(Symb))
	if err != nil {
		return err
	}
	str, err := asString(s)
	if err != nil {
		return err
	}
	idx, err := asInt(i)
	if err != nil {
		return err
	}
	n, err := stri2int(str, idx)
	if err != nil {
		return err
	}
	return m.assignVar(ops[0].(Var), n)
}

func execInt2Float(m *Machine, ops []Operand) error {
	v, err := m.symbValue(ops[1].(Symb))
	if err != nil {
		return err
	}
	n, err := asInt(v)
	if err != nil {
		return err
	}
	return m.assignVar(ops[0].(Var), types.Float(n))
}

func execFloat2Int(m *Machine, ops []Operand) error {
	v, err := m.symbValue(ops[1].(Symb))
	if err != nil {
		return err
	}
	f, err := asFloat(v)
	if err != nil {
		return err
	}
	return m.assignVar(ops[0].(Var), types.Int(f))
}

func execInt2CharS(m *Machine, _ []Operand) error {
	v, err := m.stack.pop()
	if err != nil {
		return err
	}
	n, err := asInt(v)
	if err != nil {
		return err
	}
	s, err := int2char(n)
	if err != nil {
		return err
	}
	m.stack.push(s)
	return nil
}

func execStri2IntS(m *Machine, _ []Operand) error {
	i, s, err := m.stack.pop2()
	if err != nil {
		return err
	}
	str, err := asString(s)
	if err != nil {
		return err
	}
	idx, err := asInt(i)
	if err != nil {
		return err
	}
	n, err := stri2int(str, idx)
	if err != nil {
		return err
	}
	m.stack.push(n)
	return nil
}

func execInt2FloatS(m *Machine, _ []Operand) error {
	v, err := m.stack.pop()
	if err != nil {
		return err
	}
	n, err := asInt(v)
	if err != nil {
		return err
	}
	m.stack.push(types.Float(n))
	return nil
}

func execFloat2IntS(m *Machine, _ []Operand) error {
	v, err := m.stack.pop()
	if err != nil {
		return err
	}
	f, err := asFloat(v)
	if err != nil {
		return err
	}
	m.stack.push(types.Int(f))
	return nil
}

// int2char converts a Unicode code point to its one-character string, or an
// INVALID_STRING_OPERATION error if n is not a valid code point.
func int2char(n types.Int) (types.String, error) {
	if n < 0 || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
		return "", errInvalidStringOp("invalid character ordinal %d", n)
	}
	return types.String(string(rune(n))), nil
}

// stri2int returns the code point of s's idx-th character, or an
// INVALID_STRING_OPERATION error if idx is out of range.
func stri2int(s types.String, idx types.Int) (types.Int, error) {
	runes := []rune(string(s))
	if idx < 0 || int(idx) >= len(runes) {
		return 0, errInvalidStringOp("character index %d out of range", idx)
	}
	return types.Int(runes[idx]), nil
}
