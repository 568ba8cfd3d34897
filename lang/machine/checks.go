package machine

import "ippcode20/lang/types"

// resolveVar looks up the live *Variable a Var operand currently names. It
// re-resolves through the FrameModel on every call; nothing upstream may
// cache the result, since CREATEFRAME/PUSHFRAME/POPFRAME can change which
// frame a prefix like LF or TF refers to between two reads of the same
// operand.
func (m *Machine) resolveVar(v Var) (*Variable, error) {
	return m.frames.Lookup(v.QName)
}

// requireInitialized returns the variable's value, or a missing-value error
// if it has never been assigned. Every symb read except TYPE's argument
// goes through this.
func requireInitialized(v *Variable) (types.Value, error) {
	if !v.Initialized() {
		return nil, errMissingValue("variable %q has no value", v.Name)
	}
	return v.Value, nil
}

// symbValue resolves any Symb operand (Var or Const) to its current value,
// raising missing-value on an uninitialized variable.
func (m *Machine) symbValue(s Symb) (types.Value, error) {
	switch op := s.(type) {
	case Var:
		v, err := m.resolveVar(op)
		if err != nil {
			return nil, err
		}
		return requireInitialized(v)
	case Const:
		return op.Value, nil
	default:
		return nil, errBadOperands("unsupported symb operand %T", s)
	}
}

// symbTag resolves a Symb operand to its tag without raising on an
// uninitialized variable — the one case that needs this is TYPE's operand.
func (m *Machine) symbTag(s Symb) (types.Tag, error) {
	switch op := s.(type) {
	case Var:
		v, err := m.resolveVar(op)
		if err != nil {
			return "", err
		}
		return v.Type, nil
	case Const:
		return op.Value.Tag(), nil
	default:
		return "", errBadOperands("unsupported symb operand %T", s)
	}
}

// assignVar writes a value to the Variable a Var operand names.
func (m *Machine) assignVar(v Var, val types.Value) error {
	dst, err := m.resolveVar(v)
	if err != nil {
		return err
	}
	dst.Set(val)
	return nil
}

// checkSameTag requires a and b to share a tag, returning a BAD_OPERANDS
// error on mismatch. allowNil additionally permits either side to be nil
// (used by EQ/EQS/JUMPIFEQ/JUMPIFNEQ).
func checkSameTag(a, b types.Value, allowNil bool) error {
	if a.Tag() == b.Tag() {
		return nil
	}
	if allowNil && (a.Tag() == types.TagNil || b.Tag() == types.TagNil) {
		return nil
	}
	return errBadOperands("operand type mismatch: %s vs %s", a.Tag(), b.Tag())
}

// checkNumericPair requires a and b to be the same tag and either both int
// or both float, as ADD/SUB/MUL (and their S-suffixed variants) need.
func checkNumericPair(a, b types.Value) error {
	if a.Tag() != b.Tag() {
		return errBadOperands("operand type mismatch: %s vs %s", a.Tag(), b.Tag())
	}
	if a.Tag() != types.TagInt && a.Tag() != types.TagFloat {
		return errBadOperands("expected int or float operands, got %s", a.Tag())
	}
	return nil
}

func asInt(v types.Value) (types.Int, error) {
	i, ok := v.(types.Int)
	if !ok {
		return 0, errBadOperands("expected int, got %s", v.Tag())
	}
	return i, nil
}

func asFloat(v types.Value) (types.Float, error) {
	f, ok := v.(types.Float)
	if !ok {
		return 0, errBadOperands("expected float, got %s", v.Tag())
	}
	return f, nil
}

func asString(v types.Value) (types.String, error) {
	s, ok := v.(types.String)
	if !ok {
		return "", errBadOperands("expected string, got %s", v.Tag())
	}
	return s, nil
}

func asBool(v types.Value) (types.Bool, error) {
	b, ok := v.(types.Bool)
	if !ok {
		return false, errBadOperands("expected bool, got %s", v.Tag())
	}
	return b, nil
}
