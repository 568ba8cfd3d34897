package machine

import "ippcode20/lang/types"

// Variable is a named slot in a Frame. Created by DEFVAR, it starts
// uninitialized (no value, no type) and is given a value and type by MOVE
// and every other instruction that writes to a var operand.
type Variable struct {
	Name  string
	Value types.Value
	Type  types.Tag
}

// Initialized reports whether the variable currently holds a value.
func (v *Variable) Initialized() bool {
	return v.Type != ""
}

// Set gives the variable a value and records its tag: a variable's Type
// is always exactly the tag of its Value, unless it is uninitialized.
func (v *Variable) Set(val types.Value) {
	v.Value = val
	v.Type = val.Tag()
}
