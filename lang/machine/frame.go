package machine

import (
	"github.com/dolthub/swiss"
)

// Frame is an insertion-irrelevant mapping from variable name to Variable,
// backed by an open-addressing hash map since a frame is read on every
// single instruction that touches a variable.
type Frame struct {
	vars *swiss.Map[string, *Variable]
}

// NewFrame returns an empty frame ready to receive DEFVARs.
func NewFrame() *Frame {
	return &Frame{vars: swiss.NewMap[string, *Variable](8)}
}

// Declare creates a new variable named ident in the frame. Declaring a
// name that already exists in this frame is a semantic error.
func (f *Frame) Declare(ident string) error {
	if _, ok := f.vars.Get(ident); ok {
		return errSemantic("variable %q already declared in this frame", ident)
	}
	f.vars.Put(ident, &Variable{Name: ident})
	return nil
}

// Lookup returns the named variable, or an unknown-variable error if the
// frame has no such name.
func (f *Frame) Lookup(ident string) (*Variable, error) {
	v, ok := f.vars.Get(ident)
	if !ok {
		return nil, errUnknownVariable("unknown variable %q", ident)
	}
	return v, nil
}

// CountInitialized returns the number of variables in the frame that
// currently hold a value, used to compute maxInitializedVariables.
func (f *Frame) CountInitialized() int {
	n := 0
	f.vars.Iter(func(_ string, v *Variable) bool {
		if v.Initialized() {
			n++
		}
		return false
	})
	return n
}
