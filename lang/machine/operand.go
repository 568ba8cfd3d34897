package machine

import "ippcode20/lang/types"

// Operand is one of the four operand shapes an instruction argument can
// take: Var, Const, Label or TypeOperand. Binding checks an instruction's
// declared operand kinds against the concrete Operand values it was given;
// execution then asks the operand for its value/type through Machine,
// never caching the result across instructions, since Var re-resolves
// through the FrameModel on every access.
type Operand interface {
	operand()
}

// Var is a variable reference "PREFIX@ident", late-bound to a frame slot at
// each use.
type Var struct {
	QName string // "PREFIX@ident"
}

func (Var) operand() {}

// Const is a literal operand, already typed and decoded at load time.
type Const struct {
	Value types.Value
}

func (Const) operand() {}

// Label names a LABEL instruction's address.
type Label struct {
	Name string
}

func (Label) operand() {}

// TypeOperand is a bare type-tag operand, used only by READ's second
// argument. Its payload is the tag name itself, not a value of that type.
type TypeOperand struct {
	Tag types.Tag
}

func (TypeOperand) operand() {}

// Symb is satisfied by the two operand kinds usable wherever an
// instruction takes a "symb": a constant or a variable.
type Symb interface {
	Operand
	symb()
}

func (Var) symb()   {}
func (Const) symb() {}
