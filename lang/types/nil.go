package types

// NilType is the type of Nil. Its only legal value is Nil. (We represent it
// as a number, not struct{}, so that Nil may be a constant.)
type NilType byte

// Nil is the singleton value of type nil.
const Nil = NilType(0)

var _ Value = Nil

func (NilType) String() string { return "" }
func (NilType) Tag() Tag       { return TagNil }
