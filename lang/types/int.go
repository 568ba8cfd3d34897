package types

import "strconv"

// Int is the type of an integer value.
type Int int64

var (
	_ Value   = Int(0)
	_ Ordered = Int(0)
)

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Int) Tag() Tag       { return TagInt }

// Cmp implements comparison of two Int values.
func (i Int) Cmp(y Value) int {
	j := y.(Int)
	switch {
	case i > j:
		return +1
	case i < j:
		return -1
	default:
		return 0
	}
}
