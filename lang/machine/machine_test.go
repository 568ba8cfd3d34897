package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ippcode20/lang/types"
)

// Round-trip properties (INT2CHAR/STRI2INT, MOVE chaining, ADD then SUB),
// exercised directly against the package's internals rather than through a
// full program run.

func TestRoundTripInt2CharStri2Int(t *testing.T) {
	s, err := int2char(types.Int(65))
	require.NoError(t, err)
	assert.Equal(t, types.String("A"), s)

	n, err := stri2int(s, 0)
	require.NoError(t, err)
	assert.Equal(t, types.Int(65), n)
}

func TestRoundTripMoveChaining(t *testing.T) {
	fm := NewFrameModel()
	require.NoError(t, fm.Defvar("GF@x"))
	require.NoError(t, fm.Defvar("GF@y"))
	require.NoError(t, fm.Defvar("GF@z"))

	y, _ := fm.Lookup("GF@y")
	y.Set(types.String("hello"))

	m := &Machine{frames: fm}
	require.NoError(t, m.assignVar(Var{QName: "GF@x"}, y.Value))
	x, _ := fm.Lookup("GF@x")
	require.NoError(t, m.assignVar(Var{QName: "GF@z"}, x.Value))

	z, _ := fm.Lookup("GF@z")
	assert.Equal(t, y.Value, z.Value)
	assert.Equal(t, y.Type, z.Type)
}

func TestRoundTripAddSub(t *testing.T) {
	a, b := types.Int(17), types.Int(5)
	sum, err := addValues(a, b)
	require.NoError(t, err)
	diff, err := subValues(sum, b)
	require.NoError(t, err)
	assert.Equal(t, a, diff)
}
