package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ippcode20/lang/types"
)

func TestFrameDeclareAndLookup(t *testing.T) {
	f := NewFrame()
	require.NoError(t, f.Declare("x"))

	v, err := f.Lookup("x")
	require.NoError(t, err)
	assert.False(t, v.Initialized())

	v.Set(types.Int(42))
	assert.True(t, v.Initialized())
	assert.Equal(t, types.TagInt, v.Type)
}

func TestFrameDeclareDuplicate(t *testing.T) {
	f := NewFrame()
	require.NoError(t, f.Declare("x"))
	err := f.Declare("x")
	require.Error(t, err)
	assert.Equal(t, ExitSemanticError, err.(*RuntimeError).ExitCode())
}

func TestFrameLookupUnknown(t *testing.T) {
	f := NewFrame()
	_, err := f.Lookup("missing")
	require.Error(t, err)
	assert.Equal(t, ExitUnknownVariable, err.(*RuntimeError).ExitCode())
}

func TestFrameCountInitialized(t *testing.T) {
	f := NewFrame()
	require.NoError(t, f.Declare("a"))
	require.NoError(t, f.Declare("b"))
	assert.Equal(t, 0, f.CountInitialized())

	v, _ := f.Lookup("a")
	v.Set(types.Bool(true))
	assert.Equal(t, 1, f.CountInitialized())
}
