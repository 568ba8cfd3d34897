package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ippcode20/lang/types"
)

func TestFrameModelGlobalLifetime(t *testing.T) {
	fm := NewFrameModel()
	require.NoError(t, fm.Defvar("GF@x"))
	v, err := fm.Lookup("GF@x")
	require.NoError(t, err)
	v.Set(types.Int(1))

	v2, err := fm.Lookup("GF@x")
	require.NoError(t, err)
	assert.Equal(t, types.Int(1), v2.Value)
}

func TestFrameModelLocalFrameUnavailable(t *testing.T) {
	fm := NewFrameModel()
	_, err := fm.Lookup("LF@x")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidFrame, err.(*RuntimeError).ExitCode())
}

func TestFrameModelTemporaryUndefined(t *testing.T) {
	fm := NewFrameModel()
	err := fm.Defvar("TF@x")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidFrame, err.(*RuntimeError).ExitCode())
}

func TestFrameModelCreatePushPop(t *testing.T) {
	fm := NewFrameModel()
	fm.CreateFrame()
	require.NoError(t, fm.Defvar("TF@x"))

	v, err := fm.Lookup("TF@x")
	require.NoError(t, err)
	v.Set(types.String("hi"))

	require.NoError(t, fm.PushFrame())
	// TF is now undefined again
	_, err = fm.Lookup("TF@anything")
	require.Error(t, err)

	require.NoError(t, fm.PopFrame())
	v2, err := fm.Lookup("LF@x")
	require.Error(t, err) // the only local frame was popped back into TF, so LF is unavailable
	_ = v2

	v3, err := fm.Lookup("TF@x")
	require.NoError(t, err)
	assert.Equal(t, types.String("hi"), v3.Value)
}

func TestFrameModelPopFrameEmpty(t *testing.T) {
	fm := NewFrameModel()
	err := fm.PopFrame()
	require.Error(t, err)
	assert.Equal(t, ExitInvalidFrame, err.(*RuntimeError).ExitCode())
}

func TestFrameModelMaxInitialized(t *testing.T) {
	fm := NewFrameModel()
	require.NoError(t, fm.Defvar("GF@a"))
	require.NoError(t, fm.Defvar("GF@b"))
	va, _ := fm.Lookup("GF@a")
	va.Set(types.Int(1))
	fm.UpdateMaxInitialized()
	assert.Equal(t, 1, fm.MaxInitialized())

	vb, _ := fm.Lookup("GF@b")
	vb.Set(types.Int(2))
	fm.UpdateMaxInitialized()
	assert.Equal(t, 2, fm.MaxInitialized())

	// pushing and popping an empty frame leaves the maximum unchanged
	fm.CreateFrame()
	require.NoError(t, fm.PushFrame())
	require.NoError(t, fm.PopFrame())
	fm.UpdateMaxInitialized()
	assert.Equal(t, 2, fm.MaxInitialized())
}
