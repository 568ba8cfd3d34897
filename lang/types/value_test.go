package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeString(t *testing.T) {
	cases := []struct {
		raw  string
		want String
	}{
		{`Hello\032world`, "Hello world"},
		{`no escapes here`, "no escapes here"},
		{`a\092b`, "a\\b"},
		{`\101\102\103`, "ABC"},
	}
	for _, c := range cases {
		got, err := DecodeString(c.raw)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestParseFloatRoundTrip(t *testing.T) {
	f, err := ParseFloat("0x1.8p+1")
	require.NoError(t, err)
	assert.Equal(t, Float(3.0), f)

	roundTripped, err := ParseFloat(f.String())
	require.NoError(t, err)
	assert.Equal(t, f, roundTripped)
}

func TestOrdering(t *testing.T) {
	assert.Equal(t, -1, Int(1).Cmp(Int(2)))
	assert.Equal(t, 0, Int(2).Cmp(Int(2)))
	assert.Equal(t, +1, Int(3).Cmp(Int(2)))
	assert.Equal(t, -1, Bool(false).Cmp(Bool(true)))
	assert.Equal(t, -1, String("a").Cmp(String("b")))
}

func TestParseTag(t *testing.T) {
	for _, s := range []string{"nil", "bool", "int", "float", "string"} {
		tag, ok := ParseTag(s)
		require.True(t, ok)
		assert.Equal(t, Tag(s), tag)
	}
	_, ok := ParseTag("array")
	assert.False(t, ok)
}
