package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrdersInstructions(t *testing.T) {
	src := `<program language="IPPcode20">
  <instruction order="2" opcode="WRITE">
    <arg1 type="string">b</arg1>
  </instruction>
  <instruction order="1" opcode="WRITE">
    <arg1 type="string">a</arg1>
  </instruction>
</program>`

	instrs, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, instrs, 2)
	assert.Equal(t, "a", instrs[0].Operands[0].Text)
	assert.Equal(t, "b", instrs[1].Operands[0].Text)
}

func TestLoadRejectsDuplicateOrder(t *testing.T) {
	src := `<program language="IPPcode20">
  <instruction order="1" opcode="CREATEFRAME"></instruction>
  <instruction order="1" opcode="CREATEFRAME"></instruction>
</program>`

	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
	var ec interface{ ExitCode() int }
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, ExitInvalidInput, ec.ExitCode())
}

func TestLoadRejectsNegativeOrder(t *testing.T) {
	src := `<program language="IPPcode20">
  <instruction order="-1" opcode="CREATEFRAME"></instruction>
</program>`

	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
}

func TestLoadRejectsMalformedXML(t *testing.T) {
	_, err := Load(strings.NewReader(`<program><instruction`))
	require.Error(t, err)
	var ec interface{ ExitCode() int }
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, ExitMalformedXML, ec.ExitCode())
}

func TestLoadRejectsNonContiguousArgs(t *testing.T) {
	src := `<program language="IPPcode20">
  <instruction order="1" opcode="WRITE">
    <arg2 type="string">x</arg2>
  </instruction>
</program>`

	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
}

func TestLoadRejectsUnknownRootAttribute(t *testing.T) {
	src := `<program bogus="x"></program>`
	_, err := Load(strings.NewReader(src))
	require.Error(t, err)
}

func TestLoadParsesOperandsAndAttributes(t *testing.T) {
	src := `<program language="IPPcode20" name="demo">
  <instruction order="1" opcode="defvar">
    <arg1 type="var">GF@x</arg1>
  </instruction>
</program>`

	instrs, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, instrs, 1)
	assert.Equal(t, "defvar", instrs[0].Opcode)
	assert.Equal(t, "var", instrs[0].Operands[0].Type)
	assert.Equal(t, "GF@x", instrs[0].Operands[0].Text)
}
