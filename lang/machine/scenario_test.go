package machine_test

import (
	"testing"

	"ippcode20/internal/scenariotest"
	"ippcode20/lang/machine"
)

func program(body string) string {
	return `<program language="IPPcode20">` + body + `</program>`
}

func TestScenarioHelloWorld(t *testing.T) {
	scenariotest.Run(t, scenariotest.Scenario{
		Name: "hello world",
		Source: program(`
			<instruction order="1" opcode="WRITE">
				<arg1 type="string">Hello\032world</arg1>
			</instruction>`),
		WantStdout: "Hello world",
		WantExit:   0,
	})
}

func TestScenarioFrames(t *testing.T) {
	scenariotest.Run(t, scenariotest.Scenario{
		Name: "frames",
		Source: program(`
			<instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@a</arg1></instruction>
			<instruction order="2" opcode="MOVE"><arg1 type="var">GF@a</arg1><arg2 type="int">1</arg2></instruction>
			<instruction order="3" opcode="CREATEFRAME"></instruction>
			<instruction order="4" opcode="DEFVAR"><arg1 type="var">TF@a</arg1></instruction>
			<instruction order="5" opcode="MOVE"><arg1 type="var">TF@a</arg1><arg2 type="int">2</arg2></instruction>
			<instruction order="6" opcode="PUSHFRAME"></instruction>
			<instruction order="7" opcode="ADD"><arg1 type="var">GF@a</arg1><arg2 type="var">GF@a</arg2><arg3 type="var">LF@a</arg3></instruction>
			<instruction order="8" opcode="WRITE"><arg1 type="var">GF@a</arg1></instruction>`),
		WantStdout: "3",
		WantExit:   0,
	})
}

func TestScenarioCallReturn(t *testing.T) {
	scenariotest.Run(t, scenariotest.Scenario{
		Name: "call/return",
		Source: program(`
			<instruction order="1" opcode="CALL"><arg1 type="label">L</arg1></instruction>
			<instruction order="2" opcode="WRITE"><arg1 type="string">after</arg1></instruction>
			<instruction order="3" opcode="EXIT"><arg1 type="int">0</arg1></instruction>
			<instruction order="4" opcode="LABEL"><arg1 type="label">L</arg1></instruction>
			<instruction order="5" opcode="WRITE"><arg1 type="string">in</arg1></instruction>
			<instruction order="6" opcode="RETURN"></instruction>`),
		WantStdout: "inafter",
		WantExit:   0,
	})
}

func TestScenarioDivByZero(t *testing.T) {
	scenariotest.Run(t, scenariotest.Scenario{
		Name: "div by zero",
		Source: program(`
			<instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@x</arg1></instruction>
			<instruction order="2" opcode="IDIV"><arg1 type="var">GF@x</arg1><arg2 type="int">5</arg2><arg3 type="int">0</arg3></instruction>`),
		WantExit: machine.ExitBadOperandValue,
	})
}

func TestScenarioMissingValue(t *testing.T) {
	scenariotest.Run(t, scenariotest.Scenario{
		Name: "missing value",
		Source: program(`
			<instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@x</arg1></instruction>
			<instruction order="2" opcode="WRITE"><arg1 type="var">GF@x</arg1></instruction>`),
		WantExit: machine.ExitMissingValue,
	})
}

func TestScenarioTypeMismatch(t *testing.T) {
	scenariotest.Run(t, scenariotest.Scenario{
		Name: "type mismatch",
		Source: program(`
			<instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@x</arg1></instruction>
			<instruction order="2" opcode="ADD"><arg1 type="var">GF@x</arg1><arg2 type="int">1</arg2><arg3 type="string">foo</arg3></instruction>`),
		WantExit: machine.ExitBadOperands,
	})
}

func TestScenarioStackArithmetic(t *testing.T) {
	scenariotest.Run(t, scenariotest.Scenario{
		Name: "stack arithmetic",
		Source: program(`
			<instruction order="1" opcode="PUSHS"><arg1 type="int">3</arg1></instruction>
			<instruction order="2" opcode="PUSHS"><arg1 type="int">4</arg1></instruction>
			<instruction order="3" opcode="ADDS"></instruction>
			<instruction order="4" opcode="DEFVAR"><arg1 type="var">GF@x</arg1></instruction>
			<instruction order="5" opcode="POPS"><arg1 type="var">GF@x</arg1></instruction>
			<instruction order="6" opcode="WRITE"><arg1 type="var">GF@x</arg1></instruction>`),
		WantStdout: "7",
		WantExit:   0,
	})
}

func TestScenarioExitPassthrough(t *testing.T) {
	scenariotest.Run(t, scenariotest.Scenario{
		Name: "exit passthrough",
		Source: program(`
			<instruction order="1" opcode="EXIT"><arg1 type="int">42</arg1></instruction>`),
		WantExit: 42,
	})
}
