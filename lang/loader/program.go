package loader

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/exp/slices"
)

// RawOperand is an instruction operand exactly as it appeared in the XML,
// before the Value & Operand model casts its text into a typed Operand.
type RawOperand struct {
	Type string
	Text string
}

// RawInstruction is one <instruction> element: its opcode mnemonic
// (untouched case, the executor lower/upper-cases it) and its ordered
// operands (already validated to form a contiguous arg1..argN prefix).
type RawInstruction struct {
	Opcode   string
	Order    int
	Operands []RawOperand
}

var allowedRootAttrs = map[string]bool{
	"language":    true,
	"description": true,
	"name":        true,
}

var allowedOperandTypes = map[string]bool{
	"int": true, "float": true, "bool": true, "string": true,
	"nil": true, "var": true, "label": true, "type": true,
}

// Load reads an IPPcode20 source document and returns its instructions
// ordered by ascending "order" attribute. XML that is not well-formed
// yields an error with ExitCode() == ExitMalformedXML; any schema
// violation (unknown opcode text is not checked here, but malformed
// attributes and structure are) yields ExitCode() == ExitInvalidInput.
func Load(r io.Reader) ([]RawInstruction, error) {
	dec := xml.NewDecoder(r)

	root, err := nextStart(dec)
	if err != nil {
		return nil, err
	}
	for _, a := range root.Attr {
		if !allowedRootAttrs[a.Name.Local] {
			return nil, errInvalid("invalid root attribute %q", a.Name.Local)
		}
	}

	var instrs []RawInstruction
	seenOrder := make(map[int]bool)

	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errMalformed("malformed xml: %v", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "instruction" {
				return nil, errInvalid("unexpected element %q inside program", t.Name.Local)
			}
			instr, err := parseInstruction(dec, t)
			if err != nil {
				return nil, err
			}
			if seenOrder[instr.Order] {
				return nil, errInvalid("duplicate instruction order %d", instr.Order)
			}
			seenOrder[instr.Order] = true
			instrs = append(instrs, instr)
		case xml.EndElement:
			// end of the root <program> element
		}
	}

	slices.SortFunc(instrs, func(a, b RawInstruction) int { return a.Order - b.Order })
	return instrs, nil
}

// nextStart advances the decoder to the document's root start element,
// reporting malformed XML and an empty document distinctly.
func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return xml.StartElement{}, errMalformed("empty or malformed xml document")
			}
			return xml.StartElement{}, errMalformed("malformed xml: %v", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}

func parseInstruction(dec *xml.Decoder, start xml.StartElement) (RawInstruction, error) {
	var opcode string
	var order int
	var haveOpcode, haveOrder bool

	if len(start.Attr) != 2 {
		return RawInstruction{}, errInvalid("instruction must have exactly opcode and order attributes")
	}
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "opcode":
			opcode = a.Value
			haveOpcode = true
		case "order":
			n, err := strconv.Atoi(a.Value)
			if err != nil || n < 0 {
				return RawInstruction{}, errInvalid("invalid instruction order %q", a.Value)
			}
			order = n
			haveOrder = true
		default:
			return RawInstruction{}, errInvalid("unexpected instruction attribute %q", a.Name.Local)
		}
	}
	if !haveOpcode || !haveOrder {
		return RawInstruction{}, errInvalid("instruction missing opcode or order attribute")
	}

	operandsByTag := make(map[string]RawOperand)
	for {
		tok, err := dec.Token()
		if err != nil {
			return RawInstruction{}, errMalformed("malformed xml: %v", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			argOp, err := parseArg(dec, t)
			if err != nil {
				return RawInstruction{}, err
			}
			if _, dup := operandsByTag[t.Name.Local]; dup {
				return RawInstruction{}, errInvalid("duplicate argument element %q", t.Name.Local)
			}
			operandsByTag[t.Name.Local] = argOp
		case xml.EndElement:
			operands, err := orderOperands(operandsByTag)
			if err != nil {
				return RawInstruction{}, err
			}
			return RawInstruction{Opcode: opcode, Order: order, Operands: operands}, nil
		}
	}
}

func parseArg(dec *xml.Decoder, start xml.StartElement) (RawOperand, error) {
	name := start.Name.Local
	if name != "arg1" && name != "arg2" && name != "arg3" {
		return RawOperand{}, errInvalid("unexpected argument element %q", name)
	}

	var typ string
	var haveType bool
	for _, a := range start.Attr {
		if a.Name.Local == "type" {
			typ = a.Value
			haveType = true
		}
	}
	if !haveType {
		return RawOperand{}, errInvalid("argument %q missing type attribute", name)
	}
	if !allowedOperandTypes[typ] {
		return RawOperand{}, errInvalid("unknown argument type %q", typ)
	}

	var text string
	for {
		tok, err := dec.Token()
		if err != nil {
			return RawOperand{}, errMalformed("malformed xml: %v", err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			text += string(t)
		case xml.EndElement:
			if typ == "nil" {
				text = ""
			}
			return RawOperand{Type: typ, Text: text}, nil
		case xml.StartElement:
			return RawOperand{}, errInvalid("unexpected nested element %q inside %q", t.Name.Local, name)
		}
	}
}

// orderOperands validates that the given arg tags form a contiguous prefix
// starting at arg1, and returns them in arg1,arg2,arg3 order.
func orderOperands(byTag map[string]RawOperand) ([]RawOperand, error) {
	n := len(byTag)
	ops := make([]RawOperand, 0, n)
	for i := 1; i <= n; i++ {
		tag := fmt.Sprintf("arg%d", i)
		op, ok := byTag[tag]
		if !ok {
			return nil, errInvalid("arguments must form a contiguous arg1.. prefix, missing %q", tag)
		}
		ops = append(ops, op)
	}
	return ops, nil
}
