// Package opcodes defines the bytecode instruction set and the codec that
// reads and writes it: a flat, append-only byte buffer addressed by byte
// offset, with big-endian u16 operands. Grounded on the teacher's own
// opcodes package (an Opcode byte enum plus a name table for
// disassembly), trimmed from its ~100-entry Zend-style register ISA down
// to the core's 18 stack-machine opcodes and given the definition-table
// + make/read-operands/disassemble codec spec.md §4.4 calls for (the
// teacher's own ISA instead used a fixed six-field Instruction struct,
// which has no notion of a variable-width operand codec to ground this
// on — so the table-driven codec here follows spec.md directly).
package opcodes

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Opcode is one instruction's tag byte.
type Opcode byte

const (
	OpConstant Opcode = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPop
	OpTrue
	OpFalse
	OpEqual
	OpNotEqual
	OpGreaterThan
	OpMinus
	OpBang
	OpJumpNotTruthy
	OpJump
	OpNull
	OpSetGlobal
	OpGetGlobal
)

// Definition describes one opcode: its display name and the byte width of
// each of its operands, in order. Every emitter and decoder consults this
// same table so operand widths can never drift between make and
// read_operands.
type Definition struct {
	Name          string
	OperandWidths []int
}

var definitions = map[Opcode]*Definition{
	OpConstant:      {"OpConstant", []int{2}},
	OpAdd:           {"OpAdd", []int{}},
	OpSub:           {"OpSub", []int{}},
	OpMul:           {"OpMul", []int{}},
	OpDiv:           {"OpDiv", []int{}},
	OpPop:           {"OpPop", []int{}},
	OpTrue:          {"OpTrue", []int{}},
	OpFalse:         {"OpFalse", []int{}},
	OpEqual:         {"OpEqual", []int{}},
	OpNotEqual:      {"OpNotEqual", []int{}},
	OpGreaterThan:   {"OpGreaterThan", []int{}},
	OpMinus:         {"OpMinus", []int{}},
	OpBang:          {"OpBang", []int{}},
	OpJumpNotTruthy: {"OpJumpNotTruthy", []int{2}},
	OpJump:          {"OpJump", []int{2}},
	OpNull:          {"OpNull", []int{}},
	OpSetGlobal:     {"OpSetGlobal", []int{2}},
	OpGetGlobal:     {"OpGetGlobal", []int{2}},
}

// Lookup returns the Definition for an opcode, or an error if the opcode
// byte is unrecognized (e.g. corrupt/foreign bytecode).
func Lookup(op Opcode) (*Definition, error) {
	def, ok := definitions[op]
	if !ok {
		return nil, fmt.Errorf("opcode %d undefined", op)
	}
	return def, nil
}

// Instructions is a flat, append-only byte buffer; addresses are byte
// offsets from the start.
type Instructions []byte

// Make encodes one instruction: the opcode byte followed by its operands,
// each written big-endian at its declared width. A missing width or wrong
// operand count is a programmer error (it is never reached by correctly
// generated compiler output), so Make returns an empty buffer rather than
// an error in that case, matching the teacher's own "return empty on
// lookup failure" style in its Definition.lookup.
func Make(op Opcode, operands ...int) Instructions {
	def, ok := definitions[op]
	if !ok || len(operands) != len(def.OperandWidths) {
		return Instructions{}
	}

	instructionLen := 1
	for _, w := range def.OperandWidths {
		instructionLen += w
	}

	instruction := make(Instructions, instructionLen)
	instruction[0] = byte(op)

	offset := 1
	for i, operand := range operands {
		width := def.OperandWidths[i]
		switch width {
		case 2:
			binary.BigEndian.PutUint16(instruction[offset:], uint16(operand))
		}
		offset += width
	}

	return instruction
}

// ReadOperands decodes every operand of one instruction (the bytes right
// after the opcode byte) and reports how many bytes were consumed.
func ReadOperands(def *Definition, ins Instructions) ([]int, int) {
	operands := make([]int, len(def.OperandWidths))
	offset := 0

	for i, width := range def.OperandWidths {
		switch width {
		case 2:
			operands[i] = int(ReadUint16(ins[offset:]))
		}
		offset += width
	}

	return operands, offset
}

// ReadUint16 decodes one big-endian u16 operand.
func ReadUint16(ins Instructions) uint16 {
	return binary.BigEndian.Uint16(ins)
}

// Disassemble renders an instruction stream as human-readable text, one
// line per instruction: "<4-digit offset> <Opname> <op1> <op2>...\n".
func Disassemble(ins Instructions) string {
	var out bytes.Buffer

	i := 0
	for i < len(ins) {
		def, err := Lookup(Opcode(ins[i]))
		if err != nil {
			fmt.Fprintf(&out, "ERROR: %s\n", err)
			i++
			continue
		}

		operands, read := ReadOperands(def, ins[i+1:])

		fmt.Fprintf(&out, "%04d %s\n", i, formatInstruction(def, operands))
		i += 1 + read
	}

	return out.String()
}

func formatInstruction(def *Definition, operands []int) string {
	operandCount := len(def.OperandWidths)

	if len(operands) != operandCount {
		return fmt.Sprintf("ERROR: operand len %d does not match defined %d", len(operands), operandCount)
	}

	switch operandCount {
	case 0:
		return def.Name
	case 1:
		return fmt.Sprintf("%s %d", def.Name, operands[0])
	}

	return fmt.Sprintf("ERROR: unhandled operandCount for %s", def.Name)
}

// String renders the opcode's mnemonic for debugging, e.g. in compiler
// error messages.
func (op Opcode) String() string {
	if def, ok := definitions[op]; ok {
		return def.Name
	}
	return fmt.Sprintf("OP(%d)", byte(op))
}
