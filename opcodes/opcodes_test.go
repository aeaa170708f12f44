package opcodes_test

import (
	"testing"

	"github.com/monkeylang/core/opcodes"
	"github.com/stretchr/testify/require"
)

func TestMakeOpConstant(t *testing.T) {
	instruction := opcodes.Make(opcodes.OpConstant, 65534)
	expected := []byte{byte(opcodes.OpConstant), 255, 254}
	require.Equal(t, expected, []byte(instruction))
}

func TestMakeNoOperandOpcode(t *testing.T) {
	instruction := opcodes.Make(opcodes.OpAdd)
	require.Equal(t, []byte{byte(opcodes.OpAdd)}, []byte(instruction))
}

func TestReadOperands(t *testing.T) {
	instruction := opcodes.Make(opcodes.OpConstant, 65535)
	def, err := opcodes.Lookup(opcodes.OpConstant)
	require.NoError(t, err)

	operandsRead, n := opcodes.ReadOperands(def, instruction[1:])
	require.Equal(t, 2, n)
	require.Equal(t, []int{65535}, operandsRead)
}

func TestDisassemble(t *testing.T) {
	instructions := []opcodes.Instructions{
		opcodes.Make(opcodes.OpAdd),
		opcodes.Make(opcodes.OpConstant, 2),
		opcodes.Make(opcodes.OpConstant, 65535),
		opcodes.Make(opcodes.OpPop),
	}

	var concatted opcodes.Instructions
	for _, ins := range instructions {
		concatted = append(concatted, ins...)
	}

	expected := "0000 OpAdd\n" +
		"0001 OpConstant 2\n" +
		"0004 OpConstant 65535\n" +
		"0007 OpPop\n"

	require.Equal(t, expected, opcodes.Disassemble(concatted))
}
