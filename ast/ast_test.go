package ast_test

import (
	"testing"

	"github.com/monkeylang/core/ast"
	"github.com/monkeylang/core/token"
	"github.com/stretchr/testify/require"
)

func TestProgramString(t *testing.T) {
	program := &ast.Program{
		Statements: []ast.Statement{
			&ast.LetStatement{
				Token: token.Token{Type: token.LET, Literal: "let"},
				Name: &ast.Identifier{
					Token: token.Token{Type: token.IDENT, Literal: "myVar"},
					Value: "myVar",
				},
				Value: &ast.Identifier{
					Token: token.Token{Type: token.IDENT, Literal: "anotherVar"},
					Value: "anotherVar",
				},
			},
		},
	}

	require.Equal(t, "let myVar = anotherVar;", program.String())
}

func TestIfExpressionString(t *testing.T) {
	ifExpr := &ast.IfExpression{
		Token: token.Token{Type: token.IF, Literal: "if"},
		Condition: &ast.Boolean{
			Token: token.Token{Type: token.TRUE, Literal: "true"},
			Value: true,
		},
		Consequence: &ast.BlockStatement{
			Token: token.Token{Type: token.LBRACE, Literal: "{"},
			Statements: []ast.Statement{
				&ast.ExpressionStatement{
					Expression: &ast.IntegerLiteral{
						Token: token.Token{Type: token.INT, Literal: "10"},
						Value: 10,
					},
				},
			},
		},
	}

	require.Equal(t, "iftrue 10", ifExpr.String())
}
