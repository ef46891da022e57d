package regexlib

import "strings"

type tokenType int

const (
	tIllegal tokenType = iota
	tOperand           // a-z A-Z 0-9
	tLParen            // (
	tRParen            // )
	tStar              // *
	tUnion             // +
	tConcat            // . (inserted, never typed by the user)
)

// Epsilon labels silent NFA moves. It is never an operand.
const Epsilon rune = 0

const (
	opUnion  = '+'
	opStar   = '*'
	opConcat = '.'
)

func classify(r rune) tokenType {
	switch {
	case isOperand(r):
		return tOperand
	case r == '(':
		return tLParen
	case r == ')':
		return tRParen
	case r == opStar:
		return tStar
	case r == opUnion:
		return tUnion
	case r == opConcat:
		return tConcat
	}
	return tIllegal
}

func isOperand(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// precedence of the binary and postfix operators; parentheses have none.
func precedence(r rune) int {
	switch r {
	case opStar:
		return 3
	case opConcat:
		return 2
	case opUnion:
		return 1
	}
	return 0
}

// Clean strips all whitespace from expr.
func Clean(expr string) string {
	return strings.Join(strings.Fields(expr), "")
}
