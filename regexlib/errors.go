package regexlib

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a SyntaxError.
type ErrorKind int

const (
	UnmatchedParenthesis ErrorKind = iota + 1
	InvalidOperatorPlacement
	UnknownToken
	UnsupportedCharacter
	EmptyExpression
)

var (
	ErrUnmatchedParenthesis     = errors.New("unmatched parenthesis")
	ErrInvalidOperatorPlacement = errors.New("invalid operator placement")
	ErrUnknownToken             = errors.New("unknown token")
	ErrUnsupportedCharacter     = errors.New("unsupported character")
	ErrEmptyExpression          = errors.New("empty expression")
)

var kindErrors = map[ErrorKind]error{
	UnmatchedParenthesis:     ErrUnmatchedParenthesis,
	InvalidOperatorPlacement: ErrInvalidOperatorPlacement,
	UnknownToken:             ErrUnknownToken,
	UnsupportedCharacter:     ErrUnsupportedCharacter,
	EmptyExpression:          ErrEmptyExpression,
}

// SyntaxError reports a regex rejected by validation or a postfix stream
// the Thompson constructor cannot interpret. Pos is -1 when the error has no
// position (UnknownToken, an empty expression).
type SyntaxError struct {
	Kind  ErrorKind
	Pos   int
	Token rune
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case UnmatchedParenthesis:
		return fmt.Sprintf("unmatched '%c' at position %d", e.Token, e.Pos)
	case InvalidOperatorPlacement:
		return fmt.Sprintf("invalid operator '%c' at position %d", e.Token, e.Pos)
	case UnknownToken:
		return fmt.Sprintf("unknown token %q in postfix", e.Token)
	case UnsupportedCharacter:
		return fmt.Sprintf("unsupported character %q at position %d", e.Token, e.Pos)
	case EmptyExpression:
		if e.Pos >= 0 {
			return fmt.Sprintf("empty group at position %d", e.Pos)
		}
		return "empty expression"
	}
	return "syntax error"
}

// Unwrap lets callers match a kind with errors.Is(err, ErrUnmatchedParenthesis).
func (e *SyntaxError) Unwrap() error { return kindErrors[e.Kind] }
