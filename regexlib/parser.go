package regexlib

import "strings"

// Validate checks parenthesis balance and operator placement of a cleaned
// expression. Positions in the returned *SyntaxError are rune offsets.
func Validate(expr string) error {
	runes := []rune(expr)
	if len(runes) == 0 {
		return &SyntaxError{Kind: EmptyExpression, Pos: -1}
	}

	var open []int // positions of unclosed '('
	var prev rune
	for i, r := range runes {
		switch classify(r) {
		case tOperand:
		case tLParen:
			open = append(open, i)
		case tRParen:
			if len(open) == 0 {
				return &SyntaxError{Kind: UnmatchedParenthesis, Pos: i, Token: r}
			}
			if prev == '(' {
				return &SyntaxError{Kind: EmptyExpression, Pos: open[len(open)-1]}
			}
			if prev == opUnion {
				return &SyntaxError{Kind: InvalidOperatorPlacement, Pos: i - 1, Token: prev}
			}
			open = open[:len(open)-1]
		case tStar, tUnion:
			if i == 0 || prev == opUnion || prev == opStar || prev == '(' {
				return &SyntaxError{Kind: InvalidOperatorPlacement, Pos: i, Token: r}
			}
		default:
			return &SyntaxError{Kind: UnsupportedCharacter, Pos: i, Token: r}
		}
		prev = r
	}
	if len(open) > 0 {
		return &SyntaxError{Kind: UnmatchedParenthesis, Pos: open[len(open)-1], Token: '('}
	}
	if prev == opUnion {
		return &SyntaxError{Kind: InvalidOperatorPlacement, Pos: len(runes) - 1, Token: prev}
	}
	return nil
}

// InsertConcatenation makes concatenation explicit: a '.' goes between a and
// b whenever a is an operand, ')' or '*' and b is an operand or '('.
func InsertConcatenation(expr string) string {
	var b strings.Builder
	var prev rune
	for i, r := range expr {
		if i > 0 && endsOperand(prev) && startsOperand(r) {
			b.WriteRune(opConcat)
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

func endsOperand(r rune) bool   { return isOperand(r) || r == ')' || r == opStar }
func startsOperand(r rune) bool { return isOperand(r) || r == '(' }

// ToPostfix converts a validated, concatenation-expanded expression to
// postfix with the shunting-yard algorithm. All operators are left
// associative; '*' binds tighter than '.', which binds tighter than '+'.
func ToPostfix(expr string) string {
	var out strings.Builder
	var ops []rune
	for _, r := range expr {
		switch classify(r) {
		case tOperand:
			out.WriteRune(r)
		case tLParen:
			ops = append(ops, r)
		case tRParen:
			for len(ops) > 0 && ops[len(ops)-1] != '(' {
				out.WriteRune(ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) > 0 {
				ops = ops[:len(ops)-1]
			}
		default:
			for len(ops) > 0 && ops[len(ops)-1] != '(' && precedence(ops[len(ops)-1]) >= precedence(r) {
				out.WriteRune(ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, r)
		}
	}
	for len(ops) > 0 {
		out.WriteRune(ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}
	return out.String()
}
