package calc

import (
	"math"
	"strconv"
	"strings"
)

// Position is a 1-indexed location in the source text. The zero Position is
// not a valid location.
type Position struct {
	// Line is the 1-based line number.
	Line int
	// Col is the 1-based column number, counted in runes.
	Col int
}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

// advance moves the cursor past r. A newline rolls the line counter and
// resets the column to the start of the next line.
func (p *Position) advance(r rune) {
	if r == '\n' {
		p.Line++
		p.Col = 1
		return
	}
	p.Col++
}

// Operator is one of the single-character operators and punctuation marks
// the tokenizer recognizes.
type Operator int

// The recognized operators. OpNone is the zero value and never appears in a
// token.
const (
	OpNone Operator = iota
	OpLeftParen
	OpRightParen
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpAssign
	OpPow
)

var opStrings = [...]string{
	OpNone:       "?",
	OpLeftParen:  "(",
	OpRightParen: ")",
	OpAdd:        "+",
	OpSub:        "-",
	OpMul:        "*",
	OpDiv:        "/",
	OpMod:        "%",
	OpAssign:     "=",
	OpPow:        "^",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(opStrings) {
		return "?"
	}
	return opStrings[op]
}

// precedence reports how tightly op binds. Parentheses and assignment carry
// no precedence and report false.
func (op Operator) precedence() (int, bool) {
	switch op {
	case OpAdd, OpSub:
		return 0, true
	case OpMul, OpDiv, OpMod:
		return 1, true
	case OpPow:
		return 2, true
	default:
		return 0, false
	}
}

// applicable reports whether op may be applied to two operands. Parentheses
// never reach a valid postfix sequence and = is lexed but never applied.
func (op Operator) applicable() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow:
		return true
	default:
		return false
	}
}

// apply computes "left op right".
func (op Operator) apply(left, right Number) (Number, error) {
	l, r := left.Float64(), right.Float64()
	switch op {
	case OpAdd:
		return NewNumber(l + r), nil
	case OpSub:
		return NewNumber(l - r), nil
	case OpMul:
		return NewNumber(l * r), nil
	case OpDiv:
		if r == 0 {
			return Number{}, errOf(ErrDivisionByZero, "%s / %s", left, right)
		}
		return NewNumber(l / r), nil
	case OpMod:
		// Same policy as division: x % 0 errors instead of producing NaN.
		if r == 0 {
			return Number{}, errOf(ErrDivisionByZero, "%s %% %s", left, right)
		}
		return NewNumber(math.Mod(l, r)), nil
	case OpPow:
		if r < 0 {
			return Number{}, errOf(ErrNegativeExponent, "%s ^ %s", left, right)
		}
		return NewNumber(math.Pow(l, r)), nil
	default:
		return Number{}, errOf(ErrInvalidOperator, "%q cannot be applied", op.String())
	}
}

// TokenKind discriminates the variants of Token.
type TokenKind int

const (
	// TokenOperator is an operator or punctuation token.
	TokenOperator TokenKind = iota + 1
	// TokenNumber is a numeric literal.
	TokenNumber
	// TokenIdentifier is a variable name.
	TokenIdentifier
	// TokenCall is a function name with its lexed argument list.
	TokenCall
)

// Token is a single lexed element of an expression. Tokens are immutable
// once produced by the tokenizer.
type Token struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind TokenKind
	// Op is set for TokenOperator.
	Op Operator
	// Num is set for TokenNumber.
	Num Number
	// Name is set for TokenIdentifier and TokenCall.
	Name string
	// Args holds the recursively lexed arguments of a TokenCall. Arguments
	// may themselves be numbers, identifiers, or nested calls.
	Args []Token
	// Pos is the position of the token's first character.
	Pos Position
}

// String renders the token as it would appear in source text, so that
// re-tokenizing the rendering of a token sequence reproduces it.
func (t Token) String() string {
	switch t.Kind {
	case TokenOperator:
		return t.Op.String()
	case TokenNumber:
		return t.Num.String()
	case TokenIdentifier:
		return t.Name
	case TokenCall:
		var b strings.Builder
		b.WriteString(t.Name)
		b.WriteByte('(')
		for i, a := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteByte(')')
		return b.String()
	default:
		return "?"
	}
}

func operatorToken(op Operator, pos Position) Token {
	return Token{Kind: TokenOperator, Op: op, Pos: pos}
}
