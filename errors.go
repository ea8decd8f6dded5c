package calc

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel kinds for every error the pipeline can produce. Callers classify
// with errors.Is and read positions through PosError.
var (
	// ErrDivisionByZero indicates division (or remainder) by exactly zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNegativeExponent indicates exponentiation by a negative power.
	ErrNegativeExponent = errors.New("cannot raise to a negative power")
	// ErrInvalidCharacter indicates a character no token can start with.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrInvalidNumber indicates a malformed numeric literal.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrExpected indicates the lexer needed one character and found another.
	ErrExpected = errors.New("unexpected character")
	// ErrUnexpectedEOI indicates the input ended where a token was required.
	ErrUnexpectedEOI = errors.New("unexpected end of input")
	// ErrEmptyExpression indicates there were no tokens to transform.
	ErrEmptyExpression = errors.New("empty expression")
	// ErrInvalidOperand indicates a non-numeric operand reached evaluation.
	ErrInvalidOperand = errors.New("invalid operand")
	// ErrInvalidOperator indicates an operator where none may appear.
	ErrInvalidOperator = errors.New("invalid operator")
	// ErrInvalidExpression indicates a structurally broken expression.
	ErrInvalidExpression = errors.New("invalid expression")
	// ErrUndefinedVariable indicates an identifier missing from Definitions.
	ErrUndefinedVariable = errors.New("undefined variable")
	// ErrUndefinedFunction indicates a call missing from Functions.
	ErrUndefinedFunction = errors.New("undefined function")
	// ErrInvalidArgumentCount indicates a call with the wrong arity.
	ErrInvalidArgumentCount = errors.New("invalid argument count")
	// ErrInvalidArgument indicates a function argument that cannot resolve.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidLeadingOperator indicates an expression starting with an
	// operator other than - or (.
	ErrInvalidLeadingOperator = errors.New("invalid leading operator")
	// ErrMissingOperator indicates an operand directly before a group.
	ErrMissingOperator = errors.New("missing operator")
	// ErrMismatchedParentheses indicates an unbalanced ( or ).
	ErrMismatchedParentheses = errors.New("mismatched parentheses")
	// ErrTwoOperandsInARow indicates adjacent operands with no operator.
	ErrTwoOperandsInARow = errors.New("two operands in a row")
)

// Error is an error from tokenizing, transforming, or evaluating an
// expression. It unwraps to one of the package's sentinel kinds.
type Error struct {
	kind error
	msg  string
	pos  *Position
}

func errAt(kind error, pos Position, format string, args ...any) *Error {
	p := pos
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...), pos: &p}
}

func errOf(kind error, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	s := e.Message()
	if e.pos != nil {
		s += " at " + e.pos.String()
	}
	return s
}

// Message returns the error text without the position suffix.
func (e *Error) Message() string {
	s := e.kind.Error()
	if e.msg != "" {
		s += ": " + e.msg
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.kind
}

// Pos returns the source position the error refers to, if it carries one.
// Tokenizer and shunting-yard errors always do; evaluation errors carry the
// position of the originating token when resolution preserved it.
func (e *Error) Pos() (Position, bool) {
	if e.pos == nil {
		return Position{}, false
	}
	return *e.pos, true
}

// at attaches a position to an error that has none. Errors that already carry
// a position keep it.
func (e *Error) at(pos Position) *Error {
	if e.pos == nil {
		p := pos
		e.pos = &p
	}
	return e
}

// PosError is an error that refers to a position in the source text.
type PosError interface {
	error
	Pos() (Position, bool)
}

var _ PosError = (*Error)(nil)

// BadArgCount builds the error a Func implementation reports when it is
// invoked with the wrong number of arguments.
func BadArgCount(name string, want, got int) error {
	return errOf(ErrInvalidArgumentCount, "%s expects %s, got %d",
		name, pluralArgs(want), got)
}

func pluralArgs(n int) string {
	if n == 1 {
		return "1 argument"
	}
	return strconv.Itoa(n) + " arguments"
}
