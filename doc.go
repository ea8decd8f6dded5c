// Package calc evaluates arithmetic expressions written in infix notation.
//
// An expression like "(x + 3) / log(2, 16)" passes through three stages:
// Tokenize turns the source text into positioned tokens, ToPostfix reorders
// the tokens into a postfix sequence with the shunting-yard algorithm, and
// Evaluate (or EvaluateWith, when variables or functions are involved)
// executes the sequence with an operand stack. The Solve and
// EvaluateWithDefined entry points wire the stages together for callers that
// don't need the intermediate forms.
//
// Variables come from a caller-supplied Definitions table and functions from
// a Functions table; both are read per call and never retained. Nested
// function arguments are resolved recursively with no explicit depth limit,
// so pathologically deep call nesting is bounded only by the goroutine
// stack.
//
// All arithmetic is float64. A Number remembers whether its literal had a
// fractional part and renders as an integer when the value has none.
package calc
