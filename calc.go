package calc

// Solve evaluates an infix expression that contains no variables or
// function calls. Identifier-looking input is rejected during tokenization.
func Solve(input string) (Number, error) {
	tokens, err := Tokenize(input, false)
	if err != nil {
		return Number{}, err
	}
	p, err := ToPostfix(tokens)
	if err != nil {
		return Number{}, err
	}
	return Evaluate(p)
}

// SolveWith evaluates an infix expression whose variables are bound by defs.
func SolveWith(input string, defs Definitions) (Number, error) {
	return EvaluateWithDefined(input, defs, nil)
}

// EvaluateWithDefined evaluates an infix expression against caller-supplied
// variable definitions and functions. Either table may be nil; identifiers
// and calls that cannot resolve report ErrUndefinedVariable,
// ErrUndefinedFunction, or ErrInvalidOperand.
//
// Empty input is rejected with ErrEmptyExpression, as with every other
// entry point.
func EvaluateWithDefined(input string, defs Definitions, funcs Functions) (Number, error) {
	tokens, err := Tokenize(input, true)
	if err != nil {
		return Number{}, err
	}
	p, err := ToPostfix(tokens)
	if err != nil {
		return Number{}, err
	}
	return EvaluateWith(p, defs, funcs)
}
