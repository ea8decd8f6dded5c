package calc

import "errors"

// Definitions maps variable names to their values. The evaluator only ever
// reads it; the caller owns it and may reuse it across calls.
type Definitions map[string]Number

// Evaluate executes a postfix sequence whose operands are all concrete
// numbers. Identifiers or calls still present in the sequence surface as
// ErrInvalidOperand; use EvaluateWith to resolve them first.
func Evaluate(p Postfix) (Number, error) {
	var stack []Token
	for _, it := range p {
		if it.IsOperand() {
			stack = append(stack, it.Operand())
			continue
		}
		op := it.Operator()
		if !op.applicable() {
			return Number{}, errOf(ErrInvalidOperator, "%q cannot be applied", op.String())
		}
		if len(stack) < 2 {
			return Number{}, errOf(ErrInvalidExpression, "operand stack underflow at %q", op.String())
		}
		right := stack[len(stack)-1]
		left := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		if left.Kind != TokenNumber {
			return Number{}, errAt(ErrInvalidOperand, left.Pos, "%q", left.String())
		}
		if right.Kind != TokenNumber {
			return Number{}, errAt(ErrInvalidOperand, right.Pos, "%q", right.String())
		}
		r, err := op.apply(left.Num, right.Num)
		if err != nil {
			return Number{}, withPos(err, left.Pos)
		}
		stack = append(stack, Token{Kind: TokenNumber, Num: r, Pos: left.Pos})
	}
	if len(stack) != 1 {
		return Number{}, errOf(ErrInvalidExpression, "operand stack ended with %d items", len(stack))
	}
	return stack[0].Num, nil
}

// EvaluateWith resolves identifiers against defs and function calls against
// funcs, rewriting resolved items in place, and then evaluates the sequence.
// A nil defs or funcs skips the corresponding pass.
func EvaluateWith(p Postfix, defs Definitions, funcs Functions) (Number, error) {
	if defs != nil {
		for i, it := range p {
			if !it.IsOperand() {
				continue
			}
			tok := it.Operand()
			if tok.Kind != TokenIdentifier {
				continue
			}
			v, ok := defs[tok.Name]
			if !ok {
				return Number{}, errAt(ErrUndefinedVariable, tok.Pos, "%q", tok.Name)
			}
			p[i] = OperandItem(Token{Kind: TokenNumber, Num: v, Pos: tok.Pos})
		}
	}
	if funcs != nil {
		for i, it := range p {
			if !it.IsOperand() {
				continue
			}
			tok := it.Operand()
			if tok.Kind != TokenCall {
				continue
			}
			v, err := resolveCall(tok.Name, tok.Args, funcs, defs)
			if err != nil {
				return Number{}, withPos(err, tok.Pos)
			}
			p[i] = OperandItem(Token{Kind: TokenNumber, Num: v, Pos: tok.Pos})
		}
	}
	return Evaluate(p)
}

// resolveCall resolves a function call's arguments to numbers and invokes
// the registered function. Nested call arguments resolve recursively before
// the outer call executes; recursion depth is bounded only by the stack.
func resolveCall(name string, args []Token, funcs Functions, defs Definitions) (Number, error) {
	fn := funcs[name]
	if fn == nil {
		return Number{}, errOf(ErrUndefinedFunction, "%q", name)
	}
	vals := make([]Number, 0, len(args))
	for _, a := range args {
		switch a.Kind {
		case TokenNumber:
			vals = append(vals, a.Num)
		case TokenIdentifier:
			if defs == nil {
				return Number{}, errAt(ErrInvalidArgument, a.Pos, "%s: %q has no definition", name, a.Name)
			}
			v, ok := defs[a.Name]
			if !ok {
				return Number{}, errAt(ErrUndefinedVariable, a.Pos, "%q", a.Name)
			}
			vals = append(vals, v)
		case TokenCall:
			v, err := resolveCall(a.Name, a.Args, funcs, defs)
			if err != nil {
				return Number{}, withPos(err, a.Pos)
			}
			vals = append(vals, v)
		default:
			return Number{}, errAt(ErrInvalidArgument, a.Pos, "%s: %q", name, a.String())
		}
	}
	return fn.Call(vals)
}

// withPos attaches pos to errors of this package that don't already carry a
// position. Other errors pass through untouched.
func withPos(err error, pos Position) error {
	var e *Error
	if errors.As(err, &e) {
		e.at(pos)
	}
	return err
}
