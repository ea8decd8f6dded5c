package calc

import "strings"

// Item is one element of a postfix sequence: an operator or an operand
// token (number, identifier, or function call).
type Item struct {
	op      Operator
	operand Token
	isOp    bool
}

// OperatorItem wraps an operator as a postfix item.
func OperatorItem(op Operator) Item {
	return Item{op: op, isOp: true}
}

// OperandItem wraps an operand token as a postfix item.
func OperandItem(tok Token) Item {
	return Item{operand: tok}
}

// IsOperator reports whether the item holds an operator.
func (it Item) IsOperator() bool {
	return it.isOp
}

// IsOperand reports whether the item holds an operand token.
func (it Item) IsOperand() bool {
	return !it.isOp
}

// Operator returns the held operator. Meaningful only when IsOperator.
func (it Item) Operator() Operator {
	return it.op
}

// Operand returns the held operand token. Meaningful only when IsOperand.
func (it Item) Operand() Token {
	return it.operand
}

func (it Item) String() string {
	if it.isOp {
		return it.op.String()
	}
	return it.operand.String()
}

// Postfix is an index-addressable postfix sequence. EvaluateWith rewrites
// identifier and call items in place as it resolves them, so a sequence
// should not be shared between concurrent evaluations.
type Postfix []Item

func (p Postfix) String() string {
	parts := make([]string, len(p))
	for i, it := range p {
		parts[i] = it.String()
	}
	return strings.Join(parts, " ")
}

// stackOp is an operator parked on the shunting-yard side stack, with the
// position of its token for parenthesis diagnostics.
type stackOp struct {
	op  Operator
	pos Position
}

// ToPostfix transforms an infix token sequence into postfix order with the
// shunting-yard algorithm. Operator placement is validated here: the
// returned sequence contains no parentheses, and every operator in it is
// binary and applicable.
//
// A minus sign at the start of the expression or directly after a binary
// operator negates the following numeric operand instead of acting as a
// binary operator. Unary plus is not recognized.
func ToPostfix(tokens []Token) (Postfix, error) {
	if len(tokens) == 0 {
		return nil, errOf(ErrEmptyExpression, "")
	}
	if first := tokens[0]; first.Kind == TokenOperator {
		switch first.Op {
		case OpSub, OpLeftParen:
		default:
			return nil, errAt(ErrInvalidLeadingOperator, first.Pos, "%q", first.Op.String())
		}
	}

	var (
		out     Postfix
		ops     []stackOp
		lastOp  Operator // OpNone when the previous token was not an operator
		pending bool     // negate the next numeric operand
		operand bool     // previous token was an operand
	)
	for i, tok := range tokens {
		switch tok.Kind {
		case TokenNumber:
			if operand {
				return nil, errAt(ErrTwoOperandsInARow, tok.Pos, "%q", tok.String())
			}
			if pending {
				tok.Num = tok.Num.Neg()
			}
			out = append(out, OperandItem(tok))
			operand = true
			lastOp = OpNone
			pending = false
		case TokenIdentifier, TokenCall:
			if operand {
				return nil, errAt(ErrTwoOperandsInARow, tok.Pos, "%q", tok.String())
			}
			out = append(out, OperandItem(tok))
			operand = true
			lastOp = OpNone
			pending = false
		case TokenOperator:
			switch tok.Op {
			case OpLeftParen:
				if operand {
					return nil, errAt(ErrMissingOperator, tok.Pos, `operand directly before "("`)
				}
				ops = append(ops, stackOp{OpLeftParen, tok.Pos})
				operand = false
				lastOp = OpNone
				pending = false
			case OpRightParen:
				found := false
				for len(ops) > 0 {
					top := ops[len(ops)-1]
					ops = ops[:len(ops)-1]
					if top.op == OpLeftParen {
						found = true
						break
					}
					out = append(out, OperatorItem(top.op))
				}
				if !found {
					return nil, errAt(ErrMismatchedParentheses, tok.Pos, `found ")", missing "("`)
				}
				operand = false
				lastOp = OpRightParen
				pending = false
			default:
				if i == 0 {
					// Leading minus; the check above admitted nothing else.
					pending = true
					continue
				}
				// A minus directly after a binary operator is a negation;
				// any other operator there is misplaced. lastOp is OpNone
				// after an operand or an open paren.
				if lastOp != OpNone && lastOp != OpRightParen {
					if tok.Op == OpSub {
						pending = true
						operand = false
						continue
					}
					return nil, errAt(ErrInvalidOperator, tok.Pos, "%q directly after %q", tok.Op.String(), lastOp.String())
				}
				prec, _ := tok.Op.precedence()
				for len(ops) > 0 {
					top := ops[len(ops)-1]
					if top.op == OpLeftParen {
						break
					}
					tp, ok := top.op.precedence()
					if ok && tp < prec {
						break
					}
					// Equal precedence pops: left associativity.
					out = append(out, OperatorItem(top.op))
					ops = ops[:len(ops)-1]
				}
				ops = append(ops, stackOp{tok.Op, tok.Pos})
				operand = false
				lastOp = tok.Op
				pending = false
			}
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.op == OpLeftParen {
			return nil, errAt(ErrMismatchedParentheses, top.pos, `found "(", missing ")"`)
		}
		out = append(out, OperatorItem(top.op))
	}
	return out, nil
}
