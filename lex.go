package calc

import (
	"strconv"
	"strings"
	"unicode"
)

// reader is a rune cursor over the source text. It owns the position
// bookkeeping: every consumed rune advances the cursor, and newlines roll
// the line counter.
type reader struct {
	src []rune
	i   int
	pos Position
}

func newReader(src string) *reader {
	return &reader{src: []rune(src), pos: Position{Line: 1, Col: 1}}
}

// peek returns the next rune without consuming it.
func (r *reader) peek() (rune, bool) {
	if r.i >= len(r.src) {
		return 0, false
	}
	return r.src[r.i], true
}

// consume returns the next rune and advances the position over it.
func (r *reader) consume() (rune, bool) {
	c, ok := r.peek()
	if !ok {
		return 0, false
	}
	r.i++
	r.pos.advance(c)
	return c, true
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// Tokenize lexes src into a token sequence. Empty input yields an empty
// sequence, not an error; downstream stages decide how to treat it.
//
// When allowIdents is false, characters that would begin an identifier or
// function call are rejected with ErrInvalidCharacter. Callers with no
// Definitions or Functions to resolve against use that form to fail early.
func Tokenize(src string, allowIdents bool) ([]Token, error) {
	in := newReader(src)
	var tokens []Token
	for {
		c, ok := in.peek()
		if !ok {
			return tokens, nil
		}
		if isSpace(c) {
			in.consume()
			continue
		}
		tok, err := nextToken(in, allowIdents)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// nextToken lexes exactly one token. The reader must not be positioned on
// whitespace.
func nextToken(in *reader, allowIdents bool) (Token, error) {
	pos := in.pos
	c, ok := in.peek()
	if !ok {
		return Token{}, errAt(ErrUnexpectedEOI, pos, "a token is required")
	}
	if op := singleCharOp(c); op != OpNone {
		in.consume()
		return operatorToken(op, pos), nil
	}
	switch {
	case (unicode.IsLetter(c) || c == '_') && allowIdents:
		return lexIdent(in, allowIdents)
	case unicode.IsDigit(c):
		return lexNumber(in)
	default:
		return Token{}, errAt(ErrInvalidCharacter, pos, "%q", string(c))
	}
}

func singleCharOp(c rune) Operator {
	switch c {
	case '+':
		return OpAdd
	case '-':
		return OpSub
	case '*':
		return OpMul
	case '/', '÷':
		return OpDiv
	case '%':
		return OpMod
	case '^':
		return OpPow
	case '=':
		return OpAssign
	case '(':
		return OpLeftParen
	case ')':
		return OpRightParen
	}
	return OpNone
}

// lexNumber scans consecutive digits with at most one decimal point.
func lexNumber(in *reader) (Token, error) {
	pos := in.pos
	var lit strings.Builder
	decimal := false
	for {
		c, ok := in.peek()
		if !ok {
			break
		}
		if unicode.IsDigit(c) {
			lit.WriteRune(c)
			in.consume()
			continue
		}
		if c == '.' {
			if decimal {
				return Token{}, errAt(ErrInvalidNumber, pos, "%q has a second decimal point", lit.String())
			}
			decimal = true
			lit.WriteRune(c)
			in.consume()
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(lit.String(), 64)
	if err != nil {
		return Token{}, errAt(ErrInvalidNumber, pos, "%q", lit.String())
	}
	n := Number{value: v, decimal: decimal}
	return Token{Kind: TokenNumber, Num: n, Pos: pos}, nil
}

// lexIdent scans an identifier. The caller has checked that the current rune
// may begin one. If the identifier is immediately followed by (, it becomes
// a function call and the argument list is lexed by re-entering the
// tokenizer at each comma-separated slot.
func lexIdent(in *reader, allowIdents bool) (Token, error) {
	pos := in.pos
	var name strings.Builder
	c, _ := in.consume()
	name.WriteRune(c)
	for {
		c, ok := in.peek()
		if !ok {
			break
		}
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' {
			name.WriteRune(c)
			in.consume()
			continue
		}
		if c == '(' {
			in.consume()
			args, err := lexArgs(in, allowIdents)
			if err != nil {
				return Token{}, err
			}
			return Token{Kind: TokenCall, Name: name.String(), Args: args, Pos: pos}, nil
		}
		break
	}
	return Token{Kind: TokenIdentifier, Name: name.String(), Pos: pos}, nil
}

// lexArgs lexes a call's argument list up to the closing ). A list that
// runs to end of input yields the arguments lexed so far; the outer consumer
// reports end-of-input if it needed more.
func lexArgs(in *reader, allowIdents bool) ([]Token, error) {
	var args []Token
	for {
		c, ok := in.peek()
		if !ok {
			return args, nil
		}
		if isSpace(c) {
			in.consume()
			continue
		}
		if c == ')' {
			in.consume()
			return args, nil
		}
		arg, err := nextToken(in, allowIdents)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		// A comma is required between arguments.
		for {
			c, ok := in.peek()
			if !ok {
				break
			}
			if isSpace(c) {
				in.consume()
				continue
			}
			if c == ')' {
				break
			}
			if c == ',' {
				in.consume()
				break
			}
			return nil, errAt(ErrExpected, in.pos, "expected %q, found %q", ", or )", string(c))
		}
	}
}
