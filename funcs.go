package calc

import "math"

// Func is a function callable from an expression. Implementations own their
// arity: report a wrong argument count with BadArgCount. The core invokes a
// Func synchronously and never retains it; implementations need not be safe
// for concurrent use unless the caller evaluates concurrently.
type Func interface {
	Call(args []Number) (Number, error)
}

// Functions maps function names to their implementations. The evaluator
// only ever reads it.
type Functions map[string]Func

// FuncOf adapts an ordinary function to Func.
type FuncOf func(args []Number) (Number, error)

func (f FuncOf) Call(args []Number) (Number, error) {
	return f(args)
}

type arity struct {
	name string
	n    int
	fn   FuncOf
}

func (a arity) Call(args []Number) (Number, error) {
	if len(args) != a.n {
		return Number{}, BadArgCount(a.name, a.n, len(args))
	}
	return a.fn(args)
}

// Arity wraps fn so that invoking it with other than n arguments reports
// ErrInvalidArgumentCount under the given function name.
func Arity(name string, n int, fn FuncOf) Func {
	return arity{name: name, n: n, fn: fn}
}

// Builtins returns a fresh Functions table with the package's stock
// functions. Callers may add to or shadow entries freely; the table is not
// shared.
func Builtins() Functions {
	return Functions{
		"log":  FuncOf(logFn),
		"ln":   Arity("ln", 1, domain1("ln", math.Log, positive)),
		"sqrt": Arity("sqrt", 1, domain1("sqrt", math.Sqrt, nonNegative)),
		"abs":  Arity("abs", 1, func(args []Number) (Number, error) {
			return NewNumber(math.Abs(args[0].Float64())), nil
		}),
	}
}

// logFn is log(base, value), or log(value) for base 10.
func logFn(args []Number) (Number, error) {
	switch len(args) {
	case 1:
		v := args[0].Float64()
		if v <= 0 {
			return Number{}, errOf(ErrInvalidArgument, "log: %s", args[0])
		}
		return NewNumber(math.Log10(v)), nil
	case 2:
		base, v := args[0].Float64(), args[1].Float64()
		if base <= 0 || base == 1 || v <= 0 {
			return Number{}, errOf(ErrInvalidArgument, "log: %s, %s", args[0], args[1])
		}
		return NewNumber(math.Log(v) / math.Log(base)), nil
	default:
		return Number{}, BadArgCount("log", 2, len(args))
	}
}

type domainCheck func(float64) bool

func positive(v float64) bool    { return v > 0 }
func nonNegative(v float64) bool { return v >= 0 }

func domain1(name string, f func(float64) float64, ok domainCheck) FuncOf {
	return func(args []Number) (Number, error) {
		v := args[0].Float64()
		if !ok(v) {
			return Number{}, errOf(ErrInvalidArgument, "%s: %s", name, args[0])
		}
		return NewNumber(f(v)), nil
	}
}
