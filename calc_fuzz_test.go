package calc_test

import (
	"testing"

	"github.com/aefron/calc"
)

func FuzzEvaluateWithDefined(f *testing.F) {
	f.Add("1 + 2 * 3")
	f.Add("(x + 4) / 5")
	f.Add("log(log(2, 4), x)")
	f.Add("3 - -5")
	defs := calc.Definitions{"x": calc.NewInt(16)}
	f.Fuzz(func(t *testing.T, s string) {
		// Malformed input must surface as an error, never a panic.
		calc.EvaluateWithDefined(s, defs, calc.Builtins())
	})
}
