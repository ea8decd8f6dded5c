package calc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aefron/calc"
)

func TestBuiltins(t *testing.T) {
	funcs := calc.Builtins()
	cases := []struct {
		src  string
		want float64
	}{
		{"log(1000)", 3},
		{"log(2, 16)", 4},
		{"ln(1)", 0},
		{"sqrt(49)", 7},
		{"abs(3) + sqrt(16)", 7},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			n, err := calc.EvaluateWithDefined(c.src, nil, funcs)
			require.NoError(t, err)
			assert.InDelta(t, c.want, n.Float64(), 1e-12)
		})
	}
}

func TestBuiltinDomains(t *testing.T) {
	funcs := calc.Builtins()
	cases := []string{
		"log(0)",
		"log(1, 5)",
		"log(2, 0)",
		"ln(0)",
		"sqrt(-1)",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			_, err := calc.EvaluateWithDefined(src, nil, funcs)
			require.ErrorIs(t, err, calc.ErrInvalidArgument)
		})
	}
}

func TestBuiltinArity(t *testing.T) {
	funcs := calc.Builtins()
	for _, src := range []string{"log(1, 2, 3)", "ln(1, 2)", "sqrt()"} {
		t.Run(src, func(t *testing.T) {
			_, err := calc.EvaluateWithDefined(src, nil, funcs)
			require.ErrorIs(t, err, calc.ErrInvalidArgumentCount)
		})
	}
}

func TestFuncOf(t *testing.T) {
	funcs := calc.Functions{
		"sum": calc.FuncOf(func(args []calc.Number) (calc.Number, error) {
			total := 0.0
			for _, a := range args {
				total += a.Float64()
			}
			return calc.NewNumber(total), nil
		}),
	}
	n, err := calc.EvaluateWithDefined("sum(1, 2, 3, 4)", nil, funcs)
	require.NoError(t, err)
	assert.Equal(t, 10.0, n.Float64())
}

func TestBadArgCount(t *testing.T) {
	err := calc.BadArgCount("ln", 1, 3)
	require.ErrorIs(t, err, calc.ErrInvalidArgumentCount)
	assert.Contains(t, err.Error(), "ln expects 1 argument, got 3")
}

func TestFunctionErrorsPropagateVerbatim(t *testing.T) {
	sentinel := assert.AnError
	funcs := calc.Functions{
		"boom": calc.FuncOf(func([]calc.Number) (calc.Number, error) {
			return calc.Number{}, sentinel
		}),
	}
	_, err := calc.EvaluateWithDefined("boom()", nil, funcs)
	require.ErrorIs(t, err, sentinel)
}
