package calc_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aefron/calc"
)

func TestSolve(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"-3 + 5", 2},
		{"3 - -5", 8},
		{"100 % 7 % 4", 2},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			n, err := calc.Solve(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, n.Float64())
		})
	}
}

func TestSolveDecimals(t *testing.T) {
	n, err := calc.Solve("1.3 + 2.5 * 3.1")
	require.NoError(t, err)
	assert.InDelta(t, 9.05, n.Float64(), 1e-12)
}

func TestSolveRejectsIdentifiers(t *testing.T) {
	_, err := calc.Solve("x + 1")
	require.ErrorIs(t, err, calc.ErrInvalidCharacter)
}

func TestSolveWith(t *testing.T) {
	defs := calc.Definitions{"x": calc.NewInt(16)}
	n, err := calc.SolveWith("(x + 4) / 5", defs)
	require.NoError(t, err)
	assert.Equal(t, 4.0, n.Float64())

	_, err = calc.SolveWith("y + 1", defs)
	require.ErrorIs(t, err, calc.ErrUndefinedVariable)
}

func TestEvaluateWithDefined(t *testing.T) {
	defs := calc.Definitions{"x": calc.NewInt(16)}
	n, err := calc.EvaluateWithDefined("log(log(2, 4), x)", defs, calc.Builtins())
	require.NoError(t, err)
	assert.InDelta(t, 4.0, n.Float64(), 1e-12)
}

func TestEmptyInputPolicy(t *testing.T) {
	// Empty input is rejected uniformly across entry points.
	for _, src := range []string{"", "   ", "\n"} {
		_, err := calc.Solve(src)
		assert.ErrorIs(t, err, calc.ErrEmptyExpression, "Solve(%q)", src)
		_, err = calc.SolveWith(src, calc.Definitions{})
		assert.ErrorIs(t, err, calc.ErrEmptyExpression, "SolveWith(%q)", src)
		_, err = calc.EvaluateWithDefined(src, nil, nil)
		assert.ErrorIs(t, err, calc.ErrEmptyExpression, "EvaluateWithDefined(%q)", src)
	}
}

func TestLeadingOperatorAsymmetry(t *testing.T) {
	// Unary minus is recognized, unary plus is not.
	_, err := calc.Solve("* 3")
	require.ErrorIs(t, err, calc.ErrInvalidLeadingOperator)
	_, err = calc.Solve("+ 3")
	require.ErrorIs(t, err, calc.ErrInvalidLeadingOperator)
	n, err := calc.Solve("- 3")
	require.NoError(t, err)
	assert.Equal(t, -3.0, n.Float64())
}

func ExampleSolve() {
	n, err := calc.Solve("(1 + 2) * 3")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(n)
	// Output: 9
}

func ExampleEvaluateWithDefined() {
	defs := calc.Definitions{"x": calc.NewInt(16)}
	n, err := calc.EvaluateWithDefined("log(log(2, 4), x)", defs, calc.Builtins())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(n)
	// Output: 4
}

func ExampleArity() {
	funcs := calc.Functions{
		"double": calc.Arity("double", 1, func(args []calc.Number) (calc.Number, error) {
			return calc.NewNumber(args[0].Float64() * 2), nil
		}),
	}
	n, _ := calc.EvaluateWithDefined("double(21)", nil, funcs)
	fmt.Println(n)
	// Output: 42
}
