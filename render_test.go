package calc_test

import (
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aefron/calc"
)

func TestFormatError(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	t.Run("with position", func(t *testing.T) {
		_, err := calc.Solve("1 + $")
		require.Error(t, err)
		got := calc.FormatError(err)
		assert.Equal(t, "error: invalid character: \"$\"\n  -> 1:5", got)
	})
	t.Run("without position", func(t *testing.T) {
		got := calc.FormatError(errors.New("boom"))
		assert.Equal(t, "error: boom", got)
	})
}
