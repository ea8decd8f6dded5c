package calc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aefron/calc"
)

func TestRound(t *testing.T) {
	cases := []struct {
		value  float64
		places int
		want   float64
	}{
		{1.2345, 2, 1.23},
		{1.2355, 3, 1.236},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{9.05, 1, 9.1},
		{1.0 / 3.0, 4, 0.3333},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, calc.Round(c.value, c.places), "Round(%v, %d)", c.value, c.places)
	}
}
