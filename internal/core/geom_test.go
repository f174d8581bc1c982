package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsMinMax(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
	assert.Equal(t, 0, Abs(0))
	assert.Equal(t, -2, Min(-2, 5))
	assert.Equal(t, 5, Max(-2, 5))
}

func TestDigits(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected int
	}{
		{"zero", 0, 1},
		{"single", 7, 1},
		{"two digits", 10, 2},
		{"three digits", 999, 3},
		{"negative", -1, 2},
		{"negative two digits", -42, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Digits(tc.n))
		})
	}
}
