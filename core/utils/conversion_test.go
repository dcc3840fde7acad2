package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Nil", nil, ""},
		{"String", "abc", "abc"},
		{"WholeFloat", float64(300), "300"},
		{"LargeID", float64(1234567890123), "1234567890123"},
		{"Fraction", 1.5, "1.5"},
		{"Bool", true, "true"},
		{"Int", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 0, ToInt(nil))
	assert.Equal(t, 300, ToInt("300"))
	assert.Equal(t, 250, ToInt(" 250 "))
	assert.Equal(t, 50, ToInt("50.0"))
	assert.Equal(t, 7, ToInt(float64(7)))
	assert.Equal(t, 0, ToInt("abc"))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool("TRUE"))
	assert.True(t, ToBool("true"))
	assert.True(t, ToBool("1"))
	assert.True(t, ToBool(float64(1)))
	assert.False(t, ToBool("FALSE"))
	assert.False(t, ToBool(""))
	assert.False(t, ToBool(nil))
}
