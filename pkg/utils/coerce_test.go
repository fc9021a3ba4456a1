package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"abc", "abc"},
		{float64(3), "3"},
		{1.5, "1.5"},
		{true, "true"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, String(tt.in))
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "a,b", []string{"a", "b"}},
		{"spaces and blanks", " a , ,b ,", []string{"a", "b"}},
		{"empty", "", []string{}},
		{"only commas", ",,,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, SplitList(tt.in))
		})
	}
}

func TestToList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"x", "y"}, ToList([]any{"x", "y"}))
	assert.Equal(t, []string{"x", "y"}, ToList("x, y"))
	assert.Equal(t, []string{}, ToList(nil))
	assert.Equal(t, []string{"", "1"}, ToList([]any{"", float64(1)}))
}

func TestWrapScalar(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"nature"}, WrapScalar("nature"))
	assert.Equal(t, []string{"a", "b"}, WrapScalar([]any{"a", "b"}))
	assert.Equal(t, []string{}, WrapScalar(nil))
	assert.Equal(t, []string{}, WrapScalar(""))
	assert.Equal(t, []string{"7"}, WrapScalar(float64(7)))
}

func TestAnyList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []any{"a", "b"}, AnyList([]string{"a", "b"}))
	assert.Equal(t, []any{}, AnyList(nil))
}
