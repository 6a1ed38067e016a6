package unveil_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/fwojciec/unveil"
	"github.com/stretchr/testify/assert"
)

func TestLexAlphabet(t *testing.T) {
	t.Parallel()

	t.Run("yields maximal runs of the alphabet", func(t *testing.T) {
		t.Parallel()

		got := slices.Collect(unveil.LexAlphabet("12, 34a 5b6 7", "0123456789"))

		assert.Equal(t, []string{"12", "34", "5", "6", "7"}, got)
	})

	t.Run("yields nothing without alphabet characters", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, slices.Collect(unveil.LexAlphabet("-- ,", unveil.Alphanumerics)))
		assert.Empty(t, slices.Collect(unveil.LexAlphabet("", unveil.Alphanumerics)))
	})

	t.Run("handles multibyte separators", func(t *testing.T) {
		t.Parallel()

		got := slices.Collect(unveil.LexAlphabet("T-72 — BMP2", unveil.Alphanumerics))

		assert.Equal(t, []string{"T", "72", "BMP2"}, got)
	})

	t.Run("stops when the consumer stops", func(t *testing.T) {
		t.Parallel()

		var got []string
		for run := range unveil.LexAlphabet("a b c d", unveil.Alphanumerics) {
			got = append(got, run)
			if len(got) == 2 {
				break
			}
		}

		assert.Equal(t, []string{"a", "b"}, got)
	})
}

func TestLexAlphabetFunc(t *testing.T) {
	t.Parallel()

	got := slices.Collect(unveil.LexAlphabetFunc("1, 2 and 30", "0123456789", func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}))

	assert.Equal(t, []int{1, 2, 30}, got)
}

func TestSplitSeries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want []string
	}{
		{"a", []string{"a"}},
		{"a and b", []string{"a", "b"}},
		{"a, b, c, and d", []string{"a", "b", "c", "d"}},
		{"a, b, c and d", []string{"a", "b", "c", "d"}},
		{"a, b, or c", []string{"a", "b", "c"}},
		{"a, b nor c", []string{"a", "b", "c"}},
		{"a, b or c and d", []string{"a", "b or c", "d"}},
		{"artillery, Bayraktar TB2", []string{"artillery", "Bayraktar TB2"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, unveil.SplitSeries(tt.text, ","))
		})
	}
}

func TestMultiSplit(t *testing.T) {
	t.Parallel()

	t.Run("splits on every delimiter preserving order", func(t *testing.T) {
		t.Parallel()

		got := unveil.MultiSplit("a, b and c", []string{",", " and "})

		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("splits inner tokens of every outer token", func(t *testing.T) {
		t.Parallel()

		got := unveil.MultiSplit("1 and 2, 3 or 4, destroyed", []string{",", " and ", " or "})

		assert.Equal(t, []string{"1", "2", "3", "4", "destroyed"}, got)
	})

	t.Run("trims text without delimiters", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"a"}, unveil.MultiSplit("  a ", nil))
		assert.Equal(t, []string{"a b"}, unveil.MultiSplit(" a b", []string{","}))
	})
}
