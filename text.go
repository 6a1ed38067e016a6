package unveil

import (
	"iter"
	"strings"
)

// Alphanumerics is the ASCII letter and digit alphabet.
const Alphanumerics = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// seriesConjunctions are tried in order; the first one found in the last
// item of a series is the only one resolved.
var seriesConjunctions = []string{"and", "nor", "but", "or"}

// LexAlphabet yields the maximal runs of text made of characters in
// alphabet, skipping the characters between them.
//
//	LexAlphabet("12, 34a 5b6 7", "0123456789") // "12", "34", "5", "6", "7"
func LexAlphabet(text, alphabet string) iter.Seq[string] {
	return func(yield func(string) bool) {
		in := func(r rune) bool { return strings.ContainsRune(alphabet, r) }
		start := -1
		for i, r := range text {
			switch {
			case in(r) && start < 0:
				start = i
			case !in(r) && start >= 0:
				if !yield(text[start:i]) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(text[start:])
		}
	}
}

// LexAlphabetFunc is like LexAlphabet but casts each run with fn.
func LexAlphabetFunc[T any](text, alphabet string, fn func(string) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for run := range LexAlphabet(text, alphabet) {
			if !yield(fn(run)) {
				return
			}
		}
	}
}

// SplitSeries splits a delimited list written in prose, with or without an
// Oxford comma, into its items.
//
//	SplitSeries("a, b, c, and d", ",") // "a", "b", "c", "d"
//	SplitSeries("a, b, c and d", ",")  // "a", "b", "c", "d"
//
// Only the first conjunction found in the last item is resolved, so
// "a, b or c and d" splits on "and" and keeps "b or c" together.
func SplitSeries(text, delimiter string) []string {
	parts := strings.Split(text, delimiter+" ")
	items := make([]string, 0, len(parts)+1)
	for _, p := range parts {
		items = append(items, strings.TrimSpace(p))
	}

	last := items[len(items)-1]
	for _, conj := range seriesConjunctions {
		if strings.HasPrefix(last, conj+" ") {
			// Oxford comma: "..., and d"
			items[len(items)-1] = strings.TrimPrefix(last, conj+" ")
			break
		}
		if strings.Contains(last, " "+conj+" ") {
			items = items[:len(items)-1]
			for _, item := range strings.Split(last, " "+conj+" ") {
				items = append(items, strings.TrimSpace(item))
			}
			break
		}
	}
	return items
}

// MultiSplit splits text on each delimiter in turn, outer delimiter first,
// and trims whitespace from the resulting tokens. Token order is preserved.
//
//	MultiSplit("a, b and c", []string{",", " and "}) // "a", "b", "c"
func MultiSplit(text string, delimiters []string) []string {
	if len(delimiters) == 0 {
		return []string{strings.TrimSpace(text)}
	}
	var items []string
	for _, part := range strings.Split(text, delimiters[0]) {
		if len(delimiters) > 1 {
			items = append(items, MultiSplit(part, delimiters[1:])...)
			continue
		}
		items = append(items, strings.TrimSpace(part))
	}
	return items
}
