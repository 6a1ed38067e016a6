package unveil

import (
	"iter"
	"log/slog"
)

// Stage transforms one record stream into another. Stages are lazy and
// single-pass; any state a stage keeps is allocated per iteration of the
// stream it returns.
type Stage[T any] func(iter.Seq[T]) iter.Seq[T]

// Chain composes stages in order: Chain(a, b)(seq) is b(a(seq)).
func Chain[T any](stages ...Stage[T]) Stage[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] {
		for _, stage := range stages {
			seq = stage(seq)
		}
		return seq
	}
}

// Map returns a stage applying fn to every record.
func Map[T any](fn func(T) T) Stage[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			for v := range seq {
				if !yield(fn(v)) {
					return
				}
			}
		}
	}
}

// Renumber returns a stage that replaces each record's identifier with a
// counter scoped to its key. Counters start at 1 and increase by one per
// record emitted for that key.
func Renumber[T any](key func(T) string, assign func(T, int) T) Stage[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			counts := make(map[string]int)
			for v := range seq {
				k := key(v)
				counts[k]++
				if !yield(assign(v, counts[k])) {
					return
				}
			}
		}
	}
}

// SkipErrors drops the errors of a result-tagged stream, logging each one,
// and yields the records.
func SkipErrors[T any](seq iter.Seq2[T, error], logger *slog.Logger) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, err := range seq {
			if err != nil {
				msg := ErrorMessage(err)
				if ErrorCode(err) == EINTERNAL {
					msg = err.Error()
				}
				logger.Error("skipped scope", "code", ErrorCode(err), "err", msg)
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
