package unveil

import (
	"iter"
	"log/slog"
	"slices"
	"sort"
)

// Rule checks one property of a complete record. A non-nil error fails the
// record; its message is the failure reason reported in summaries.
type Rule[T any] func(T) error

// Rulebook is a set of named rules for one record schema.
// Rules are independent; registration order does not matter.
type Rulebook[T any] struct {
	rules map[string]Rule[T]
	names []string
}

// NewRulebook returns an empty rulebook.
func NewRulebook[T any]() *Rulebook[T] {
	return &Rulebook[T]{rules: make(map[string]Rule[T])}
}

// Register adds a rule under name, replacing any rule already registered
// with that name.
func (rb *Rulebook[T]) Register(name string, rule Rule[T]) {
	if _, ok := rb.rules[name]; !ok {
		rb.names = append(rb.names, name)
		sort.Strings(rb.names)
	}
	rb.rules[name] = rule
}

// Names returns the registered rule names in sorted order.
func (rb *Rulebook[T]) Names() []string {
	return slices.Clone(rb.names)
}

// Validate runs the rules against v and returns an EINVALID error carrying
// the reason of the first failing rule. Rules run in name order so the
// reported reason is stable across runs.
func (rb *Rulebook[T]) Validate(v T) error {
	for _, name := range rb.names {
		if err := rb.rules[name](v); err != nil {
			if ErrorCode(err) == EINVALID {
				return err
			}
			return Errorf(EINVALID, "%s", err.Error())
		}
	}
	return nil
}

// Validate returns a stage that drops records failing rb. Each failure is
// logged at debug level and tallied by reason; once the stream is
// exhausted a single summary line with every reason and the total is
// logged at error level, but only if anything failed.
func Validate[T any](rb *Rulebook[T], logger *slog.Logger) Stage[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			tally := make(map[string]int)
			total := 0
			for v := range seq {
				if err := rb.Validate(v); err != nil {
					reason := ErrorMessage(err)
					logger.Debug("validation failed", "record", v, "reason", reason)
					tally[reason]++
					total++
					continue
				}
				if !yield(v) {
					return
				}
			}
			logSummary(logger, tally, total)
		}
	}
}

// logSummary logs the reason tally of a finished validation pass.
func logSummary(logger *slog.Logger, tally map[string]int, total int) {
	if total == 0 {
		return
	}
	reasons := make([]string, 0, len(tally))
	for reason := range tally {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	args := make([]any, 0, len(reasons)+1)
	for _, reason := range reasons {
		args = append(args, slog.Int(reason, tally[reason]))
	}
	args = append(args, slog.Int("total", total))
	logger.Error("validation summary", args...)
}
