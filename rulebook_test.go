package unveil_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/fwojciec/unveil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberRules() *unveil.Rulebook[int] {
	rb := unveil.NewRulebook[int]()
	rb.Register("positive", func(n int) error {
		if n <= 0 {
			return errors.New("number is not positive")
		}
		return nil
	})
	rb.Register("even", func(n int) error {
		if n%2 != 0 {
			return errors.New("number is odd")
		}
		return nil
	})
	return rb
}

func TestRulebook_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts records passing every rule", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, numberRules().Validate(4))
	})

	t.Run("reports the first failing rule in name order", func(t *testing.T) {
		t.Parallel()

		err := numberRules().Validate(-3)

		assert.Equal(t, unveil.EINVALID, unveil.ErrorCode(err))
		assert.Equal(t, "number is odd", unveil.ErrorMessage(err))
	})

	t.Run("keeps application errors returned by rules", func(t *testing.T) {
		t.Parallel()

		rb := unveil.NewRulebook[int]()
		rb.Register("any", func(int) error { return unveil.Errorf(unveil.EINVALID, "custom") })

		assert.Equal(t, "custom", unveil.ErrorMessage(rb.Validate(1)))
	})

	t.Run("replaces rules registered twice under one name", func(t *testing.T) {
		t.Parallel()

		rb := numberRules()
		rb.Register("even", func(int) error { return nil })

		assert.NoError(t, rb.Validate(3))
		assert.Equal(t, []string{"even", "positive"}, rb.Names())
	})

	t.Run("accepts everything without rules", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, unveil.NewRulebook[string]().Validate(""))
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("drops failing records and logs one summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		out := slices.Collect(unveil.Validate(numberRules(), logger)(slices.Values([]int{2, 3, -2, 5, 4, -1})))

		assert.Equal(t, []int{2, 4}, out)

		var failed int
		var summary map[string]any
		for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
			var entry map[string]any
			require.NoError(t, json.Unmarshal([]byte(line), &entry))
			switch entry["msg"] {
			case "validation failed":
				failed++
				assert.Equal(t, "DEBUG", entry["level"])
			case "validation summary":
				require.Nil(t, summary, "summary logged twice")
				summary = entry
			}
		}

		assert.Equal(t, 4, failed)
		require.NotNil(t, summary)
		assert.Equal(t, "ERROR", summary["level"])
		// -1 and 3 and 5 are odd; -2 fails the positive rule only.
		assert.Equal(t, float64(3), summary["number is odd"])
		assert.Equal(t, float64(1), summary["number is not positive"])
		assert.Equal(t, float64(4), summary["total"])
	})

	t.Run("logs nothing when every record passes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		out := slices.Collect(unveil.Validate(numberRules(), logger)(slices.Values([]int{2, 4})))

		assert.Equal(t, []int{2, 4}, out)
		assert.Empty(t, buf.String())
	})

	t.Run("skips the summary when the consumer stops early", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		for range unveil.Validate(numberRules(), logger)(slices.Values([]int{3, 2, 5})) {
			break
		}

		assert.NotContains(t, buf.String(), "validation summary")
	})

	t.Run("tallies every iteration separately", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		seq := unveil.Validate(numberRules(), logger)(slices.Values([]int{3}))

		_ = slices.Collect(seq)
		_ = slices.Collect(seq)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		for _, line := range lines {
			assert.Contains(t, line, "validation summary")
			assert.Contains(t, line, "total=1")
		}
	})
}
