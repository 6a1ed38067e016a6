package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/unveil"
	"github.com/fwojciec/unveil/mock"
	unveilslog "github.com/fwojciec/unveil/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingRegistry_GetForHTML(t *testing.T) {
	t.Parallel()

	t.Run("logs detected kind with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		extractor := &mock.Extractor{}
		inner := &mock.ExtractorRegistry{
			GetForHTMLFn: func(html string) (unveil.Extractor, string) {
				return extractor, unveil.DatasetOryx
			},
		}

		registry := unveilslog.NewLoggingRegistry(inner, logger)
		got, kind := registry.GetForHTML("<html>oryx</html>")

		assert.Equal(t, extractor, got)
		assert.Equal(t, unveil.DatasetOryx, kind)
		output := buf.String()
		assert.Contains(t, output, `msg="kind detection"`)
		assert.Contains(t, output, "kind=oryx")
		assert.Contains(t, output, "registered=true")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs unknown kind", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ExtractorRegistry{
			GetForHTMLFn: func(html string) (unveil.Extractor, string) {
				return nil, ""
			},
		}

		registry := unveilslog.NewLoggingRegistry(inner, logger)
		got, _ := registry.GetForHTML("<html></html>")

		assert.Nil(t, got)
		assert.Contains(t, buf.String(), "kind=(unknown)")
		assert.Contains(t, buf.String(), "registered=false")
	})
}

func TestLoggingRegistry_Delegates(t *testing.T) {
	t.Parallel()

	extractor := &mock.Extractor{}
	var registered string
	inner := &mock.ExtractorRegistry{
		GetFn: func(kind string) unveil.Extractor {
			return extractor
		},
		RegisterFn: func(kind string, e unveil.Extractor) {
			registered = kind
		},
		ListFn: func() []string {
			return []string{unveil.DatasetOryx, unveil.DatasetYale}
		},
	}

	var buf bytes.Buffer
	registry := unveilslog.NewLoggingRegistry(inner, slog.New(slog.NewTextHandler(&buf, nil)))

	assert.Equal(t, extractor, registry.Get(unveil.DatasetYale))
	registry.Register(unveil.DatasetYale, extractor)
	assert.Equal(t, unveil.DatasetYale, registered)
	assert.Equal(t, []string{unveil.DatasetOryx, unveil.DatasetYale}, registry.List())
	assert.Empty(t, buf.String())
}
