package oryx_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/unveil"
	"github.com/fwojciec/unveil/goquery"
	"github.com/stretchr/testify/require"
)

const (
	sovietFlag = "https://upload.wikimedia.org/wikipedia/commons/thumb/a/a9/Flag_of_the_Soviet_Union.svg/23px-Flag_of_the_Soviet_Union.svg.png"
	russiaFlag = "https://upload.wikimedia.org/wikipedia/en/thumb/f/f3/Flag_of_Russia.svg/23px-Flag_of_Russia.svg.png"
)

// parse builds a document tree from markup.
func parse(t *testing.T, html string) unveil.Node {
	t.Helper()
	root, err := goquery.NewParser().Parse(strings.NewReader(html))
	require.NoError(t, err)
	return root
}

// first returns the first element with the given tag in markup.
func first(t *testing.T, html, tag string) unveil.Node {
	t.Helper()
	n, ok := unveil.First(parse(t, html), tag)
	require.True(t, ok, "no <%s> in fixture", tag)
	return n
}

// article wraps part markup in an article body, placing it at the given
// part index behind empty parts.
func article(index int, part string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta name="generator" content="Blogger"></head>
<body>
<div class="post-body entry-content float-container" itemprop="articleBody">
%s
<div>%s</div>
</div>
</body>
</html>`, strings.Repeat("<div><p>intro</p></div>\n", index), part)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// capture returns a logger writing JSON lines at debug level into a buffer.
func capture() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

// entries decodes the JSON log lines with the given message.
func entries(t *testing.T, buf *bytes.Buffer, msg string) []map[string]any {
	t.Helper()
	var found []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["msg"] == msg {
			found = append(found, entry)
		}
	}
	return found
}

func collect(t *testing.T, seq func(func(unveil.Case, error) bool)) ([]unveil.Case, []error) {
	t.Helper()
	var cases []unveil.Case
	var errs []error
	for c, err := range seq {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cases = append(cases, c)
	}
	return cases, errs
}
