package yale_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/fwojciec/unveil"
	"github.com/fwojciec/unveil/goquery"
	"github.com/fwojciec/unveil/yale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// section renders one status section with the given rows of
// name, action, industry and country cells.
func section(id, status, description string, rows ...[4]string) string {
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n", r[0], r[1], r[2], r[3])
	}
	return fmt.Sprintf(`<section id="%s">
<div class="layout layout--onecol">
<div class="layout__region layout__region--one">
<div><h3> %s </h3></div>
<div>
<div class="clearfix text-formatted text-long"><p>%s</p><p>more</p></div>
<table class="responsive-enabled">
<thead><tr><th>Name</th><th>Action</th><th>Industry</th><th>Country</th></tr></thead>
<tbody>
%s</tbody>
</table>
</div>
</div>
</div>
</section>`, id, status, description, b.String())
}

func page(sections ...string) string {
	return `<!DOCTYPE html><html><head><meta name="Generator" content="Drupal 9"></head><body>` +
		strings.Join(sections, "\n") + `</body></html>`
}

func parse(t *testing.T, html string) unveil.Node {
	t.Helper()
	root, err := goquery.NewParser().Parse(strings.NewReader(html))
	require.NoError(t, err)
	return root
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var (
	withdrawal = section("withdrawal", "Withdrawal",
		"Companies totally halting Russian engagements or completely exiting Russia (1000 Companies) (Grade: A)",
		[4]string{"Acme", "Exited the market", "Industrials", "United States"},
		[4]string{"Globex", "Sold local subsidiary", "Energy", "Germany"},
	)
	suspension = section("suspension", "Suspension",
		"Companies temporarily curtailing most or nearly all operations while keeping return options open (500 Companies) (Grade: B)",
		[4]string{"Initech", "Paused operations", "Information Technology", "Finland"},
	)
	diggingIn = section("diggingin", "Digging In",
		"Companies defying demands for exit or reduction of activities (200 Companies) (Grade: F)",
		[4]string{"Hooli", "", "Materials", "China"},
		[4]string{"Umbrella", "Continues business as usual", "Health Care", "Russia"},
	)
)

func TestDefinition(t *testing.T) {
	t.Parallel()

	description, grade, ok := yale.Definition(" Companies scaling back some operations (150 Companies) (Grade: C) ")
	assert.True(t, ok)
	assert.Equal(t, "Companies scaling back some operations", description)
	assert.Equal(t, "C", grade)

	_, _, ok = yale.Definition("Companies scaling back some operations (Grade: C)")
	assert.False(t, ok)
}

func TestParser_Section(t *testing.T) {
	t.Parallel()

	t.Run("stamps section fields on every row", func(t *testing.T) {
		t.Parallel()

		root := parse(t, page(withdrawal))
		region, ok := unveil.FindByClass(root, "div", "layout__region layout__region--one")
		require.True(t, ok)

		var companies []unveil.Company
		for c, err := range yale.NewParser().Section(region) {
			require.NoError(t, err)
			companies = append(companies, c)
		}

		require.Len(t, companies, 2)
		assert.Equal(t, unveil.Company{
			Name:        "Acme",
			Action:      "Exited the market",
			Industry:    "Industrials",
			Country:     "United States",
			Grade:       "A",
			Status:      "Withdrawal",
			Description: "Companies totally halting Russian engagements or completely exiting Russia",
		}, companies[0])
		assert.Equal(t, "Globex", companies[1].Name)
	})

	t.Run("yields one mismatch for an unrecognized description", func(t *testing.T) {
		t.Parallel()

		root := parse(t, page(section("withdrawal", "Withdrawal", "Companies leaving",
			[4]string{"Acme", "Exited", "Industrials", "United States"})))
		region, ok := unveil.FindByClass(root, "div", "layout__region layout__region--one")
		require.True(t, ok)

		var errs []error
		for _, err := range yale.NewParser().Section(region) {
			require.Error(t, err)
			errs = append(errs, err)
		}

		require.Len(t, errs, 1)
		assert.Equal(t, unveil.EMISMATCH, unveil.ErrorCode(errs[0]))
		assert.Contains(t, unveil.ErrorMessage(errs[0]), `description of status "Withdrawal" not recognized`)
	})

	t.Run("yields one mismatch for a table without body", func(t *testing.T) {
		t.Parallel()

		html := strings.Replace(section("withdrawal", "Withdrawal",
			"Companies totally halting Russian engagements or completely exiting Russia (1000 Companies) (Grade: A)"),
			"<tbody>\n</tbody>", "", 1)
		region, ok := unveil.FindByClass(parse(t, page(html)), "div", "layout__region layout__region--one")
		require.True(t, ok)

		var errs []error
		for _, err := range yale.NewParser().Section(region) {
			require.Error(t, err)
			errs = append(errs, err)
		}

		require.Len(t, errs, 1)
		assert.Equal(t, unveil.EMISMATCH, unveil.ErrorCode(errs[0]))
		assert.Contains(t, unveil.ErrorMessage(errs[0]), `company table of status "Withdrawal" has no body`)
	})
}

func TestExtractor_Companies(t *testing.T) {
	t.Parallel()

	t.Run("extracts validated companies of all sections in page order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		e := yale.NewExtractor(logger)

		seq, err := e.Companies(parse(t, page(diggingIn, suspension, withdrawal)), yale.All)
		require.NoError(t, err)

		var names []string
		for c := range seq {
			names = append(names, c.Name)
		}

		assert.Equal(t, []string{"Umbrella", "Initech", "Acme", "Globex"}, names)

		var skipped, summaries int
		for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
			var entry map[string]any
			require.NoError(t, json.Unmarshal([]byte(line), &entry))
			switch entry["msg"] {
			case "skipped scope":
				skipped++
			case "validation summary":
				summaries++
				assert.Equal(t, float64(1), entry["Company.action is an empty string"])
				assert.Equal(t, float64(1), entry["total"])
			}
		}
		// buyingtime and scalingback are missing from the page.
		assert.Equal(t, 2, skipped)
		assert.Equal(t, 1, summaries)
	})

	t.Run("scans a single section", func(t *testing.T) {
		t.Parallel()

		e := yale.NewExtractor(discard())
		seq, err := e.Companies(parse(t, page(diggingIn, suspension, withdrawal)), yale.Suspension)
		require.NoError(t, err)

		companies := slices.Collect(seq)
		require.Len(t, companies, 1)
		assert.Equal(t, "Initech", companies[0].Name)
		assert.Equal(t, "B", companies[0].Grade)
	})

	t.Run("returns EINVALID for an unknown section", func(t *testing.T) {
		t.Parallel()

		e := yale.NewExtractor(discard())
		_, err := e.Companies(parse(t, page(withdrawal)), "leaving")

		assert.Equal(t, unveil.EINVALID, unveil.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when the section is missing", func(t *testing.T) {
		t.Parallel()

		e := yale.NewExtractor(discard())
		_, err := e.Companies(parse(t, page(withdrawal)), yale.BuyingTime)

		assert.Equal(t, unveil.ENOTFOUND, unveil.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for a page without sections", func(t *testing.T) {
		t.Parallel()

		e := yale.NewExtractor(discard())
		_, err := e.Companies(parse(t, page("<p>maintenance</p>")), yale.All)

		assert.Equal(t, unveil.ENOTFOUND, unveil.ErrorCode(err))
	})
}

func TestNewRulebook(t *testing.T) {
	t.Parallel()

	rb := yale.NewRulebook()
	valid := unveil.Company{
		Name: "Acme", Action: "Exited", Industry: "Industrials", Country: "United States",
		Grade: "A", Status: "Withdrawal", Description: "Companies leaving",
	}

	assert.NoError(t, rb.Validate(valid))

	bad := valid
	bad.Grade = "E"
	err := rb.Validate(bad)
	assert.Equal(t, unveil.EINVALID, unveil.ErrorCode(err))
	assert.Equal(t, "Company.grade is not recognized", unveil.ErrorMessage(err))

	bad = valid
	bad.Name = ""
	assert.Equal(t, "Company.name is an empty string", unveil.ErrorMessage(rb.Validate(bad)))

	assert.Equal(t, []string{"action", "country", "description", "grade", "industry", "name", "status"}, rb.Names())
}

func TestExtractor_Selectors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"all", "diggingin", "buyingtime", "scalingback", "suspension", "withdrawal"},
		yale.NewExtractor(discard()).Selectors())
}
