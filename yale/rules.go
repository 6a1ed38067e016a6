package yale

import (
	"errors"
	"slices"

	"github.com/fwojciec/unveil"
)

// NewRulebook returns the rules a complete company status must satisfy.
func NewRulebook() *unveil.Rulebook[unveil.Company] {
	rb := unveil.NewRulebook[unveil.Company]()
	rb.Register("name", required("Company.name", func(c unveil.Company) string { return c.Name }))
	rb.Register("action", required("Company.action", func(c unveil.Company) string { return c.Action }))
	rb.Register("industry", required("Company.industry", func(c unveil.Company) string { return c.Industry }))
	rb.Register("country", required("Company.country", func(c unveil.Company) string { return c.Country }))
	rb.Register("status", required("Company.status", func(c unveil.Company) string { return c.Status }))
	rb.Register("description", required("Company.description", func(c unveil.Company) string { return c.Description }))
	rb.Register("grade", ruleGrade)
	return rb
}

// required returns a rule rejecting companies whose field is empty.
func required(field string, get func(unveil.Company) string) unveil.Rule[unveil.Company] {
	reason := errors.New(field + " is an empty string")
	return func(c unveil.Company) error {
		if get(c) == "" {
			return reason
		}
		return nil
	}
}

func ruleGrade(c unveil.Company) error {
	if !slices.Contains(Grades, c.Grade) {
		return errors.New("Company.grade is not recognized")
	}
	return nil
}
