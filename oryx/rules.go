package oryx

import (
	"errors"
	"slices"
	"unicode"

	"github.com/fwojciec/unveil"
)

// NewRulebook returns the rules a complete case must satisfy.
func NewRulebook() *unveil.Rulebook[unveil.Case] {
	rb := unveil.NewRulebook[unveil.Case]()
	rb.Register("model_case_id", ruleModelCaseID)
	rb.Register("status", ruleStatus)
	rb.Register("confirmation_url", ruleConfirmationURL)
	rb.Register("cause", ruleCause)
	rb.Register("asset_category", ruleAssetCategory)
	rb.Register("model", ruleModel)
	rb.Register("country_of_loss", ruleCountryOfLoss)
	rb.Register("country_of_production", ruleCountryOfProduction)
	rb.Register("attachment", ruleAttachment)
	return rb
}

func ruleModelCaseID(c unveil.Case) error {
	if c.ModelCaseID < 1 {
		return errors.New("Case.model_case_id is less than 1")
	}
	return nil
}

func ruleStatus(c unveil.Case) error {
	if len(c.Status) == 0 {
		return errors.New("Case.status is empty")
	}
	for _, s := range c.Status {
		if s == "" {
			return errors.New("Case.status contains an empty element")
		}
		if !slices.Contains(Statuses, s) {
			return errors.New("Case.status contains an unknown status")
		}
	}
	return nil
}

func ruleConfirmationURL(c unveil.Case) error {
	if c.ConfirmationURL == "" {
		return errors.New("Case.confirmation_url is an empty string")
	}
	return nil
}

func ruleCause(c unveil.Case) error {
	if c.Cause == nil {
		return nil
	}
	if len(c.Cause) == 0 {
		return errors.New("Case.cause is an empty list")
	}
	if slices.Contains(c.Cause, "") {
		return errors.New("Case.cause contains an empty element")
	}
	return nil
}

func ruleAssetCategory(c unveil.Case) error {
	if c.AssetCategory == "" {
		return errors.New("Case.asset_category is an empty string")
	}
	if !isLower(c.AssetCategory) {
		return errors.New("Case.asset_category is not lowercase")
	}
	return nil
}

func ruleModel(c unveil.Case) error {
	if c.Model == "" {
		return errors.New("Case.model is an empty string")
	}
	return nil
}

func ruleCountryOfLoss(c unveil.Case) error {
	if c.CountryOfLoss == "" {
		return errors.New("Case.country_of_loss is an empty string")
	}
	if !isLower(c.CountryOfLoss) {
		return errors.New("Case.country_of_loss is not lowercase")
	}
	return nil
}

func ruleCountryOfProduction(c unveil.Case) error {
	if c.CountryOfProduction == "" {
		return errors.New("Case.country_of_production is an empty string")
	}
	if !isLower(c.CountryOfProduction) {
		return errors.New("Case.country_of_production is not lowercase")
	}
	return nil
}

func ruleAttachment(c unveil.Case) error {
	if c.Attachment != nil && *c.Attachment == "" {
		return errors.New("Case.attachment is an empty string")
	}
	return nil
}

// isLower reports whether s has at least one cased letter and no
// uppercase or titlecase letters.
func isLower(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}
