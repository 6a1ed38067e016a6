package unveil

// Record kinds.
const (
	KindCase    = "case"
	KindCompany = "company"
)

// Record is a flat structured entity emitted by an extraction pipeline.
type Record interface {
	// RecordKind names the record schema.
	RecordKind() string
}

// Case is one visually confirmed loss of a piece of equipment.
//
// Fields are filled in as the parser chain unwinds: the entry stage sets
// the identifier, statuses, confirmation URL and cause; the model stage
// sets model and country of production; the category stage sets the asset
// category; the page stage sets the country of loss. Cause and Attachment
// are optional and nil when absent.
type Case struct {
	ModelCaseID         int      `json:"model_case_id"`
	Status              []string `json:"status"`
	ConfirmationURL     string   `json:"confirmation_url"`
	Cause               []string `json:"cause"`
	AssetCategory       string   `json:"asset_category"`
	Model               string   `json:"model"`
	CountryOfLoss       string   `json:"country_of_loss"`
	CountryOfProduction string   `json:"country_of_production"`
	Attachment          *string  `json:"attachment"`
}

// RecordKind implements Record.
func (Case) RecordKind() string { return KindCase }

// Company is one company's operating status as graded by the Yale tracker.
type Company struct {
	Name        string `json:"name"`
	Action      string `json:"action"`
	Industry    string `json:"industry"`
	Country     string `json:"country"`
	Grade       string `json:"grade"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// RecordKind implements Record.
func (Company) RecordKind() string { return KindCompany }
