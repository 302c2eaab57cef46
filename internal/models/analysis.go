package models

// AnalysisReport is the structured result returned by the text-analysis
// collaborator. Missing or malformed fields in its response are defaulted
// to empty values, never propagated as errors.
type AnalysisReport struct {
	Summary     string   `json:"summary"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}
