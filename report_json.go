package tokencss

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the structured JSON export schema for one generation
// pass.
type JSONOutput struct {
	Version     string         `json:"version"`
	Timestamp   string         `json:"timestamp"`
	Summary     JSONSummary    `json:"summary"`
	Diagnostics []string       `json:"diagnostics"`
	Candidates  JSONCandidates `json:"candidates"`
}

// JSONSummary contains high-level processing counts.
type JSONSummary struct {
	Collections  int `json:"collections"`
	Variables    int `json:"variables"`
	Declarations int `json:"declarations"`
	Diagnostics  int `json:"diagnostic_count"`
}

// JSONCandidates groups the three advisory candidate lists.
type JSONCandidates struct {
	ViewportRelative []Candidate `json:"viewport_relative"`
	Proportion       []Candidate `json:"proportion"`
	NonLinear        []Candidate `json:"non_linear"`
}

// WriteJSON writes the generation result as JSON.
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts a Result to the export schema.
func buildJSONOutput(result *Result) JSONOutput {
	diagnostics := result.Diagnostics
	if diagnostics == nil {
		diagnostics = []string{}
	}
	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			Collections:  result.Collections,
			Variables:    result.Variables,
			Declarations: result.Declarations,
			Diagnostics:  len(result.Diagnostics),
		},
		Diagnostics: diagnostics,
		Candidates: JSONCandidates{
			ViewportRelative: emptyIfNil(result.ViewportCandidates),
			Proportion:       emptyIfNil(result.ProportionCandidates),
			NonLinear:        emptyIfNil(result.NonLinearCandidates),
		},
	}
}

func emptyIfNil(list []Candidate) []Candidate {
	if list == nil {
		return []Candidate{}
	}
	return list
}
