package errors

import (
	"encoding/json"
)

// JSONOutput represents the JSON structure for error output
type JSONOutput struct {
	Status  string             `json:"status"`
	Errors  []*DefinitionError `json:"errors"`
	Summary Summary            `json:"summary"`
}

// Summary contains error counts grouped by phase
type Summary struct {
	ErrorCount int            `json:"error_count"`
	ByPhase    map[string]int `json:"by_phase"`
}

// FormatAsJSON formats a DefinitionError as JSON
func (e *DefinitionError) FormatAsJSON() (string, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatErrorsAsJSON formats multiple errors as JSON
func FormatErrorsAsJSON(errors []*DefinitionError) (string, error) {
	status := "success"
	if len(errors) > 0 {
		status = "error"
	}

	byPhase := make(map[string]int)
	for _, err := range errors {
		byPhase[err.Phase]++
	}

	output := JSONOutput{
		Status: status,
		Errors: errors,
		Summary: Summary{
			ErrorCount: len(errors),
			ByPhase:    byPhase,
		},
	}
	if output.Errors == nil {
		output.Errors = []*DefinitionError{}
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", err
	}

	return string(data), nil
}
