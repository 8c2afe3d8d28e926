package engine

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/aquasales/crm-platform/internal/model"
)

// suggestionCount is how many follow-up questions each batch asks for.
const suggestionCount = 4

func suggestionPrompt(messages []model.Message) string {
	return fmt.Sprintf(
		"Based on this sales conversation:\n%s\n"+
			"Generate %d relevant follow-up questions for the sales representative. "+
			"Respond ONLY with JSON in the form {\"suggestions\": [\"Question 1\", \"Question 2\", ...]}.",
		transcriptLines(messages), suggestionCount,
	)
}

// parseSuggestions decodes the structured-output payload tolerantly. The
// provider is asked for {"suggestions": [...]} but is not contractually
// guaranteed to comply, so a bare array and an arbitrary object (values
// taken in key order) are accepted too. Anything unparsable yields an
// empty list, never an error.
func parseSuggestions(raw string) []string {
	var wrapped struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapped); err == nil && wrapped.Suggestions != nil {
		return wrapped.Suggestions
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &object); err == nil {
		keys := make([]string, 0, len(object))
		for k := range object {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		values := make([]string, 0, len(object))
		for _, k := range keys {
			var s string
			if err := json.Unmarshal(object[k], &s); err == nil {
				values = append(values, s)
				continue
			}
			var nested []string
			if err := json.Unmarshal(object[k], &nested); err == nil {
				values = append(values, nested...)
			}
		}
		return values
	}

	return []string{}
}
