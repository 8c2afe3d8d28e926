package engine

import (
	"strings"

	"github.com/aquasales/crm-platform/internal/model"
)

// ClassifyStage maps the latest message content to a conversation stage
// by case-insensitive keyword match. Precedence is deliberate:
// pricing/proposal language wins over requirements language, which wins
// over generic interest language. The stage is recomputed from scratch
// every turn, so it can regress; callers must not assume monotonic
// progression.
func ClassifyStage(content string) model.Stage {
	text := strings.ToLower(content)

	switch {
	case containsAny(text, "proposal", "price", "cost"):
		return model.StageProposal
	case containsAny(text, "requirements", "need", "looking for"):
		return model.StageRequirements
	case containsAny(text, "yes", "proceed", "interested"):
		return model.StageClosing
	default:
		return model.StageInitial
	}
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
