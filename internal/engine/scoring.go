package engine

import (
	"encoding/json"
	"fmt"

	"github.com/aquasales/crm-platform/internal/model"
)

const scoringSystemPrompt = `Analyze this sales conversation and provide:
1. A suggested lead score (0-100) based on:
   - Level of engagement
   - Specificity of requirements
   - Interest in solutions
   - Progress in sales cycle
2. A suggested next status from: New Lead, Contacted, Qualified, Proposal Sent, Negotiation, Won, Lost, Nurturing, Follow-up, Hot Lead

Format your response as JSON:
{
  "score": number,
  "status": "suggested status"
}`

// leadAnalysis is the scoring analyzer's structured verdict.
type leadAnalysis struct {
	Score  int              `json:"score"`
	Status model.LeadStatus `json:"status"`
}

// parseAnalysis decodes the scoring payload. Unlike suggestion parsing
// there is no tolerant fallback shape; a payload that does not carry a
// usable score and status fails the scoring step.
func parseAnalysis(raw string) (*leadAnalysis, error) {
	var analysis leadAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("engine: malformed scoring payload: %w", err)
	}
	if !analysis.Status.Valid() {
		return nil, fmt.Errorf("engine: scoring returned unknown status %q", analysis.Status)
	}
	if analysis.Score < 0 {
		analysis.Score = 0
	}
	if analysis.Score > 100 {
		analysis.Score = 100
	}
	return &analysis, nil
}
