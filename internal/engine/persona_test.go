package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aquasales/crm-platform/internal/model"
)

func TestBuildPersonaPrompt(t *testing.T) {
	lead := &model.Lead{
		ID:          "lead-1",
		Name:        "Mombasa Beverages Ltd",
		Contact:     "James Otieno",
		Region:      "Coast",
		Status:      model.StatusQualified,
		Score:       70,
		LastContact: "2026-08-12",
	}

	prompt := BuildPersonaPrompt(lead)

	assert.Contains(t, prompt, "You are the customer (Mombasa Beverages Ltd)")
	assert.Contains(t, prompt, "Do NOT act as the sales rep")
	assert.Contains(t, prompt, "James Otieno")
	assert.Contains(t, prompt, "region: Coast")
	assert.Contains(t, prompt, "status: Qualified")
	assert.Contains(t, prompt, "score: 70")
	assert.Contains(t, prompt, "last contact: 2026-08-12")

	// Deterministic for the same snapshot.
	assert.Equal(t, prompt, BuildPersonaPrompt(lead))
}
