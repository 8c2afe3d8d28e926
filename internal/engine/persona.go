package engine

import (
	"fmt"

	"github.com/aquasales/crm-platform/internal/model"
)

// BuildPersonaPrompt produces the system instruction that makes the model
// role-play the customer named on the lead. Deterministic for a given
// lead snapshot.
func BuildPersonaPrompt(lead *model.Lead) string {
	return fmt.Sprintf(
		"You are the customer (%s) in this conversation. Respond ONLY as the customer, "+
			"based on your real business context and needs. Do NOT act as the sales rep. "+
			"Your contact: %s, region: %s, status: %s, score: %d, last contact: %s. "+
			"Keep your response professional but natural, as if you're a real customer. "+
			"Ask relevant questions or provide information based on your needs and the sales rep's message.",
		lead.Name, lead.Contact, lead.Region, lead.Status, lead.Score, lead.LastContact,
	)
}
