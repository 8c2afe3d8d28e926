package engine

import (
	"fmt"
	"strings"

	"github.com/aquasales/crm-platform/internal/llm"
	"github.com/aquasales/crm-platform/internal/model"
)

// chatRole maps an engagement role onto the completion wire role. Sales
// turns speak as the user; customer turns as the assistant. Every call
// site goes through this one mapping so the three completion calls cannot
// drift apart.
func chatRole(role model.MessageRole) string {
	if role == model.RoleSales {
		return llm.RoleUser
	}
	return llm.RoleAssistant
}

// chatHistory converts a message log into completion turns.
func chatHistory(messages []model.Message) []llm.ChatMessage {
	turns := make([]llm.ChatMessage, len(messages))
	for i, msg := range messages {
		turns[i] = llm.ChatMessage{
			Role:    chatRole(msg.Role),
			Content: msg.Content,
		}
	}
	return turns
}

// transcriptLines renders the log as role-prefixed lines for embedding in
// an instruction prompt, chronological order.
func transcriptLines(messages []model.Message) string {
	var b strings.Builder
	for _, msg := range messages {
		fmt.Fprintf(&b, "%s: %s\n", msg.Role, msg.Content)
	}
	return b.String()
}
