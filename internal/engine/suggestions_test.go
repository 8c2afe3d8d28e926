package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aquasales/crm-platform/internal/model"
)

func TestParseSuggestions(t *testing.T) {
	want := []string{
		"What capacity do you need?",
		"When do you plan to install?",
	}

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "wrapped object",
			raw:  `{"suggestions": ["What capacity do you need?", "When do you plan to install?"]}`,
			want: want,
		},
		{
			name: "bare array",
			raw:  `["What capacity do you need?", "When do you plan to install?"]`,
			want: want,
		},
		{
			name: "object without suggestions key",
			raw:  `{"q1": "What capacity do you need?", "q2": "When do you plan to install?"}`,
			want: want,
		},
		{
			name: "object with nested array value",
			raw:  `{"questions": ["What capacity do you need?", "When do you plan to install?"]}`,
			want: want,
		},
		{
			name: "malformed JSON",
			raw:  `here are some questions: 1) capacity?`,
			want: []string{},
		},
		{
			name: "empty string",
			raw:  ``,
			want: []string{},
		},
		{
			name: "empty wrapped list",
			raw:  `{"suggestions": []}`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSuggestions(tt.raw))
		})
	}
}

func TestSuggestionPromptEmbedsTranscript(t *testing.T) {
	messages := []model.Message{
		{Role: model.RoleSales, Content: "Hello, do you still need a pump?", Timestamp: time.Now()},
		{Role: model.RoleCustomer, Content: "Yes, for our borehole.", Timestamp: time.Now()},
	}

	prompt := suggestionPrompt(messages)

	assert.Contains(t, prompt, "sales: Hello, do you still need a pump?")
	assert.Contains(t, prompt, "customer: Yes, for our borehole.")
	assert.Contains(t, prompt, "4 relevant follow-up questions")
}
