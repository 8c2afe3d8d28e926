package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquasales/crm-platform/internal/model"
)

func TestParseAnalysis(t *testing.T) {
	analysis, err := parseAnalysis(`{"score": 85, "status": "Hot Lead"}`)
	require.NoError(t, err)
	assert.Equal(t, 85, analysis.Score)
	assert.Equal(t, model.StatusHotLead, analysis.Status)
}

func TestParseAnalysisClampsScore(t *testing.T) {
	analysis, err := parseAnalysis(`{"score": 140, "status": "Won"}`)
	require.NoError(t, err)
	assert.Equal(t, 100, analysis.Score)

	analysis, err = parseAnalysis(`{"score": -5, "status": "Lost"}`)
	require.NoError(t, err)
	assert.Equal(t, 0, analysis.Score)
}

func TestParseAnalysisRejectsUnknownStatus(t *testing.T) {
	_, err := parseAnalysis(`{"score": 50, "status": "Super Hot"}`)
	assert.Error(t, err)
}

func TestParseAnalysisRejectsMalformedPayload(t *testing.T) {
	_, err := parseAnalysis(`score is about 70`)
	assert.Error(t, err)

	_, err = parseAnalysis(`{}`)
	assert.Error(t, err) // empty status is not a valid enum value
}
