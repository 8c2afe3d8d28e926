package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquasales/crm-platform/internal/model"
)

func newTestStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client)
}

func TestLeadRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	lead := &model.Lead{
		ID:          "lead-1",
		Name:        "Kisumu Hotels",
		Contact:     "+254 722 222222",
		Email:       "gm@kisumuhotels.example",
		Region:      "Nyanza",
		Status:      model.StatusNewLead,
		Score:       10,
		LastContact: "2025-01-15T09:00:00Z",
		Context:     model.ContextCommercial,
	}
	require.NoError(t, st.PutLead(ctx, lead))

	got, err := st.GetLead(ctx, "lead-1")
	require.NoError(t, err)
	assert.Equal(t, lead, got)

	// Upsert overwrites in place.
	lead.Score = 55
	lead.Status = model.StatusQualified
	require.NoError(t, st.PutLead(ctx, lead))

	got, err = st.GetLead(ctx, "lead-1")
	require.NoError(t, err)
	assert.Equal(t, 55, got.Score)
	assert.Equal(t, model.StatusQualified, got.Status)
}

func TestGetLeadNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.GetLead(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListLeads(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	leads, err := st.ListLeads(ctx)
	require.NoError(t, err)
	assert.Empty(t, leads)

	require.NoError(t, st.PutLead(ctx, &model.Lead{ID: "a", Name: "Alpha"}))
	require.NoError(t, st.PutLead(ctx, &model.Lead{ID: "b", Name: "Beta"}))

	leads, err = st.ListLeads(ctx)
	require.NoError(t, err)
	assert.Len(t, leads, 2)

	names := map[string]string{}
	for _, l := range leads {
		names[l.ID] = l.Name
	}
	assert.Equal(t, map[string]string{"a": "Alpha", "b": "Beta"}, names)
}

func TestEngagementRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.GetEngagement(ctx, "lead-1")
	assert.ErrorIs(t, err, ErrNotFound)

	eng := model.NewEngagement("lead-1")
	eng.Append(model.RoleSales, "hello", time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	eng.Append(model.RoleCustomer, "hi there", time.Date(2025, 3, 1, 12, 0, 5, 0, time.UTC))
	require.NoError(t, st.PutEngagement(ctx, eng))

	got, err := st.GetEngagement(ctx, "lead-1")
	require.NoError(t, err)
	assert.Equal(t, "lead-1", got.LeadID)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "hello", got.Messages[0].Content)
	assert.Equal(t, model.RoleCustomer, got.Messages[1].Role)
	assert.Equal(t, model.DefaultRequirements, got.Requirements)
}

func TestProposalAppendAndList(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	proposals, err := st.ListProposals(ctx)
	require.NoError(t, err)
	assert.Empty(t, proposals)

	first := &model.Proposal{ID: 1, Name: "Alpha - Auto Proposal", LeadID: "a", Status: model.ProposalStatusDraft, Value: "KES 0.00"}
	second := &model.Proposal{ID: 2, Name: "Beta - Auto Proposal", LeadID: "b", Status: model.ProposalStatusDraft, Value: "KES 0.00"}
	require.NoError(t, st.AppendProposal(ctx, first))
	require.NoError(t, st.AppendProposal(ctx, second))

	proposals, err = st.ListProposals(ctx)
	require.NoError(t, err)
	require.Len(t, proposals, 2)
	assert.Equal(t, *first, proposals[0])
	assert.Equal(t, *second, proposals[1])
}
