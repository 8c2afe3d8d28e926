package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/aquasales/crm-platform/internal/model"
)

const (
	leadIndexKey = "leads"
	proposalsKey = "proposals"
)

func leadKey(id string) string {
	return fmt.Sprintf("lead:%s", id)
}

func engagementKey(leadID string) string {
	return fmt.Sprintf("engagement:%s", leadID)
}

// RedisStore persists all three collections as JSON documents in Redis.
// Leads and engagements are one document per record; the proposal
// collection is a single array under one key so that collection-wide
// integer IDs stay authoritative in one place.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store backed by the given Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Ping verifies connectivity to Redis.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// GetLead retrieves a lead by ID.
func (s *RedisStore) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	data, err := s.client.Get(ctx, leadKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: failed to load lead %s: %w", id, err)
	}

	var lead model.Lead
	if err := json.Unmarshal(data, &lead); err != nil {
		return nil, fmt.Errorf("store: failed to decode lead %s: %w", id, err)
	}
	return &lead, nil
}

// PutLead upserts a lead and registers it in the lead index.
func (s *RedisStore) PutLead(ctx context.Context, lead *model.Lead) error {
	data, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("store: failed to marshal lead: %w", err)
	}
	if err := s.client.Set(ctx, leadKey(lead.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("store: failed to persist lead %s: %w", lead.ID, err)
	}
	if err := s.client.SAdd(ctx, leadIndexKey, lead.ID).Err(); err != nil {
		return fmt.Errorf("store: failed to index lead %s: %w", lead.ID, err)
	}
	return nil
}

// ListLeads retrieves every lead in the index.
func (s *RedisStore) ListLeads(ctx context.Context) ([]model.Lead, error) {
	ids, err := s.client.SMembers(ctx, leadIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("store: failed to list lead index: %w", err)
	}

	leads := make([]model.Lead, 0, len(ids))
	for _, id := range ids {
		lead, err := s.GetLead(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, nil
}

// GetEngagement retrieves the engagement for a lead.
func (s *RedisStore) GetEngagement(ctx context.Context, leadID string) (*model.Engagement, error) {
	data, err := s.client.Get(ctx, engagementKey(leadID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: failed to load engagement for %s: %w", leadID, err)
	}

	var eng model.Engagement
	if err := json.Unmarshal(data, &eng); err != nil {
		return nil, fmt.Errorf("store: failed to decode engagement for %s: %w", leadID, err)
	}
	return &eng, nil
}

// PutEngagement upserts the engagement for a lead.
func (s *RedisStore) PutEngagement(ctx context.Context, eng *model.Engagement) error {
	data, err := json.Marshal(eng)
	if err != nil {
		return fmt.Errorf("store: failed to marshal engagement: %w", err)
	}
	if err := s.client.Set(ctx, engagementKey(eng.LeadID), data, 0).Err(); err != nil {
		return fmt.Errorf("store: failed to persist engagement for %s: %w", eng.LeadID, err)
	}
	return nil
}

// ListProposals retrieves the full proposal collection.
func (s *RedisStore) ListProposals(ctx context.Context) ([]model.Proposal, error) {
	data, err := s.client.Get(ctx, proposalsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []model.Proposal{}, nil
		}
		return nil, fmt.Errorf("store: failed to load proposals: %w", err)
	}

	var proposals []model.Proposal
	if err := json.Unmarshal(data, &proposals); err != nil {
		return nil, fmt.Errorf("store: failed to decode proposals: %w", err)
	}
	return proposals, nil
}

// AppendProposal appends one proposal to the collection. The read-modify-
// write is not atomic; concurrent spawns can race on the ID sequence.
func (s *RedisStore) AppendProposal(ctx context.Context, p *model.Proposal) error {
	proposals, err := s.ListProposals(ctx)
	if err != nil {
		return err
	}
	proposals = append(proposals, *p)

	data, err := json.Marshal(proposals)
	if err != nil {
		return fmt.Errorf("store: failed to marshal proposals: %w", err)
	}
	if err := s.client.Set(ctx, proposalsKey, data, 0).Err(); err != nil {
		return fmt.Errorf("store: failed to persist proposals: %w", err)
	}
	return nil
}
