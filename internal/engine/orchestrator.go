package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/aquasales/crm-platform/internal/llm"
	"github.com/aquasales/crm-platform/internal/model"
	"github.com/aquasales/crm-platform/internal/store"
	"github.com/aquasales/crm-platform/pkg/logger"
	"github.com/aquasales/crm-platform/pkg/metrics"
)

// EventSink receives turn by-products for downstream consumers. A nil
// sink disables publishing; publish errors never fail a turn.
type EventSink interface {
	PublishMessage(ctx context.Context, leadID string, msg model.Message) error
	PublishEvent(ctx context.Context, event *model.EngagementEvent) error
}

// Config tunes the completion calls issued by the orchestrator.
type Config struct {
	Model       string
	Temperature float64
	MaxTokens   int
	CallTimeout time.Duration
}

// DefaultConfig returns the completion defaults.
func DefaultConfig() Config {
	return Config{
		Temperature: 0.7,
		MaxTokens:   1024,
		CallTimeout: 30 * time.Second,
	}
}

// Orchestrator runs the engagement pipeline for one sales-rep message at
// a time. Turns for the same lead are serialized in-process; the store's
// last-write-wins semantics still apply across processes.
type Orchestrator struct {
	store  store.Store
	llm    llm.Client
	sink   EventSink
	logger *logger.Logger
	cfg    Config
	tracer trace.Tracer

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewOrchestrator creates the engagement orchestrator.
func NewOrchestrator(st store.Store, client llm.Client, sink EventSink, log *logger.Logger, cfg Config) *Orchestrator {
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = DefaultConfig().CallTimeout
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultConfig().Temperature
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}
	return &Orchestrator{
		store:  st,
		llm:    client,
		sink:   sink,
		logger: log,
		cfg:    cfg,
		tracer: otel.Tracer("crm.engine"),
		locks:  make(map[string]*sync.Mutex),
	}
}

// Turn processes one inbound sales message end to end and returns the
// updated engagement, a lead summary, and the spawned proposal if any.
func (o *Orchestrator) Turn(ctx context.Context, req *model.TurnRequest) (*model.TurnResponse, error) {
	ctx, span := o.tracer.Start(ctx, "engine.turn")
	defer span.End()
	start := time.Now()

	if req == nil || req.LeadID == "" {
		return nil, validationErr("lead ID is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, validationErr("message is required")
	}

	unlock := o.lockLead(req.LeadID)
	defer unlock()

	lead, err := o.store.GetLead(ctx, req.LeadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.TurnsTotal.WithLabelValues("not_found").Inc()
		}
		return nil, err
	}

	eng, err := o.store.GetEngagement(ctx, req.LeadID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		eng = model.NewEngagement(req.LeadID)
	}

	eng.Append(model.RoleSales, req.Message, time.Now())

	// The customer reply is mandatory; any completion failure here aborts
	// the turn before anything is persisted.
	reply, err := o.customerReply(ctx, lead, eng, req.Message)
	if err != nil {
		o.publishError(ctx, req.LeadID, err)
		metrics.TurnsTotal.WithLabelValues("completion_failure").Inc()
		return nil, err
	}

	eng.Append(model.RoleCustomer, reply, time.Now())

	stage := ClassifyStage(eng.LastMessage().Content)

	// Suggestions and scoring both need the transcript including the new
	// customer reply but have no dependency on each other.
	var (
		wg          sync.WaitGroup
		suggestions []string
		analysis    *leadAnalysis
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		suggestions = o.generateSuggestions(ctx, eng.Messages)
	}()
	go func() {
		defer wg.Done()
		analysis = o.analyzeLead(ctx, eng.Messages)
	}()
	wg.Wait()

	eng.CurrentStage = stage
	eng.Suggestions = append(eng.Suggestions, model.SuggestionBatch{
		Stage:       stage,
		Suggestions: suggestions,
	})

	// Persist the lead only when scoring actually moved it, so that
	// lastContact keeps meaning "something changed".
	leadChanged := false
	if analysis != nil && (analysis.Score != lead.Score || analysis.Status != lead.Status) {
		lead.Score = analysis.Score
		lead.Status = analysis.Status
		lead.LastContact = time.Now().UTC().Format(time.RFC3339)
		lead.UpdatedAt = time.Now()
		leadChanged = true
	}

	if err := o.store.PutEngagement(ctx, eng); err != nil {
		metrics.TurnsTotal.WithLabelValues("persistence_failure").Inc()
		return nil, fmt.Errorf("failed to persist engagement: %w", err)
	}
	if leadChanged {
		if err := o.store.PutLead(ctx, lead); err != nil {
			metrics.TurnsTotal.WithLabelValues("persistence_failure").Inc()
			return nil, fmt.Errorf("failed to persist lead: %w", err)
		}
		metrics.LeadScoreUpdates.Inc()
	}

	var analysisStatus model.LeadStatus
	if analysis != nil {
		analysisStatus = analysis.Status
	}
	proposal, err := o.spawnProposal(ctx, lead, analysisStatus, eng.LastMessage().Content)
	if err != nil {
		metrics.TurnsTotal.WithLabelValues("persistence_failure").Inc()
		return nil, err
	}

	o.publishTurn(ctx, eng, proposal)

	metrics.TurnsTotal.WithLabelValues("success").Inc()
	metrics.TurnDuration.Observe(time.Since(start).Seconds())

	return &model.TurnResponse{
		Engagement: eng,
		Lead: model.LeadSummary{
			Score:       lead.Score,
			Status:      lead.Status,
			LastContact: lead.LastContact,
		},
		Proposal: proposal,
	}, nil
}

// Suggestions recomputes follow-up questions for the current transcript
// without mutating any stored state.
func (o *Orchestrator) Suggestions(ctx context.Context, leadID string) ([]string, error) {
	if leadID == "" {
		return nil, validationErr("lead ID is required")
	}

	lead, err := o.store.GetLead(ctx, leadID)
	if err != nil {
		return nil, err
	}

	eng, err := o.store.GetEngagement(ctx, leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	if len(eng.Messages) == 0 {
		return []string{}, nil
	}

	turns := make([]llm.ChatMessage, 0, len(eng.Messages)+2)
	turns = append(turns, llm.ChatMessage{Role: llm.RoleSystem, Content: BuildPersonaPrompt(lead)})
	turns = append(turns, chatHistory(eng.Messages)...)
	turns = append(turns, llm.ChatMessage{Role: llm.RoleUser, Content: suggestionPrompt(eng.Messages)})

	resp, err := o.complete(ctx, "suggestions", &llm.CompletionRequest{
		Model:       o.cfg.Model,
		Messages:    turns,
		MaxTokens:   o.cfg.MaxTokens,
		Temperature: o.cfg.Temperature,
		JSONMode:    true,
	})
	if err != nil {
		return nil, completionErr("suggestions", err)
	}

	return parseSuggestions(resp.Content), nil
}

// customerReply drives the simulated customer through the LLM: persona
// system turn, full mapped transcript, and the new sales message as the
// final user turn.
func (o *Orchestrator) customerReply(ctx context.Context, lead *model.Lead, eng *model.Engagement, message string) (string, error) {
	turns := make([]llm.ChatMessage, 0, len(eng.Messages)+2)
	turns = append(turns, llm.ChatMessage{Role: llm.RoleSystem, Content: BuildPersonaPrompt(lead)})
	turns = append(turns, chatHistory(eng.Messages)...)
	turns = append(turns, llm.ChatMessage{Role: llm.RoleUser, Content: message})

	resp, err := o.complete(ctx, "customer_reply", &llm.CompletionRequest{
		Model:       o.cfg.Model,
		Messages:    turns,
		MaxTokens:   o.cfg.MaxTokens,
		Temperature: o.cfg.Temperature,
	})
	if err != nil {
		return "", completionErr("customer reply", err)
	}
	return resp.Content, nil
}

// generateSuggestions asks for follow-up questions and degrades to an
// empty list on any failure; a flaky sub-call must not block delivery.
func (o *Orchestrator) generateSuggestions(ctx context.Context, messages []model.Message) []string {
	resp, err := o.complete(ctx, "suggestions", &llm.CompletionRequest{
		Model: o.cfg.Model,
		Messages: []llm.ChatMessage{
			{Role: llm.RoleUser, Content: suggestionPrompt(messages)},
		},
		MaxTokens:   o.cfg.MaxTokens,
		Temperature: o.cfg.Temperature,
		JSONMode:    true,
	})
	if err != nil {
		o.logger.Warn("suggestion generation failed, continuing without", zap.Error(err))
		metrics.ParseFailuresTotal.WithLabelValues("suggestions").Inc()
		return []string{}
	}
	return parseSuggestions(resp.Content)
}

// analyzeLead asks for a score/status verdict over the mapped transcript
// (no persona turn). Returns nil when the step degrades; the lead is then
// left untouched.
func (o *Orchestrator) analyzeLead(ctx context.Context, messages []model.Message) *leadAnalysis {
	turns := make([]llm.ChatMessage, 0, len(messages)+1)
	turns = append(turns, llm.ChatMessage{Role: llm.RoleSystem, Content: scoringSystemPrompt})
	turns = append(turns, chatHistory(messages)...)

	resp, err := o.complete(ctx, "scoring", &llm.CompletionRequest{
		Model:       o.cfg.Model,
		Messages:    turns,
		MaxTokens:   o.cfg.MaxTokens,
		Temperature: o.cfg.Temperature,
		JSONMode:    true,
	})
	if err != nil {
		o.logger.Warn("lead scoring failed, leaving lead unchanged", zap.Error(err))
		return nil
	}

	analysis, err := parseAnalysis(resp.Content)
	if err != nil {
		o.logger.Warn("lead scoring payload rejected, leaving lead unchanged", zap.Error(err))
		metrics.ParseFailuresTotal.WithLabelValues("scoring").Inc()
		return nil
	}
	return analysis
}

// spawnProposal appends a draft proposal when the post-turn state calls
// for one. The collection-wide ID sequence is read-modify-written; a
// concurrent spawn can race it (known gap, not masked here).
func (o *Orchestrator) spawnProposal(ctx context.Context, lead *model.Lead, analysisStatus model.LeadStatus, lastMessage string) (*model.Proposal, error) {
	if !shouldSpawnProposal(analysisStatus, lastMessage) {
		return nil, nil
	}

	proposals, err := o.store.ListProposals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load proposals: %w", err)
	}

	proposal := buildProposal(nextProposalID(proposals), lead, time.Now())
	if err := o.store.AppendProposal(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to append proposal: %w", err)
	}

	metrics.ProposalsSpawned.Inc()
	o.logger.Info("draft proposal spawned",
		zap.String("lead_id", lead.ID),
		zap.Int("proposal_id", proposal.ID),
	)
	return proposal, nil
}

// complete issues one bounded completion call and records its metrics.
func (o *Orchestrator) complete(ctx context.Context, purpose string, req *llm.CompletionRequest) (*llm.CompletionResponse, error) {
	ctx, span := o.tracer.Start(ctx, "engine.complete."+purpose)
	defer span.End()

	callCtx, cancel := context.WithTimeout(ctx, o.cfg.CallTimeout)
	defer cancel()

	start := time.Now()
	resp, err := o.llm.Complete(callCtx, req)
	if err != nil {
		span.RecordError(err)
		metrics.RecordLLMCall(purpose, "error", time.Since(start).Seconds(), 0, 0)
		return nil, err
	}

	metrics.RecordLLMCall(purpose, "success", time.Since(start).Seconds(), resp.TokensIn, resp.TokensOut)
	return resp, nil
}

func (o *Orchestrator) publishTurn(ctx context.Context, eng *model.Engagement, proposal *model.Proposal) {
	if o.sink == nil {
		return
	}

	for _, msg := range eng.Messages[len(eng.Messages)-2:] {
		if err := o.sink.PublishMessage(ctx, eng.LeadID, msg); err != nil {
			o.logger.Warn("failed to publish message event", zap.Error(err))
		}
	}

	event := &model.EngagementEvent{
		ID:        uuid.Must(uuid.NewV7()).String(),
		LeadID:    eng.LeadID,
		Type:      model.EventTypeTurnCompleted,
		Stage:     eng.CurrentStage,
		CreatedAt: time.Now(),
	}
	if err := o.sink.PublishEvent(ctx, event); err != nil {
		o.logger.Warn("failed to publish turn event", zap.Error(err))
	}

	if proposal != nil {
		spawned := &model.EngagementEvent{
			ID:        uuid.Must(uuid.NewV7()).String(),
			LeadID:    eng.LeadID,
			Type:      model.EventTypeProposalSpawned,
			Metadata:  map[string]any{"proposal_id": proposal.ID},
			CreatedAt: time.Now(),
		}
		if err := o.sink.PublishEvent(ctx, spawned); err != nil {
			o.logger.Warn("failed to publish proposal event", zap.Error(err))
		}
	}
}

func (o *Orchestrator) publishError(ctx context.Context, leadID string, cause error) {
	if o.sink == nil {
		return
	}
	event := &model.EngagementEvent{
		ID:        uuid.Must(uuid.NewV7()).String(),
		LeadID:    leadID,
		Type:      model.EventTypeError,
		Reason:    cause.Error(),
		CreatedAt: time.Now(),
	}
	if err := o.sink.PublishEvent(ctx, event); err != nil {
		o.logger.Warn("failed to publish error event", zap.Error(err))
	}
}

// lockLead serializes turns for one lead within this process.
func (o *Orchestrator) lockLead(id string) func() {
	o.mu.Lock()
	m, ok := o.locks[id]
	if !ok {
		m = &sync.Mutex{}
		o.locks[id] = m
	}
	o.mu.Unlock()

	m.Lock()
	return m.Unlock
}
