package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquasales/crm-platform/internal/model"
	"github.com/aquasales/crm-platform/internal/store"
	"github.com/aquasales/crm-platform/pkg/logger"
)

func newLeadRouter(t *testing.T) (*chi.Mux, *store.RedisStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	st := store.NewRedisStore(rdb)
	h := NewLeadHandler(st, logger.NewNop())

	r := chi.NewRouter()
	r.Get("/leads", h.List)
	r.Post("/leads", h.Create)
	r.Get("/leads/{id}", h.Get)
	r.Put("/leads/{id}", h.Update)
	return r, st
}

func TestLeadCreateDefaults(t *testing.T) {
	r, _ := newLeadRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leads",
		strings.NewReader(`{"name": "Thika Textiles", "contact": "+254 744 444444", "region": "Central"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var lead model.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, model.StatusNewLead, lead.Status)
	assert.Equal(t, model.ContextCommercial, lead.Context)
	assert.Equal(t, 0, lead.Score)
	assert.NotEmpty(t, lead.LastContact)
}

func TestLeadCreateRejectsBadInput(t *testing.T) {
	r, _ := newLeadRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"contact": "+254 700"}`},
		{"unknown status", `{"name": "X Ltd", "status": "Sizzling"}`},
		{"score out of range", `{"name": "X Ltd", "score": 150}`},
		{"malformed body", `{nope`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLeadGetAndList(t *testing.T) {
	r, st := newLeadRouter(t)
	require.NoError(t, st.PutLead(context.Background(), &model.Lead{
		ID: "lead-1", Name: "Nakuru Flowers", Status: model.StatusQualified, Score: 70,
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads/lead-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var lead model.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.Equal(t, "Nakuru Flowers", lead.Name)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var list model.ListLeadsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
}

func TestLeadUpdate(t *testing.T) {
	r, st := newLeadRouter(t)
	require.NoError(t, st.PutLead(context.Background(), &model.Lead{
		ID: "lead-1", Name: "Nakuru Flowers", Status: model.StatusNewLead, Score: 10,
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/leads/lead-1",
		strings.NewReader(`{"status": "Negotiation", "score": 85, "notes": "met at expo"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	var lead model.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.Equal(t, model.StatusNegotiation, lead.Status)
	assert.Equal(t, 85, lead.Score)
	assert.Equal(t, "met at expo", lead.Notes)
	assert.Equal(t, "Nakuru Flowers", lead.Name)

	got, err := st.GetLead(context.Background(), "lead-1")
	require.NoError(t, err)
	assert.Equal(t, 85, got.Score)
}

func TestLeadUpdateRejectsBadScore(t *testing.T) {
	r, st := newLeadRouter(t)
	require.NoError(t, st.PutLead(context.Background(), &model.Lead{ID: "lead-1", Name: "X Ltd"}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/leads/lead-1",
		strings.NewReader(`{"score": -3}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
