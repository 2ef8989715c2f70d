package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verityai/capital-recommender/internal/catalog"
	"github.com/verityai/capital-recommender/internal/engine"
	"github.com/verityai/capital-recommender/internal/market"
	"github.com/verityai/capital-recommender/internal/matcher"
)

func newTestEnv(t *testing.T) *env {
	t.Helper()
	cat := catalog.NewStore(catalog.BuiltIn())
	mkt := market.NewStore()
	eng, err := engine.New(cat, mkt, matcher.DefaultConfig())
	require.NoError(t, err)
	return &env{Catalog: cat, Market: mkt, Engine: eng}
}

func TestServeHealth(t *testing.T) {
	router := newRouter(newTestEnv(t), 100)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServeCatalog(t *testing.T) {
	router := newRouter(newTestEnv(t), 100)

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var snap catalog.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, 1, snap.Version)
	assert.Len(t, snap.Sources, 9)
}

func TestServeRecommend(t *testing.T) {
	router := newRouter(newTestEnv(t), 100)

	body := `{
		"company_name": "TechFlow Solutions",
		"sector": "technology",
		"annual_revenue": 450000,
		"employees": 12,
		"location": "london",
		"business_age": 3,
		"funding_amount": 250000
	}`
	req := httptest.NewRequest(http.MethodPost, "/recommend", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp engine.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Recommendations)
}

func TestServeRecommendInvalidBody(t *testing.T) {
	router := newRouter(newTestEnv(t), 100)

	req := httptest.NewRequest(http.MethodPost, "/recommend", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeRecommendMissingFields(t *testing.T) {
	router := newRouter(newTestEnv(t), 100)

	req := httptest.NewRequest(http.MethodPost, "/recommend", bytes.NewBufferString(`{"company_name":"Nameless"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp engine.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Errors)
}

func TestServeMarketRefresh(t *testing.T) {
	e := newTestEnv(t)
	router := newRouter(e, 100)

	req := httptest.NewRequest(http.MethodPost, "/market/refresh", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, e.Catalog.Snapshot().Version)
}

func TestServeRateLimit(t *testing.T) {
	router := newRouter(newTestEnv(t), 1)

	limited := false
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	assert.True(t, limited, "expected the global rate limit to trip")
}
