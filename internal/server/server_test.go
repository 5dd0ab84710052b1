package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1cbyc/mt5-risk-calculator/internal/config"
	"github.com/1cbyc/mt5-risk-calculator/internal/simulation"
)

func testServer() *Server {
	return New(config.Default(), zerolog.Nop())
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestSimulateEndpoint_Success(t *testing.T) {
	s := testServer()
	rec := doRequest(t, s, http.MethodPost, "/api/simulate",
		`{"current_balance": 200, "target_balance": 2000, "risk_per_trade_percent": 2, "risk_reward_ratio": 3}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result simulation.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 40, result.Summary.TotalTrades)
	assert.Equal(t, 1, result.Trades[0].Number)
	assert.InDelta(t, 4.0, result.Trades[0].RiskAmount, 1e-9)
	assert.InDelta(t, 12.0, result.Trades[0].ProfitAmount, 1e-9)
	assert.GreaterOrEqual(t, result.Summary.FinalBalance, 2000.0)
}

func TestSimulateEndpoint_DefaultsApply(t *testing.T) {
	s := testServer()
	rec := doRequest(t, s, http.MethodPost, "/api/simulate", `{}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var result simulation.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	// Empty body falls back to the configured defaults (200 -> 2000 at 2%/1:3)
	assert.Equal(t, 200.0, result.Summary.StartingBalance)
	assert.Equal(t, 2000.0, result.Summary.TargetBalance)
	assert.Equal(t, 40, result.Summary.TotalTrades)
}

func TestSimulateEndpoint_ValidationFailure(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		detail string
	}{
		{
			name:   "negative balance",
			body:   `{"current_balance": -100}`,
			detail: "starting balance must be positive",
		},
		{
			name:   "target below balance",
			body:   `{"current_balance": 2000, "target_balance": 1000}`,
			detail: "target must exceed starting balance",
		},
		{
			name:   "risk out of range",
			body:   `{"risk_per_trade_percent": 150}`,
			detail: "risk percent out of range",
		},
		{
			name:   "zero reward ratio",
			body:   `{"risk_reward_ratio": 0}`,
			detail: "reward ratio must be positive",
		},
	}

	s := testServer()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodPost, "/api/simulate", tc.body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var errResp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, tc.detail, errResp.Detail)
		})
	}
}

func TestSimulateEndpoint_MalformedBody(t *testing.T) {
	s := testServer()
	rec := doRequest(t, s, http.MethodPost, "/api/simulate", `{"current_balance": "abc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/api/simulate", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimulateEndpoint_MethodNotAllowed(t *testing.T) {
	s := testServer()
	rec := doRequest(t, s, http.MethodGet, "/api/simulate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSimulateEndpoint_CORSPreflight(t *testing.T) {
	s := testServer()
	rec := doRequest(t, s, http.MethodOptions, "/api/simulate", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer()
	rec := doRequest(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestIndexPage(t *testing.T) {
	s := testServer()
	rec := doRequest(t, s, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "The Recovery Roadmap")
	assert.Contains(t, rec.Body.String(), "/api/simulate")
}

func TestIndexPage_UnknownPathIs404(t *testing.T) {
	s := testServer()
	rec := doRequest(t, s, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
