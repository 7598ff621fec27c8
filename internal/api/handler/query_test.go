package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

type stubAnswerer struct {
	response domain.QueryResponse
	err      error
	asked    string
}

func (s *stubAnswerer) Answer(question string) (domain.QueryResponse, error) {
	s.asked = question
	return s.response, s.err
}

func TestAskQuestion(t *testing.T) {
	answerer := &stubAnswerer{
		response: domain.QueryResponse{
			ID:       "resp-1",
			Question: "Which category has the highest revenue?",
			Intent:   domain.IntentRevenueByCategory,
			Category: "Electronics",
			Value:    5000,
			Answer:   "The Electronics category generates the highest revenue of 5000.00.",
		},
	}

	body := strings.NewReader(`{"question": "Which category has the highest revenue?"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/query", body)
	rec := httptest.NewRecorder()

	AskQuestion(answerer).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Which category has the highest revenue?", answerer.asked)

	var resp domain.QueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Electronics", resp.Category)
	assert.Equal(t, domain.IntentRevenueByCategory, resp.Intent)
}

func TestAskQuestion_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: `{"question":`},
		{name: "missing question", body: `{}`},
		{name: "empty question", body: `{"question": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/query", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			AskQuestion(&stubAnswerer{}).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
