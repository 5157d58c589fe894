package domain

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   OutcomeKind
	}{
		{name: "ok", status: http.StatusOK, want: OutcomeSuccess},
		{name: "no content", status: http.StatusNoContent, want: OutcomeSuccess},
		{name: "redirect", status: http.StatusFound, want: OutcomeSuccess},
		{name: "last 3xx", status: 399, want: OutcomeSuccess},
		{name: "bad request", status: http.StatusBadRequest, want: OutcomeClientError},
		{name: "not found", status: http.StatusNotFound, want: OutcomeClientError},
		{name: "last 4xx", status: 499, want: OutcomeClientError},
		{name: "internal", status: http.StatusInternalServerError, want: OutcomeServerError},
		{name: "unavailable", status: http.StatusServiceUnavailable, want: OutcomeServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatus(tt.status))
		})
	}
}

func TestOutcomeMessage(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    string
	}{
		{
			name:    "detail string",
			outcome: Outcome{Kind: OutcomeClientError, Status: 401, Body: []byte(`{"detail":"bad credentials"}`)},
			want:    "bad credentials",
		},
		{
			name:    "message string",
			outcome: Outcome{Kind: OutcomeClientError, Status: 422, Body: []byte(`{"message":"title is required"}`)},
			want:    "title is required",
		},
		{
			name:    "detail wins over message",
			outcome: Outcome{Kind: OutcomeClientError, Status: 400, Body: []byte(`{"message":"second","detail":"first"}`)},
			want:    "first",
		},
		{
			name:    "structured detail is compacted",
			outcome: Outcome{Kind: OutcomeClientError, Status: 422, Body: []byte(`{"detail": [ {"loc": ["body","email"], "msg": "field required"} ]}`)},
			want:    `[{"loc":["body","email"],"msg":"field required"}]`,
		},
		{
			name:    "empty detail falls through to message",
			outcome: Outcome{Kind: OutcomeClientError, Status: 400, Body: []byte(`{"detail":"","message":"fallback"}`)},
			want:    "fallback",
		},
		{
			name:    "non json body",
			outcome: Outcome{Kind: OutcomeServerError, Status: 502, StatusText: "Bad Gateway", Body: []byte("<html>nginx</html>")},
			want:    "HTTP 502: Bad Gateway",
		},
		{
			name:    "status text derived when missing",
			outcome: Outcome{Kind: OutcomeClientError, Status: 403},
			want:    "HTTP 403: Forbidden",
		},
		{
			name:    "success has no message",
			outcome: Outcome{Kind: OutcomeSuccess, Status: 200, Body: []byte(`{"detail":"ignored"}`)},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.outcome.Message())
		})
	}
}

func TestOutcomeErrReturnsHTTPError(t *testing.T) {
	outcome := Outcome{Kind: OutcomeClientError, Status: 401, StatusText: "Unauthorized", Body: []byte(`{"detail":"bad credentials"}`)}

	err := outcome.Err()
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 401, httpErr.Status)
	assert.Equal(t, OutcomeClientError, httpErr.Kind)
	assert.EqualError(t, err, "bad credentials")

	assert.NoError(t, Outcome{Kind: OutcomeSuccess, Status: 200}.Err())
}

func TestOutcomeDecodeJSON(t *testing.T) {
	outcome := Outcome{Kind: OutcomeSuccess, Status: 200, Path: "/courses", Body: []byte(`[{"id":1,"title":"Go"}]`)}

	var courses []struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, outcome.DecodeJSON(&courses))
	require.Len(t, courses, 1)
	assert.Equal(t, "Go", courses[0].Title)

	err := Outcome{Kind: OutcomeSuccess, Status: 204, Path: "/courses/1"}.DecodeJSON(&courses)
	assert.ErrorContains(t, err, "empty body")
}

func TestRequestHelpersDoNotMutateReceiver(t *testing.T) {
	base := NewRequest("get", " /courses ")
	withHeader := base.WithHeader("X-Tenant", "north")
	withBody := withHeader.WithBody([]byte(`{}`))

	assert.Equal(t, "GET", base.Method)
	assert.Equal(t, "/courses", base.Path)
	assert.Empty(t, base.Header.Get("X-Tenant"))
	assert.Nil(t, base.Body)
	assert.Equal(t, "north", withHeader.Header.Get("X-Tenant"))
	assert.Nil(t, withHeader.Body)
	assert.Equal(t, []byte(`{}`), withBody.Body)
	assert.Equal(t, "GET /courses", base.String())
}

func TestRequestWithJSONBody(t *testing.T) {
	req, err := NewRequest("POST", "/login").WithJSONBody(map[string]string{"email": "a@x.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@x.com"}`, string(req.Body))
}

func TestTokenClaimsIdentityPrefersEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", TokenClaims{Email: "a@x.com", Subject: "42"}.Identity())
	assert.Equal(t, "42", TokenClaims{Subject: " 42 "}.Identity())
	assert.Empty(t, TokenClaims{}.Identity())
}

func TestTokenClaimsExpired(t *testing.T) {
	now := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)

	assert.False(t, TokenClaims{}.Expired(now))
	assert.True(t, TokenClaims{ExpiresAt: now}.Expired(now))
	assert.False(t, TokenClaims{ExpiresAt: now.Add(time.Minute)}.Expired(now))
}

func TestNetworkErrorNamesBaseURL(t *testing.T) {
	err := &NetworkError{BaseURL: "http://localhost:8000", Attempts: 3, Err: assert.AnError}

	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "http://localhost:8000")
	assert.Contains(t, err.Error(), "3 attempt(s)")
}

func TestNoEndpointErrorListsTriedPaths(t *testing.T) {
	err := &NoEndpointError{Tried: []string{"DELETE /a", "DELETE /b"}}

	assert.ErrorIs(t, err, ErrNoEndpoint)
	assert.EqualError(t, err, "no candidate endpoint exists (tried: DELETE /a, DELETE /b)")
}
