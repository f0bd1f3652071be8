package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	switch v := body.(type) {
	case nil:
	case string:
		buf.WriteString(v)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(v))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestParseID(t *testing.T) {
	testCases := []struct {
		raw  string
		id   int64
		fail bool
	}{
		{"12", 12, false},
		{"abc", 0, true},
		{"0", 0, true},
		{"-3", 0, true},
		{"", 0, true},
	}

	for _, tc := range testCases {
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", tc.raw)
		id, err := parseID(req)
		if tc.fail {
			require.Error(t, err, tc.raw)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tc.id, id)
	}
}
