package linkupapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func staticToken(token string) TokenProvider {
	return TokenProviderFunc(func(ctx context.Context) (string, bool) {
		return token, token != ""
	})
}

func newTestClient(baseURL string, tokens TokenProvider) *Client {
	return NewClient(baseURL, 0, tokens, nil, nopLogger{})
}

func TestClient_InjectsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, staticToken("abc"))
	err := c.Get(context.Background(), "/bookings/me", nil)

	assert.NoError(t, err)
	assert.Equal(t, "Bearer abc", gotAuth)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, staticToken(""))
	err := c.Get(context.Background(), "/mentors", nil)

	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_SkipAuth(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, staticToken("abc"))
	err := c.Post(context.Background(), "/auth/login", map[string]string{"login": "mina"}, nil, SkipAuth())

	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_TimeoutIsIsolated(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := newTestClient(srv.URL, staticToken("abc"))

	start := time.Now()
	err := c.Get(context.Background(), "/bookings/me", nil, WithTimeout(50*time.Millisecond))
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, elapsed, time.Second, "timeout must fire without waiting for the server")
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := newTestClient(srv.URL, staticToken("abc"))
	err := c.Get(context.Background(), "/bookings/me", nil)

	assert.ErrorIs(t, err, ErrNetwork)
}

func TestClient_ErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "json message field",
			status:     http.StatusBadRequest,
			body:       `{"message":"booking already decided"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "booking already decided",
		},
		{
			name:       "plain text body",
			status:     http.StatusInternalServerError,
			body:       "oops",
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "oops",
		},
		{
			name:       "json without message field",
			status:     http.StatusUnprocessableEntity,
			body:       `{"error":"bad time"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    `{"error":"bad time"}`,
		},
		{
			name:       "empty body falls back to status text",
			status:     http.StatusNotFound,
			body:       "",
			wantStatus: http.StatusNotFound,
			wantMsg:    "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			c := newTestClient(srv.URL, staticToken("abc"))
			err := c.Get(context.Background(), "/bookings/me", nil)

			var httpErr *HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, tt.wantStatus, httpErr.Status)
			assert.Equal(t, tt.wantMsg, httpErr.Message)
			assert.Equal(t, tt.wantMsg, err.Error(), "the message must surface verbatim")
		})
	}
}

func TestClient_DecodesSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":5,"status":"PENDING"}`)
	}))
	defer srv.Close()

	var out struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}

	c := newTestClient(srv.URL, staticToken("abc"))
	err := c.Get(context.Background(), "/bookings/5", &out)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), out.ID)
	assert.Equal(t, "PENDING", out.Status)
}

func TestClient_EmptySuccessBodyTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var out struct {
		ID int64 `json:"id"`
	}

	c := newTestClient(srv.URL, staticToken("abc"))
	err := c.Get(context.Background(), "/bookings/5", &out)

	assert.NoError(t, err)
	assert.Zero(t, out.ID)
}

func TestClient_MalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "not-json{")
	}))
	defer srv.Close()

	var out map[string]any

	c := newTestClient(srv.URL, staticToken("abc"))
	err := c.Get(context.Background(), "/bookings/me", &out)

	assert.ErrorIs(t, err, ErrParse)
}

func TestClient_PostSendsJSONBody(t *testing.T) {
	var (
		gotContentType string
		gotBody        map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, staticToken("abc"))
	err := c.Post(context.Background(), "/bookings/propose", map[string]any{"note": "hi"}, nil)

	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "hi", gotBody["note"])
}
