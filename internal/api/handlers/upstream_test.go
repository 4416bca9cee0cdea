package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkup-team/linkup-gateway/internal/integrations/linkupapi"
)

func TestRespondUpstreamError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "backend error passes through verbatim",
			err:        &linkupapi.HTTPError{Status: http.StatusConflict, Message: "booking already decided"},
			wantStatus: http.StatusConflict,
			wantMsg:    "booking already decided",
		},
		{
			name:       "wrapped backend error",
			err:        fmt.Errorf("decide booking: %w", &linkupapi.HTTPError{Status: http.StatusNotFound, Message: "booking not found"}),
			wantStatus: http.StatusNotFound,
			wantMsg:    "booking not found",
		},
		{
			name:       "timeout",
			err:        fmt.Errorf("list bookings: %w", linkupapi.ErrTimeout),
			wantStatus: http.StatusGatewayTimeout,
			wantMsg:    "backend request timed out",
		},
		{
			name:       "network failure",
			err:        fmt.Errorf("list bookings: %w", linkupapi.ErrNetwork),
			wantStatus: http.StatusBadGateway,
			wantMsg:    "backend unavailable",
		},
		{
			name:       "malformed body",
			err:        fmt.Errorf("list bookings: %w", linkupapi.ErrParse),
			wantStatus: http.StatusBadGateway,
			wantMsg:    "backend unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			handled := RespondUpstreamError(rec, tt.err)

			require.True(t, handled)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestRespondUpstreamError_UnrelatedError(t *testing.T) {
	rec := httptest.NewRecorder()

	handled := RespondUpstreamError(rec, errors.New("something local"))

	assert.False(t, handled)
	assert.Empty(t, rec.Body.String(), "nothing must be written for non-upstream errors")
}
