package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/junction-api/internal/domain"
	"github.com/phrazzld/junction-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "not found error",
			err:            store.ErrHeroNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "wrapped not found error",
			err:            fmt.Errorf("lookup failed: %w", store.ErrVendorSweetNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "validation error",
			err:            domain.NewValidationError(domain.KindHeroPower, domain.FieldStrength, nil),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "referential failure",
			err:            fmt.Errorf("%w: hero 3 does not exist", store.ErrInvalidEntity),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed request",
			err:            errors.Join(ErrInvalidRequestFormat, errors.New("unexpected EOF")),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown error",
			err:            errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		err     error
		message string
	}{
		{nil, "An unexpected error occurred"},
		{store.ErrHeroNotFound, "Hero not found"},
		{store.ErrPowerNotFound, "Power not found"},
		{store.ErrHeroPowerNotFound, "HeroPower not found"},
		{store.ErrVendorNotFound, "Vendor not found"},
		{store.ErrSweetNotFound, "Sweet not found"},
		{fmt.Errorf("delete: %w", store.ErrVendorSweetNotFound), "VendorSweet not found"},
		{store.ErrNotFound, "Not found"},
		{store.ErrInvalidEntity, "validation errors"},
		{errors.New("pq: password authentication failed for user \"admin\""), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.message, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		msg        string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        domain.NewValidationError(domain.KindVendorSweet, domain.FieldPrice, nil),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":["validation errors"]}`,
		},
		{
			name:       "not found",
			err:        store.ErrSweetNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Sweet not found"}`,
		},
		{
			name:       "internal error details are not leaked",
			err:        errors.New("dial tcp 10.0.0.1:5432: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"An unexpected error occurred"}`,
		},
		{
			name:       "explicit message",
			err:        errors.New("boom"),
			msg:        "Failed to list heroes",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to list heroes"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(rr, req, tt.err, tt.msg)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.NotContains(t, rr.Body.String(), "10.0.0.1")
		})
	}
}
