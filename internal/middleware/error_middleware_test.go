package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/acadio/backend/internal/pkg/apperrors"
)

func performWithError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "not found",
			err:        apperrors.NewNotFoundError("Program not found"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Program not found"}`,
		},
		{
			name:       "conflict answers 400",
			err:        apperrors.NewConflictError("Already subscribed to this course"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Already subscribed to this course"}`,
		},
		{
			name:       "precondition answers 400",
			err:        apperrors.NewPreconditionError("You must be subscribed to the program to enroll in this course"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"You must be subscribed to the program to enroll in this course"}`,
		},
		{
			name:       "validation answers 400",
			err:        apperrors.NewValidationError("Username is required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Username is required"}`,
		},
		{
			name:       "bad credentials answer 400",
			err:        apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid username or password"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid username or password"}`,
		},
		{
			name:       "expired token answers 401",
			err:        apperrors.ErrTokenExpired,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"token expired"}`,
		},
		{
			name:       "permission denied answers 403",
			err:        apperrors.ErrPermissionDenied,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"permission denied"}`,
		},
		{
			name:       "unknown error answers 500 with generic body",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performWithError(tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
