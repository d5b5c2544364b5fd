package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-artbot/internal/domain"
	"github.com/feral-file/ff-artbot/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   ErrorCode
	}{
		{invalidQuery("empty"), http.StatusBadRequest, errCodeBadRequest},
		{domain.ErrInvalidNumber, http.StatusBadRequest, errCodeBadRequest},
		{fmt.Errorf("lookup: %w", domain.ErrProjectNotFound), http.StatusNotFound, errCodeNotFound},
		{domain.ErrDirectoryNotReady, http.StatusServiceUnavailable, errCodeServiceUnavailable},
		{domain.ErrRateLimited, http.StatusServiceUnavailable, errCodeServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError, errCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, code := statusFor(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func respond(t *testing.T, err error, details string) (int, errorDetail) {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/classify", nil)

	respondError(c, err, details)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body.Error
}

func TestRespondError(t *testing.T) {
	t.Run("client error keeps details", func(t *testing.T) {
		status, detail := respond(t, invalidQuery("command must start with #"), "hello")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "invalid command format: command must start with #", detail.Message)
		assert.Equal(t, "hello", detail.Details)
	})

	t.Run("internal error hides message", func(t *testing.T) {
		status, detail := respond(t, errors.New("connection reset"), "secret")
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, errCodeInternalError, detail.Code)
		assert.Equal(t, "Internal server error", detail.Message)
		assert.Empty(t, detail.Details)
	})
}
