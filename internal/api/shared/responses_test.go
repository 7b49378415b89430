package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/coupon-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithSuccess(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/coupon/1", nil)

	RespondWithSuccess(w, r, http.StatusOK, map[string]int{"id": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"isSuccess":true,"result":{"id":1},"statusCode":200,"errorMessages":[]}`,
		w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	log, buf := logger.NewTestLogger(t)
	ctx := logger.WithLogger(SetTraceID(context.Background()), log)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/login", nil).WithContext(ctx)

	cause := errors.New("dial postgres://admin:hunter2@db:5432/coupons failed")
	RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "An unexpected error occurred", cause)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.IsSuccess)
	assert.Nil(t, body.Result)
	assert.Equal(t, http.StatusInternalServerError, body.StatusCode)
	assert.Equal(t, []string{"An unexpected error occurred"}, body.ErrorMessages)
	assert.NotContains(t, w.Body.String(), "hunter2")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0]["level"])
	assert.Equal(t, GetTraceID(ctx), entries[0]["trace_id"])
	assert.NotContains(t, buf.String(), "hunter2")
}

func TestRespondWithError_LogLevels(t *testing.T) {
	t.Parallel()

	log, buf := logger.NewTestLogger(t)
	ctx := logger.WithLogger(context.Background(), log)
	r := httptest.NewRequest(http.MethodGet, "/api/coupon", nil).WithContext(ctx)

	RespondWithError(httptest.NewRecorder(), r, http.StatusBadRequest, "bad")
	RespondWithErrorAndLog(httptest.NewRecorder(), r, http.StatusForbidden, "Forbidden", nil, WithElevatedLogLevel())

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "DEBUG", entries[0]["level"])
	assert.Equal(t, "WARN", entries[1]["level"])
}

func TestNewErrorResponse_NeverNullMessages(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(NewErrorResponse(http.StatusBadRequest))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"errorMessages":[]`)
}
