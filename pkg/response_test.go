package pkg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMapsDomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"wrapped bad request", fmt.Errorf("%w: Server value error", ErrBadRequest), http.StatusBadRequest, "bad request: Server value error"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"not found", ErrNotFound, http.StatusNotFound, "not found"},
		{"conflict", fmt.Errorf("%w: username taken", ErrAlreadyExists), http.StatusConflict, "already exists: username taken"},
		{"internal is masked", errors.New("failed to query servers: disk I/O error"), http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, httptest.NewRequest(http.MethodGet, "/api/servers", nil), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Error)
			assert.Equal(t, tt.status, StatusOf(tt.err))
		})
	}
}

func TestErrorLogsInternalCause(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	req := httptest.NewRequest(http.MethodGet, "/api/servers", nil)
	req = req.WithContext(log.WithContext(req.Context()))

	rec := httptest.NewRecorder()
	Error(rec, req, errors.New("failed to query servers: disk I/O error"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk I/O")
	assert.Contains(t, buf.String(), "disk I/O error")
	assert.Contains(t, buf.String(), `"path":"/api/servers"`)
	assert.Contains(t, buf.String(), `"level":"error"`)

	// 4xx client'ın hatasıdır, log'a düşmez.
	buf.Reset()
	Error(httptest.NewRecorder(), req, fmt.Errorf("%w: Server value error", ErrBadRequest))
	assert.Empty(t, buf.String())
}

func TestListWritesBareArray(t *testing.T) {
	rec := httptest.NewRecorder()
	List[string](rec, http.StatusOK, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = httptest.NewRecorder()
	List(rec, http.StatusOK, []int{1, 2})
	assert.JSONEq(t, `[1,2]`, rec.Body.String())
}

func TestJSONWrapsEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"status":"ok"}}`, rec.Body.String())
}
