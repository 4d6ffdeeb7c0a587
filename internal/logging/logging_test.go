package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger(&bytes.Buffer{}, "debug").Level)
	assert.Equal(t, logrus.InfoLevel, NewLogger(&bytes.Buffer{}, "nonsense").Level)
}

func TestLogData_Context(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))

	logData := NewLogData(NewLogger(&bytes.Buffer{}, "info"))
	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))
}

func TestLogData_Log(t *testing.T) {
	logData := NewLogData(NewLogger(&bytes.Buffer{}, "info"))
	logData.AddData("edgeCount", 3)
	stop := logData.AddTiming("buildMs")
	stop()

	entry := logData.Log()
	assert.Equal(t, 3, entry.Data["edgeCount"])
	assert.Contains(t, entry.Data, "buildMs")
}

func TestLoggingWrapper(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(buf, "info")

	handler := LoggingWrapper("Test", logger, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logData := GetLogData(req.Context())
		require.NotNil(t, logData)
		logData.AddData("custom", "value")
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Handler.Test.Complete", line["msg"])
	assert.Equal(t, "info", line["loglevel"])
	assert.Equal(t, "value", line["custom"])
	assert.Equal(t, "/status", line["path"])
	assert.EqualValues(t, http.StatusTeapot, line["status"])
}

func TestLoggingWrapper_ServerError(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(buf, "info")

	handler := LoggingWrapper("Broken", logger, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/flowgraph", nil))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Handler.Broken.Error", line["msg"])
	assert.Equal(t, "error", line["loglevel"])
}
