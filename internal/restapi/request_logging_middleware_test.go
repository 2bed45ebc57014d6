package restapi

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TravisQBrown/citrine/internal/logging"
)

func TestRequestLoggingMiddleware(t *testing.T) {
	t.Run("logs HTTP request details", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("test response"))
		})

		handler := NewRequestLoggingMiddleware(logger)(testHandler)

		req := httptest.NewRequest(http.MethodGet, "/units/si?key=test", nil)
		req.Header.Set("User-Agent", "test-client/1.0")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "test response", recorder.Body.String())

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"GET"`)
		assert.Contains(t, output, `"path":"/units/si"`)
		assert.Contains(t, output, `"status":200`)
		assert.Contains(t, output, `"bytes":13`)
		assert.Contains(t, output, `"user_agent":"test-client/1.0"`)
		assert.Contains(t, output, `"duration_ms":`)
		assert.Contains(t, output, `"component":"http_server"`)
	})

	t.Run("records status codes set by the handler", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				w.WriteHeader(http.StatusMethodNotAllowed)
			} else {
				w.WriteHeader(http.StatusNotFound)
			}
		})
		handler := NewRequestLoggingMiddleware(logger)(testHandler)

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/units/si", nil))
		output := buf.String()
		assert.Contains(t, output, `"method":"POST"`)
		assert.Contains(t, output, `"status":405`)

		buf.Reset()

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nonexistent", nil))
		output = buf.String()
		assert.Contains(t, output, `"method":"GET"`)
		assert.Contains(t, output, `"status":404`)
	})

	t.Run("logs one line per request", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		handler := NewRequestLoggingMiddleware(logger)(okHandler())
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/units", nil))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], `"user_agent":""`)
	})

	t.Run("strips query parameters from logged path", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		handler := NewRequestLoggingMiddleware(logger)(okHandler())
		target := "/units/si?key=secret&units=" + url.QueryEscape("(hectare / litre)")
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))

		output := buf.String()
		assert.Contains(t, output, `"path":"/units/si"`)
		assert.NotContains(t, output, "secret")
		assert.NotContains(t, output, "hectare")
	})

	t.Run("puts the logger in the request context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

		var fromContext *slog.Logger
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fromContext = logging.FromContext(r.Context())
		})
		NewRequestLoggingMiddleware(logger)(testHandler).
			ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Same(t, logger, fromContext)
	})
}

func TestRequestLoggingIntegration(t *testing.T) {
	var buf bytes.Buffer
	api := createTestApiWithLogger(t, logging.NewStructuredLogger(&buf, slog.LevelInfo))

	req := httptest.NewRequest(http.MethodGet, "/units/si?key=TEST&units=minute", nil)
	req.Header.Set("User-Agent", "test-client")
	recorder := serveRequest(api, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	output := buf.String()
	assert.Contains(t, output, `"method":"GET"`)
	assert.Contains(t, output, `"path":"/units/si"`)
	assert.Contains(t, output, `"status":200`)
	assert.Contains(t, output, `"component":"http_server"`)
	assert.Contains(t, recorder.Body.String(), `"unit_name":"s"`)
}
