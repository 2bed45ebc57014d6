package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TravisQBrown/citrine/internal/app"
	"github.com/TravisQBrown/citrine/internal/appconf"
	"github.com/TravisQBrown/citrine/internal/logging"
	"github.com/TravisQBrown/citrine/internal/models"
)

// createTestApi creates a RestAPI around the embedded unit table that accepts
// the API key "TEST".
func createTestApi(t *testing.T) *RestAPI {
	return createTestApiWithLogger(t, logging.NewStructuredLogger(io.Discard, slog.LevelInfo))
}

func createTestApiWithLogger(t *testing.T, logger *slog.Logger) *RestAPI {
	t.Helper()

	application, err := app.New(appconf.Config{
		Env:     appconf.EnvFlagToEnvironment("test"),
		ApiKeys: []string{"TEST"},
	}, logger)
	require.NoError(t, err)

	return &RestAPI{Application: application}
}

// serveRequest runs req through the full handler chain.
func serveRequest(api *RestAPI, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, req)
	return rec
}

func serveEndpoint(api *RestAPI, endpoint string) *httptest.ResponseRecorder {
	return serveRequest(api, httptest.NewRequest(http.MethodGet, endpoint, nil))
}

// serveAndRetrieveEndpoint serves endpoint on a test server and decodes the
// envelope it returns.
func serveAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := httptest.NewServer(api.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))

	return resp, response
}

func decodeConversion(t *testing.T, body *bytes.Buffer) models.ConversionResponse {
	t.Helper()

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(body.Bytes(), &raw))
	require.Len(t, raw, 2)
	require.Contains(t, raw, "unit_name")
	require.Contains(t, raw, "multiplication_factor")

	var response models.ConversionResponse
	require.NoError(t, json.Unmarshal(body.Bytes(), &response))
	return response
}
