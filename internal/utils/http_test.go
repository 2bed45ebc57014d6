package utils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestExtractParam(t *testing.T) {
	testCases := []struct {
		name   string
		symbol string
		want   string
	}{
		{name: "plain symbol", symbol: "min", want: "min"},
		{name: "json extension", symbol: "hour.json", want: "hour"},
		{name: "only the last extension", symbol: "h.json.json", want: "h.json"},
		{name: "escaped quote", symbol: url.PathEscape(`"`), want: `"`},
		{name: "degree sign", symbol: url.PathEscape("°"), want: "°"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := httprouter.New()

			var result string
			router.HandlerFunc(http.MethodGet, "/units/symbol/:symbol", func(w http.ResponseWriter, r *http.Request) {
				result = ExtractParam(r, "symbol")
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/units/symbol/"+tc.symbol, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tc.want, result)
		})
	}
}

func TestExtractParamMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/units/symbol/", nil)
	assert.Equal(t, "", ExtractParam(req, "symbol"))
}
