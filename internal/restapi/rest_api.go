// Package restapi serves the unit conversion engine over HTTP.
package restapi

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/TravisQBrown/citrine/internal/app"
)

// DefaultRedirectURL is where GET / points when no redirect is configured.
const DefaultRedirectURL = "https://citrine.io"

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// Handler registers the routes on a fresh router and wraps it with the
// middleware chain.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)
	return api.WithMiddleware(router)
}

// WithMiddleware wraps next, outermost first, with security headers,
// compression, request logging and rate limiting.
func (api *RestAPI) WithMiddleware(next http.Handler) http.Handler {
	handler := next
	if api.rateLimiter != nil {
		handler = api.rateLimiter.Handler(handler)
	}
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	handler = CompressionMiddleware(handler)
	return api.WithSecurityHeaders(handler)
}

// Close releases background resources held by the middleware. It is safe
// to call more than once.
func (api *RestAPI) Close() error {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
	return nil
}
