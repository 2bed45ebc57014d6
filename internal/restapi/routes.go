package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/", api.rootHandler)
	router.Handler(http.MethodGet, "/units", validateAPIKey(api, api.unitsHandler))
	router.Handler(http.MethodGet, "/units/si", validateAPIKey(api, api.unitsSIHandler))
	router.Handler(http.MethodGet, "/units/symbol/:symbol", validateAPIKey(api, api.unitHandler))

	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.HandleMethodNotAllowed = true
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowedResponse)
}

func (api *RestAPI) rootHandler(w http.ResponseWriter, r *http.Request) {
	target := api.Config.RedirectURL
	if target == "" {
		target = DefaultRedirectURL
	}
	http.Redirect(w, r, target, http.StatusFound)
}
