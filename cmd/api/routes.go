package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/TravisQBrown/citrine/internal/app"
	"github.com/TravisQBrown/citrine/internal/appconf"
	"github.com/TravisQBrown/citrine/internal/restapi"
	"github.com/TravisQBrown/citrine/internal/webui"
)

// routes builds the server handler. Debug pages are only mounted in
// development.
func routes(application *app.Application, api *restapi.RestAPI) http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	if application.Config.Env == appconf.Development {
		ui := &webui.WebUI{Application: application}
		ui.SetWebUIRoutes(router)
	}

	return api.WithMiddleware(router)
}
