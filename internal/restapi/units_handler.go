package restapi

import (
	"net/http"

	"github.com/TravisQBrown/citrine/internal/models"
	"github.com/TravisQBrown/citrine/internal/utils"
)

func (api *RestAPI) unitsHandler(w http.ResponseWriter, r *http.Request) {
	list := models.NewUnits(api.Units.Entries())
	api.sendResponse(w, r, models.NewListResponse(list))
}

func (api *RestAPI) unitHandler(w http.ResponseWriter, r *http.Request) {
	symbol := utils.ExtractParam(r, "symbol")

	entry, ok := api.Units.Lookup(symbol)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewUnit(entry)))
}
