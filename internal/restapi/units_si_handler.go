package restapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/TravisQBrown/citrine/internal/convert"
	"github.com/TravisQBrown/citrine/internal/expr"
	"github.com/TravisQBrown/citrine/internal/logging"
	"github.com/TravisQBrown/citrine/internal/models"
)

func (api *RestAPI) unitsSIHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	input := query.Get("units")

	// Only a missing parameter means "no units"; an empty one is parsed.
	var result convert.Result
	var err error
	if query.Has("units") {
		result, err = api.Converter.ConvertExpression(input)
	} else {
		result, err = api.Converter.Convert("")
	}
	if err != nil {
		kind, ok := conversionErrorKind(err)
		if !ok {
			api.serverErrorResponse(w, r, err)
			return
		}

		attrs := []any{
			slog.String("units", input),
			slog.String("error", err.Error()),
			slog.String("kind", kind),
		}
		var parseErr *expr.ParseError
		if errors.As(err, &parseErr) {
			attrs = append(attrs, slog.String("detail", parseErr.Detail()))
		}
		logging.FromContext(r.Context()).Warn("conversion_failed", attrs...)

		status := http.StatusOK
		if api.Config.StrictErrors {
			status = http.StatusBadRequest
		}
		api.sendJSON(w, r, status, models.NewConversionErrorResponse(err))
		return
	}

	api.sendJSON(w, r, http.StatusOK, models.NewConversionResponse(result))
}

// conversionErrorKind classifies the errors a conversion reports back to the
// caller. Anything else is an internal failure.
func conversionErrorKind(err error) (string, bool) {
	var (
		parseErr   *expr.ParseError
		unknownErr *convert.UnknownUnitError
		divErr     *convert.DivisionError
	)
	switch {
	case errors.As(err, &parseErr):
		return "parse_error", true
	case errors.As(err, &unknownErr):
		return "unknown_unit", true
	case errors.As(err, &divErr):
		return "division_by_zero", true
	default:
		return "", false
	}
}
