// Package webui serves development-only debug pages.
package webui

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"github.com/TravisQBrown/citrine/internal/app"
	"github.com/TravisQBrown/citrine/internal/expr"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

// dumper prints struct fields rather than String output, so parse trees show
// their Atoms and Groups.
var dumper = spew.ConfigState{Indent: " ", DisableMethods: true}

// WebUI renders internal state for inspection in a browser.
type WebUI struct {
	*app.Application
}

type debugData struct {
	Title string
	Pre   string
}

// conversionTrace is everything the pipeline produced for one expression.
type conversionTrace struct {
	Input    string
	Tree     expr.Node
	Rendered string
	Result   interface{}
	Error    string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := debugTemplate.Execute(w, debugData{
		Title: title,
		Pre:   dumper.Sdump(data),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// traceConversion runs one conversion step by step. supplied reports whether
// the units parameter was present at all.
func (webUI *WebUI) traceConversion(input string, supplied bool) conversionTrace {
	trace := conversionTrace{Input: input}

	if !supplied {
		trace.Tree = &expr.Atom{}
	} else {
		node, err := expr.Parse(input)
		if err != nil {
			trace.Error = err.Error()
			var parseErr *expr.ParseError
			if errors.As(err, &parseErr) {
				trace.Error = parseErr.Detail()
			}
			return trace
		}
		trace.Tree = node
	}
	trace.Rendered = trace.Tree.String()

	result, err := webUI.Converter.ConvertNode(trace.Tree)
	if err != nil {
		trace.Error = err.Error()
		return trace
	}
	trace.Result = result
	return trace
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var data interface{}
	var title string

	switch query.Get("dataType") {
	case "units":
		data = webUI.Units.Entries()
		title = "Unit Table"
	case "conversion":
		data = webUI.traceConversion(query.Get("units"), query.Has("units"))
		title = "Conversion Trace"
	default:
		data = map[string]string{
			"error": "Please use one of the following: units, conversion.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
