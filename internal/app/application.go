package app

import (
	"fmt"
	"log/slog"

	"github.com/TravisQBrown/citrine/internal/appconf"
	"github.com/TravisQBrown/citrine/internal/convert"
	"github.com/TravisQBrown/citrine/internal/logging"
	"github.com/TravisQBrown/citrine/internal/units"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config    appconf.Config
	Logger    *slog.Logger
	Units     *units.Table
	Converter *convert.Converter
}

// New loads the unit table and wires the converter around it. The table is
// read once here and shared read-only by every request afterwards.
func New(cfg appconf.Config, logger *slog.Logger) (*Application, error) {
	table, err := units.Load()
	if err != nil {
		return nil, fmt.Errorf("loading unit table: %w", err)
	}

	logging.LogOperation(logger, "unit_table_loaded",
		slog.String("source", units.DefaultTableFile),
		slog.Int("units", table.Len()))

	return &Application{
		Config:    cfg,
		Logger:    logger,
		Units:     table,
		Converter: convert.NewConverter(table),
	}, nil
}
