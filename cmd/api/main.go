package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/TravisQBrown/citrine/internal/app"
	"github.com/TravisQBrown/citrine/internal/appconf"
	"github.com/TravisQBrown/citrine/internal/logging"
	"github.com/TravisQBrown/citrine/internal/restapi"
)

// parseConfig reads the server configuration from command-line arguments.
func parseConfig(args []string, output io.Writer) (appconf.Config, error) {
	var cfg appconf.Config
	var env, apiKeys string

	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.IntVar(&cfg.Port, "port", 5000, "API server port")
	fs.StringVar(&env, "env", "development", "Environment (development|test|production)")
	fs.StringVar(&apiKeys, "api-keys", "", "Comma separated API keys; empty leaves the API open")
	fs.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second per client; 0 disables limiting")
	fs.StringVar(&cfg.RedirectURL, "redirect-url", restapi.DefaultRedirectURL, "Where GET / redirects to")
	fs.BoolVar(&cfg.StrictErrors, "strict-errors", false, "Answer failed conversions with 400 instead of 200")
	fs.StringVar(&cfg.LogFormat, "log-format", "text", "Log format (text|json)")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return appconf.Config{}, err
	}
	// fs.Parse reports its own errors; these are reported the same way.
	var err error
	switch {
	case fs.NArg() > 0:
		err = fmt.Errorf("unexpected arguments: %v", fs.Args())
	case cfg.Port < 1 || cfg.Port > 65535:
		err = fmt.Errorf("invalid port %d", cfg.Port)
	}
	if err != nil {
		fmt.Fprintln(output, err)
		return appconf.Config{}, err
	}

	cfg.Env = appconf.EnvFlagToEnvironment(env)
	cfg.ApiKeys = appconf.ParseAPIKeys(apiKeys)

	return cfg, nil
}

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	logger := logging.NewLogger(os.Stdout, cfg.LogFormat, logging.ParseLevel(cfg.LogLevel))

	application, err := app.New(cfg, logger)
	if err != nil {
		logging.LogError(logger, "failed to initialize application", err)
		os.Exit(1)
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      routes(application, api),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
	err = srv.ListenAndServe()
	logging.LogError(logger, "server stopped", err)
	logging.SafeCloseWithLogging(api, logger, "rest_api")
	os.Exit(1)
}
