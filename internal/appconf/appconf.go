// Package appconf holds the runtime configuration of the API server.
package appconf

import "strings"

// Environment is the operating environment the server runs in.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvFlagToEnvironment maps the -env flag value to an Environment.
// Unknown values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// Config holds all the configuration settings for our Application.
type Config struct {
	Port    int
	Env     Environment
	ApiKeys []string
	// RateLimit is the number of requests allowed per second per client.
	// Zero or negative disables limiting.
	RateLimit int
	// RedirectURL is where GET / sends clients.
	RedirectURL string
	// StrictErrors answers failed conversions with 400 instead of 200.
	StrictErrors bool
	LogFormat    string
	LogLevel     string
}

// ParseAPIKeys splits a comma separated list of keys, dropping blanks.
func ParseAPIKeys(flagValue string) []string {
	var keys []string
	for _, key := range strings.Split(flagValue, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
