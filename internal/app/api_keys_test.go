package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TravisQBrown/citrine/internal/appconf"
)

func TestBlankKeyIsInvalid(t *testing.T) {
	app := &Application{
		Config: appconf.Config{
			ApiKeys: []string{"key"},
		},
	}
	assert.True(t, app.IsInvalidAPIKey(""))
}

func TestConfiguredKeys(t *testing.T) {
	app := &Application{
		Config: appconf.Config{
			ApiKeys: []string{"key", "other"},
		},
	}
	assert.False(t, app.IsInvalidAPIKey("key"))
	assert.False(t, app.IsInvalidAPIKey("other"))
	assert.True(t, app.IsInvalidAPIKey("KEY"))
}

func TestOpenAPIWithoutConfiguredKeys(t *testing.T) {
	app := &Application{}
	assert.False(t, app.IsInvalidAPIKey(""))
	assert.False(t, app.IsInvalidAPIKey("anything"))
}

func TestRequestHasInvalidAPIKey(t *testing.T) {
	app := &Application{
		Config: appconf.Config{
			ApiKeys: []string{"TEST"},
		},
	}

	assert.False(t, app.RequestHasInvalidAPIKey(httptest.NewRequest("GET", "/units/si?key=TEST", nil)))
	assert.True(t, app.RequestHasInvalidAPIKey(httptest.NewRequest("GET", "/units/si?key=nope", nil)))
	assert.True(t, app.RequestHasInvalidAPIKey(httptest.NewRequest("GET", "/units/si", nil)))
}
