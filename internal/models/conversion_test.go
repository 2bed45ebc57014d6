package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TravisQBrown/citrine/internal/convert"
	"github.com/TravisQBrown/citrine/internal/units"
)

func TestConversionResponseJSON(t *testing.T) {
	body, err := json.Marshal(NewConversionResponse(convert.Result{UnitName: "(s * s)", MultiplicationFactor: 216000}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"unit_name": "(s * s)", "multiplication_factor": 216000}`, string(body))
}

func TestConversionIdentityJSON(t *testing.T) {
	body, err := json.Marshal(NewConversionResponse(convert.Identity))
	require.NoError(t, err)
	assert.JSONEq(t, `{"unit_name": "", "multiplication_factor": 1}`, string(body))
}

func TestConversionErrorResponse(t *testing.T) {
	response := NewConversionErrorResponse(&convert.UnknownUnitError{Symbol: "bogus"})
	assert.Equal(t, "bogus does not have an si equivalent", response.UnitName)
	assert.Equal(t, 1.0, response.MultiplicationFactor)
}

func TestNewUnits(t *testing.T) {
	table, err := units.Load()
	require.NoError(t, err)

	list := NewUnits(table.Entries())
	require.Len(t, list, table.Len())
	assert.Equal(t, Unit{Symbol: "minute", SISymbol: "s", SIFactor: 60}, list[0])
}
