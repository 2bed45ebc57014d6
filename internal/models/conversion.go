package models

import "github.com/TravisQBrown/citrine/internal/convert"

// ConversionResponse is the body of GET /units/si.
type ConversionResponse struct {
	UnitName             string  `json:"unit_name"`
	MultiplicationFactor float64 `json:"multiplication_factor"`
}

// NewConversionResponse builds the body for a successful conversion.
func NewConversionResponse(result convert.Result) ConversionResponse {
	return ConversionResponse{
		UnitName:             result.UnitName,
		MultiplicationFactor: result.MultiplicationFactor,
	}
}

// NewConversionErrorResponse echoes a conversion error in place of the unit
// name, with the identity factor.
func NewConversionErrorResponse(err error) ConversionResponse {
	return ConversionResponse{
		UnitName:             err.Error(),
		MultiplicationFactor: 1,
	}
}
