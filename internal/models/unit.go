package models

import "github.com/TravisQBrown/citrine/internal/units"

// Unit describes one supported unit and its SI equivalent
type Unit struct {
	Symbol   string  `json:"symbol"`
	SISymbol string  `json:"siSymbol"`
	SIFactor float64 `json:"siFactor"`
}

func NewUnit(entry units.Entry) Unit {
	return Unit{
		Symbol:   entry.Symbol,
		SISymbol: entry.SISymbol,
		SIFactor: entry.SIFactor,
	}
}

// NewUnits converts table entries, preserving their order
func NewUnits(entries []units.Entry) []Unit {
	out := make([]Unit, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewUnit(e))
	}
	return out
}
