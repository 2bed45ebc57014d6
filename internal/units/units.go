// Package units holds the conversion table from supported unit symbols to
// their SI equivalents.
//
// The table ships as HCL configuration data embedded into the binary. It is
// decoded once at startup and never mutated afterwards, so a *Table can be
// shared by any number of goroutines without synchronization.
package units

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

//go:embed units.hcl
var defaultTableSource []byte

// DefaultTableFile is the name reported in diagnostics for the embedded table.
const DefaultTableFile = "units.hcl"

// Entry maps one input symbol to its SI symbol and scale factor.
type Entry struct {
	Symbol   string  `json:"symbol"`
	SISymbol string  `json:"siSymbol"`
	SIFactor float64 `json:"siFactor"`
}

// Table is an immutable lookup from unit symbol to Entry.
type Table struct {
	entries map[string]Entry
	order   []string
}

// hclTableFile is the top-level structure of a unit table file for decoding.
type hclTableFile struct {
	Units []*hclUnit `hcl:"unit,block"`
}

type hclUnit struct {
	Symbol   string  `hcl:"symbol,label"`
	SISymbol string  `hcl:"si_symbol"`
	SIFactor float64 `hcl:"si_factor"`
}

// Load decodes the embedded unit table.
func Load() (*Table, error) {
	return Parse(defaultTableSource, DefaultTableFile)
}

// Parse decodes a unit table from HCL source. The filename is only used in
// error messages.
func Parse(src []byte, filename string) (*Table, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse unit table %s: %w", filename, diags)
	}

	var parsed hclTableFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode unit table %s: %w", filename, diags)
	}

	entries := make([]Entry, 0, len(parsed.Units))
	for _, u := range parsed.Units {
		entries = append(entries, Entry{
			Symbol:   u.Symbol,
			SISymbol: u.SISymbol,
			SIFactor: u.SIFactor,
		})
	}

	table, err := NewTable(entries...)
	if err != nil {
		return nil, fmt.Errorf("invalid unit table %s: %w", filename, err)
	}
	return table, nil
}

// NewTable builds a table from the given entries, keeping their order for
// listing. Symbols must be unique and non-empty, SI symbols non-empty and
// factors strictly positive.
func NewTable(entries ...Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, errors.New("unit table is empty")
	}

	t := &Table{
		entries: make(map[string]Entry, len(entries)),
		order:   make([]string, 0, len(entries)),
	}

	for _, e := range entries {
		if e.Symbol == "" {
			return nil, errors.New("unit symbol cannot be empty")
		}
		if e.SISymbol == "" {
			return nil, fmt.Errorf("unit %q has no si symbol", e.Symbol)
		}
		if e.SIFactor <= 0 {
			return nil, fmt.Errorf("unit %q must have a positive si factor, got %v", e.Symbol, e.SIFactor)
		}
		if _, exists := t.entries[e.Symbol]; exists {
			return nil, fmt.Errorf("unit %q is defined more than once", e.Symbol)
		}
		t.entries[e.Symbol] = e
		t.order = append(t.order, e.Symbol)
	}

	return t, nil
}

// Lookup returns the entry for symbol.
func (t *Table) Lookup(symbol string) (Entry, bool) {
	e, ok := t.entries[symbol]
	return e, ok
}

// Entries returns a copy of all entries in declaration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, symbol := range t.order {
		out = append(out, t.entries[symbol])
	}
	return out
}

// Len reports the number of units in the table.
func (t *Table) Len() int {
	return len(t.order)
}
