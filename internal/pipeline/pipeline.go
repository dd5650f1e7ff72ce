// Package pipeline turns the flat sales record set into a normalized
// relational model: validated records, deduplicated dimension rows, one sale
// fact per record and a reconstructed inventory snapshot.
package pipeline

import "fmt"

// Result is the full output of one normalization run. All state is owned by
// the run; re-running on the same input produces an equal Result.
type Result struct {
	Cities    []City
	Products  []Product
	Customers []Customer
	Sales     []Sale
	Inventory []InventoryRow
	Rejected  []Rejection
}

// Run executes the normalization path over an already-ingested record set:
// validate, resolve dimensions, build facts, reduce the inventory snapshot.
// Row-level failures are collected in Result.Rejected; a duplicate sale id
// aborts with ErrDuplicateSaleID.
func Run(raw []RawRecord) (*Result, error) {
	valid, rejected := ValidateRecords(raw)

	dims := NewDimensionSet()
	builder := NewFactBuilder(dims)

	sales := make([]Sale, 0, len(valid))
	for _, rec := range valid {
		sale, err := builder.Build(rec)
		if err != nil {
			return nil, fmt.Errorf("building sale facts: %w", err)
		}
		sales = append(sales, sale)
	}

	return &Result{
		Cities:    dims.Cities(),
		Products:  dims.Products(),
		Customers: dims.Customers(),
		Sales:     sales,
		Inventory: BuildInventory(sales),
		Rejected:  rejected,
	}, nil
}
