package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrDuplicateSaleID marks a fatal normalization error: two input rows share
// an id_venta, so there is no single source of truth for that sale.
var ErrDuplicateSaleID = errors.New("duplicate sale id")

// Sale is one fact row. All three foreign keys reference dimension rows
// created in the same run.
type Sale struct {
	ID           int64
	CustomerID   string
	CityID       int32
	ProductID    int32
	OrderDate    time.Time
	DeliveryDays int32
	DeliveryDate time.Time
	Status       DeliveryStatus
	Quantity     int32
	UnitPrice    decimal.Decimal
	Subtotal     decimal.Decimal
	StockInitial int32
	StockFinal   int32
}

// Subtotal computes quantity × unit price exactly. The stored subtotal is
// always this recomputation, never a caller-supplied value.
func Subtotal(quantity int32, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt32(quantity))
}

// FactBuilder emits one Sale per valid record, resolving dimension ids as it
// goes. It tracks seen sale ids so a duplicate surfaces with both row
// numbers.
type FactBuilder struct {
	dims *DimensionSet
	seen map[int64]int
}

func NewFactBuilder(dims *DimensionSet) *FactBuilder {
	return &FactBuilder{dims: dims, seen: make(map[int64]int)}
}

func (b *FactBuilder) Build(rec ValidRecord) (Sale, error) {
	if firstRow, ok := b.seen[rec.SaleID]; ok {
		return Sale{}, fmt.Errorf("row %d: %w %d (first seen at row %d)",
			rec.Row, ErrDuplicateSaleID, rec.SaleID, firstRow)
	}
	b.seen[rec.SaleID] = rec.Row

	return Sale{
		ID:           rec.SaleID,
		CustomerID:   b.dims.ResolveCustomer(rec.CustomerID),
		CityID:       b.dims.ResolveCity(rec.City),
		ProductID:    b.dims.ResolveProduct(rec.Product),
		OrderDate:    rec.OrderDate,
		DeliveryDays: rec.DeliveryDays,
		DeliveryDate: rec.OrderDate.AddDate(0, 0, int(rec.DeliveryDays)),
		Status:       rec.Status,
		Quantity:     rec.Quantity,
		UnitPrice:    rec.UnitPrice,
		Subtotal:     Subtotal(rec.Quantity, rec.UnitPrice),
		StockInitial: rec.StockInitial,
		StockFinal:   rec.StockFinal,
	}, nil
}
