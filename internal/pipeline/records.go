package pipeline

import (
	"time"

	"github.com/shopspring/decimal"
)

// Input column names as they appear in the source CSV header.
const (
	ColSaleID       = "id_venta"
	ColDate         = "fecha"
	ColCity         = "ciudad"
	ColProduct      = "producto"
	ColQuantity     = "cantidad"
	ColUnitPrice    = "precio_unitario"
	ColCustomerID   = "cliente_id"
	ColDeliveryDays = "tiempo_entrega_dias"
	ColStatus       = "estado_entrega"
	ColStockInitial = "stock_inicial_producto"
	ColStockFinal   = "stock_final_producto"
)

// RequiredColumns is the full input schema. A header missing any of these
// aborts the run before any row is processed.
var RequiredColumns = []string{
	ColSaleID,
	ColDate,
	ColCity,
	ColProduct,
	ColQuantity,
	ColUnitPrice,
	ColCustomerID,
	ColDeliveryDays,
	ColStatus,
	ColStockInitial,
	ColStockFinal,
}

const DateLayout = "2006-01-02"

// DeliveryStatus holds the verbatim source literal. Matching is
// case-sensitive after whitespace trim; anything outside the three
// recognized values fails validation.
type DeliveryStatus string

const (
	StatusDelivered DeliveryStatus = "Entregado"
	StatusDelayed   DeliveryStatus = "Retrasado"
	StatusCancelled DeliveryStatus = "Cancelado"
)

func ParseDeliveryStatus(s string) (DeliveryStatus, bool) {
	switch DeliveryStatus(s) {
	case StatusDelivered, StatusDelayed, StatusCancelled:
		return DeliveryStatus(s), true
	}
	return "", false
}

// IsProblem reports whether the order counts against a product's problem
// rate (delayed or cancelled).
func (s DeliveryStatus) IsProblem() bool {
	return s == StatusDelayed || s == StatusCancelled
}

// RawRecord is one untyped input row. Row is the 1-based data row number in
// the source, used in rejection and error reporting.
type RawRecord struct {
	Row    int
	Fields map[string]string
}

// ValidRecord is a type-coerced row that passed validation. Records keep
// their original input order through the whole pipeline.
type ValidRecord struct {
	Row          int
	SaleID       int64
	OrderDate    time.Time
	City         string
	Product      string
	Quantity     int32
	UnitPrice    decimal.Decimal
	CustomerID   string
	DeliveryDays int32
	Status       DeliveryStatus
	StockInitial int32
	StockFinal   int32
}

// ReasonCode identifies why a row was rejected.
type ReasonCode string

const (
	ReasonBadSaleID       ReasonCode = "bad_sale_id"
	ReasonBadDate         ReasonCode = "bad_date"
	ReasonBadQuantity     ReasonCode = "bad_quantity"
	ReasonBadPrice        ReasonCode = "bad_price"
	ReasonBadDeliveryDays ReasonCode = "bad_delivery_days"
	ReasonBadStatus       ReasonCode = "bad_status"
	ReasonBadStock        ReasonCode = "bad_stock"
	ReasonMissingField    ReasonCode = "missing_field"
)

// Rejection pairs a failed row with the first check it failed.
type Rejection struct {
	Row    int
	Reason ReasonCode
	Detail string
}
