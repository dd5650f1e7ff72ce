package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ValidateRecords type-checks and coerces every raw row. It returns the
// valid records in their original order plus one Rejection per failed row.
// len(valid) + len(rejected) always equals len(raw).
//
// Duplicate sale ids are not rejected here: the analysis path tolerates
// them, and the normalization path treats them as a fatal load error when
// building facts.
func ValidateRecords(raw []RawRecord) ([]ValidRecord, []Rejection) {
	valid := make([]ValidRecord, 0, len(raw))
	var rejected []Rejection

	for _, r := range raw {
		rec, rej := validateRecord(r)
		if rej != nil {
			rejected = append(rejected, *rej)
			continue
		}
		valid = append(valid, rec)
	}
	return valid, rejected
}

func validateRecord(r RawRecord) (ValidRecord, *Rejection) {
	reject := func(reason ReasonCode, format string, args ...interface{}) (ValidRecord, *Rejection) {
		return ValidRecord{}, &Rejection{
			Row:    r.Row,
			Reason: reason,
			Detail: fmt.Sprintf(format, args...),
		}
	}

	saleID, err := strconv.ParseInt(field(r, ColSaleID), 10, 64)
	if err != nil {
		return reject(ReasonBadSaleID, "%s=%q is not an integer", ColSaleID, field(r, ColSaleID))
	}

	orderDate, err := time.Parse(DateLayout, field(r, ColDate))
	if err != nil {
		return reject(ReasonBadDate, "%s=%q is not a %s date", ColDate, field(r, ColDate), DateLayout)
	}

	city := field(r, ColCity)
	product := field(r, ColProduct)
	customer := field(r, ColCustomerID)
	if city == "" || product == "" || customer == "" {
		return reject(ReasonMissingField, "empty %s/%s/%s value", ColCity, ColProduct, ColCustomerID)
	}

	quantity, err := strconv.ParseInt(field(r, ColQuantity), 10, 32)
	if err != nil || quantity <= 0 {
		return reject(ReasonBadQuantity, "%s=%q is not a positive integer", ColQuantity, field(r, ColQuantity))
	}

	unitPrice, err := decimal.NewFromString(field(r, ColUnitPrice))
	if err != nil || unitPrice.IsNegative() {
		return reject(ReasonBadPrice, "%s=%q is not a non-negative number", ColUnitPrice, field(r, ColUnitPrice))
	}

	deliveryDays, err := strconv.ParseInt(field(r, ColDeliveryDays), 10, 32)
	if err != nil || deliveryDays < 0 {
		return reject(ReasonBadDeliveryDays, "%s=%q is not a non-negative integer", ColDeliveryDays, field(r, ColDeliveryDays))
	}

	status, ok := ParseDeliveryStatus(field(r, ColStatus))
	if !ok {
		return reject(ReasonBadStatus, "%s=%q is not one of %s/%s/%s",
			ColStatus, field(r, ColStatus), StatusDelivered, StatusDelayed, StatusCancelled)
	}

	stockInitial, err := strconv.ParseInt(field(r, ColStockInitial), 10, 32)
	if err != nil {
		return reject(ReasonBadStock, "%s=%q is not an integer", ColStockInitial, field(r, ColStockInitial))
	}
	stockFinal, err := strconv.ParseInt(field(r, ColStockFinal), 10, 32)
	if err != nil {
		return reject(ReasonBadStock, "%s=%q is not an integer", ColStockFinal, field(r, ColStockFinal))
	}

	return ValidRecord{
		Row:          r.Row,
		SaleID:       saleID,
		OrderDate:    orderDate,
		City:         city,
		Product:      product,
		Quantity:     int32(quantity),
		UnitPrice:    unitPrice,
		CustomerID:   customer,
		DeliveryDays: int32(deliveryDays),
		Status:       status,
		StockInitial: int32(stockInitial),
		StockFinal:   int32(stockFinal),
	}, nil
}

func field(r RawRecord, name string) string {
	return strings.TrimSpace(r.Fields[name])
}
