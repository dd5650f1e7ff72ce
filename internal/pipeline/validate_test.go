package pipeline

import (
	"strconv"
	"testing"
)

func rawRecord(row int, overrides map[string]string) RawRecord {
	fields := map[string]string{
		ColSaleID:       strconv.Itoa(row),
		ColDate:         "2024-01-01",
		ColCity:         "Lima",
		ColProduct:      "Apple",
		ColQuantity:     "10",
		ColUnitPrice:    "2.0",
		ColCustomerID:   "C1",
		ColDeliveryDays: "3",
		ColStatus:       "Entregado",
		ColStockInitial: "50",
		ColStockFinal:   "40",
	}
	for k, v := range overrides {
		fields[k] = v
	}
	return RawRecord{Row: row, Fields: fields}
}

func TestValidateRecordsAcceptsWellFormedRow(t *testing.T) {
	valid, rejected := ValidateRecords([]RawRecord{rawRecord(1, nil)})
	if len(rejected) != 0 {
		t.Fatalf("expected no rejections, got %+v", rejected)
	}
	if len(valid) != 1 {
		t.Fatalf("expected 1 valid record, got %d", len(valid))
	}

	rec := valid[0]
	if rec.SaleID != 1 || rec.City != "Lima" || rec.Product != "Apple" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Status != StatusDelivered {
		t.Errorf("status = %q, want %q", rec.Status, StatusDelivered)
	}
	if rec.OrderDate.Format(DateLayout) != "2024-01-01" {
		t.Errorf("order date = %v", rec.OrderDate)
	}
	if !rec.UnitPrice.Equal(mustDecimal(t, "2.0")) {
		t.Errorf("unit price = %s", rec.UnitPrice)
	}
}

func TestValidateRecordsRejections(t *testing.T) {
	tests := []struct {
		name     string
		override map[string]string
		reason   ReasonCode
	}{
		{"non-integer sale id", map[string]string{ColSaleID: "abc"}, ReasonBadSaleID},
		{"empty sale id", map[string]string{ColSaleID: ""}, ReasonBadSaleID},
		{"unparseable date", map[string]string{ColDate: "01/02/2024"}, ReasonBadDate},
		{"zero quantity", map[string]string{ColQuantity: "0"}, ReasonBadQuantity},
		{"negative quantity", map[string]string{ColQuantity: "-5"}, ReasonBadQuantity},
		{"non-integer quantity", map[string]string{ColQuantity: "2.5"}, ReasonBadQuantity},
		{"negative price", map[string]string{ColUnitPrice: "-1.0"}, ReasonBadPrice},
		{"non-numeric price", map[string]string{ColUnitPrice: "two"}, ReasonBadPrice},
		{"negative delivery days", map[string]string{ColDeliveryDays: "-1"}, ReasonBadDeliveryDays},
		{"unknown status", map[string]string{ColStatus: "Desconocido"}, ReasonBadStatus},
		{"lowercase status", map[string]string{ColStatus: "entregado"}, ReasonBadStatus},
		{"empty status", map[string]string{ColStatus: ""}, ReasonBadStatus},
		{"non-integer stock", map[string]string{ColStockFinal: "n/a"}, ReasonBadStock},
		{"empty city", map[string]string{ColCity: ""}, ReasonMissingField},
		{"empty customer", map[string]string{ColCustomerID: "  "}, ReasonMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, rejected := ValidateRecords([]RawRecord{rawRecord(7, tt.override)})
			if len(valid) != 0 {
				t.Fatalf("expected rejection, got valid %+v", valid)
			}
			if len(rejected) != 1 {
				t.Fatalf("expected 1 rejection, got %d", len(rejected))
			}
			if rejected[0].Reason != tt.reason {
				t.Errorf("reason = %q, want %q (detail: %s)", rejected[0].Reason, tt.reason, rejected[0].Detail)
			}
			if rejected[0].Row != 7 {
				t.Errorf("row = %d, want 7", rejected[0].Row)
			}
		})
	}
}

func TestValidateRecordsZeroPriceIsValid(t *testing.T) {
	valid, rejected := ValidateRecords([]RawRecord{rawRecord(1, map[string]string{ColUnitPrice: "0"})})
	if len(rejected) != 0 || len(valid) != 1 {
		t.Fatalf("zero price should be accepted, got valid=%d rejected=%d", len(valid), len(rejected))
	}
}

func TestValidateRecordsCompleteness(t *testing.T) {
	raw := []RawRecord{
		rawRecord(1, nil),
		rawRecord(2, map[string]string{ColStatus: "Desconocido"}),
		rawRecord(3, nil),
		rawRecord(4, map[string]string{ColQuantity: "0"}),
		rawRecord(5, map[string]string{ColStatus: "Retrasado"}),
	}

	valid, rejected := ValidateRecords(raw)
	if len(valid)+len(rejected) != len(raw) {
		t.Fatalf("valid(%d) + rejected(%d) != input(%d)", len(valid), len(rejected), len(raw))
	}

	// Valid rows keep their original order.
	wantRows := []int{1, 3, 5}
	for i, rec := range valid {
		if rec.Row != wantRows[i] {
			t.Errorf("valid[%d].Row = %d, want %d", i, rec.Row, wantRows[i])
		}
	}
}

func TestValidateRecordsDoesNotRejectDuplicateIDs(t *testing.T) {
	raw := []RawRecord{
		rawRecord(1, map[string]string{ColSaleID: "7"}),
		rawRecord(2, map[string]string{ColSaleID: "7"}),
	}
	valid, rejected := ValidateRecords(raw)
	if len(valid) != 2 || len(rejected) != 0 {
		t.Fatalf("duplicate ids must pass validation, got valid=%d rejected=%d", len(valid), len(rejected))
	}
}
