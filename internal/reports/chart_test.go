package reports

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"freshmarket-system/internal/analytics"
)

func assertChartRendered(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("missing chart: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("chart file is empty")
	}
}

func TestRenderChartSingleRowPanels(t *testing.T) {
	path := filepath.Join(t.TempDir(), ChartFile)

	top := []analytics.TopProductRow{{City: "Lima", Product: "Apple", Quantity: 15}}
	problems := []analytics.ProblemProductRow{{
		Product:      "Apple",
		ProblemRate:  decimal.NewFromInt(1).Div(decimal.NewFromInt(2)),
		ProblemCount: 1,
		TotalCount:   2,
	}}
	success := []analytics.CitySuccessRow{{
		City:             "Lima",
		TotalOrders:      2,
		SuccessfulOrders: 1,
		SuccessRate:      decimal.NewFromInt(1).Div(decimal.NewFromInt(2)),
	}}

	if err := RenderChart(path, top, problems, success); err != nil {
		t.Fatalf("RenderChart with single-row views: %v", err)
	}
	assertChartRendered(t, path)
}

func TestRenderChartAllEqualValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ChartFile)

	top := []analytics.TopProductRow{
		{City: "Lima", Product: "Apple", Quantity: 10},
		{City: "Cali", Product: "Granola", Quantity: 10},
	}
	// No problem orders anywhere: every bar is zero.
	problems := []analytics.ProblemProductRow{
		{Product: "Apple", ProblemRate: decimal.Zero, ProblemCount: 0, TotalCount: 5},
		{Product: "Granola", ProblemRate: decimal.Zero, ProblemCount: 0, TotalCount: 3},
	}
	one := decimal.NewFromInt(1)
	success := []analytics.CitySuccessRow{
		{City: "Lima", TotalOrders: 5, SuccessfulOrders: 5, SuccessRate: one},
		{City: "Cali", TotalOrders: 3, SuccessfulOrders: 3, SuccessRate: one},
	}

	if err := RenderChart(path, top, problems, success); err != nil {
		t.Fatalf("RenderChart with flat values: %v", err)
	}
	assertChartRendered(t, path)
}

func TestRenderChartEmptyViews(t *testing.T) {
	path := filepath.Join(t.TempDir(), ChartFile)

	if err := RenderChart(path, nil, nil, nil); err != nil {
		t.Fatalf("RenderChart with empty views: %v", err)
	}
	assertChartRendered(t, path)
}
