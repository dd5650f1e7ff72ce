// Package analytics computes the three report views over the validated
// record stream. The reductions are keyed by raw city/product names and do
// not depend on the normalization path; both consume the same validated set.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"freshmarket-system/internal/pipeline"
)

// TopProductRow is the best-selling product of one city, by summed quantity.
type TopProductRow struct {
	City     string `json:"city"`
	Product  string `json:"product"`
	Quantity int64  `json:"quantity"`
}

// ProblemProductRow ranks a product by its share of delayed or cancelled
// orders.
type ProblemProductRow struct {
	Product      string          `json:"product"`
	ProblemRate  decimal.Decimal `json:"problem_rate"`
	ProblemCount int64           `json:"problem_count"`
	TotalCount   int64           `json:"total_count"`
}

// CitySuccessRow is the delivery success rate of one city, in [0,1].
type CitySuccessRow struct {
	City             string          `json:"city"`
	TotalOrders      int64           `json:"total_orders"`
	SuccessfulOrders int64           `json:"successful_orders"`
	SuccessRate      decimal.Decimal `json:"success_rate"`
}

// TopProductByCity returns one row per distinct city: the product with the
// highest summed quantity, ties broken by the lexicographically smallest
// product name. Rows come out sorted by city name.
func TopProductByCity(records []pipeline.ValidRecord) []TopProductRow {
	type key struct{ city, product string }
	totals := make(map[key]int64)
	for _, r := range records {
		totals[key{r.City, r.Product}] += int64(r.Quantity)
	}

	best := make(map[string]TopProductRow)
	for k, qty := range totals {
		cur, ok := best[k.city]
		if !ok || qty > cur.Quantity || (qty == cur.Quantity && k.product < cur.Product) {
			best[k.city] = TopProductRow{City: k.city, Product: k.product, Quantity: qty}
		}
	}

	rows := make([]TopProductRow, 0, len(best))
	for _, row := range best {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].City < rows[j].City })
	return rows
}

// ProblemProducts returns every product ranked by problem rate descending,
// ties by total order count descending, then product name ascending. The
// caller decides how many top rows to surface.
func ProblemProducts(records []pipeline.ValidRecord) []ProblemProductRow {
	problems := make(map[string]int64)
	totals := make(map[string]int64)
	for _, r := range records {
		totals[r.Product]++
		if r.Status.IsProblem() {
			problems[r.Product]++
		}
	}

	rows := make([]ProblemProductRow, 0, len(totals))
	for product, total := range totals {
		rows = append(rows, ProblemProductRow{
			Product:      product,
			ProblemRate:  decimal.NewFromInt(problems[product]).Div(decimal.NewFromInt(total)),
			ProblemCount: problems[product],
			TotalCount:   total,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].ProblemRate.Equal(rows[j].ProblemRate) {
			return rows[i].ProblemRate.GreaterThan(rows[j].ProblemRate)
		}
		if rows[i].TotalCount != rows[j].TotalCount {
			return rows[i].TotalCount > rows[j].TotalCount
		}
		return rows[i].Product < rows[j].Product
	})
	return rows
}

// CitySuccessRates returns one row per distinct city with the share of
// delivered orders, sorted by city name. A city only appears if it has at
// least one record, so the rate never divides by zero.
func CitySuccessRates(records []pipeline.ValidRecord) []CitySuccessRow {
	totals := make(map[string]int64)
	successes := make(map[string]int64)
	for _, r := range records {
		totals[r.City]++
		if r.Status == pipeline.StatusDelivered {
			successes[r.City]++
		}
	}

	rows := make([]CitySuccessRow, 0, len(totals))
	for city, total := range totals {
		rows = append(rows, CitySuccessRow{
			City:             city,
			TotalOrders:      total,
			SuccessfulOrders: successes[city],
			SuccessRate:      decimal.NewFromInt(successes[city]).Div(decimal.NewFromInt(total)),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].City < rows[j].City })
	return rows
}
