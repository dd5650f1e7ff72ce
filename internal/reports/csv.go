// Package reports writes the analytic views to CSV files and a combined
// chart image.
package reports

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"freshmarket-system/internal/analytics"
)

// Report file names, kept from the original deliverables.
const (
	TopProductsFile     = "productos_mas_vendidos_por_ciudad.csv"
	ProblemProductsFile = "productos_con_mayor_retraso_o_cancelacion.csv"
	CitySuccessFile     = "logistica_exito_por_ciudad.csv"
	ChartFile           = "analisis_ventas_completo.png"
)

var oneHundred = decimal.NewFromInt(100)

// WriteAll writes the three report CSVs and the combined chart under dir,
// creating it if needed.
func WriteAll(dir string, top []analytics.TopProductRow, problems []analytics.ProblemProductRow, success []analytics.CitySuccessRow) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating reports dir: %w", err)
	}

	if err := WriteTopProducts(filepath.Join(dir, TopProductsFile), top); err != nil {
		return err
	}
	if err := WriteProblemProducts(filepath.Join(dir, ProblemProductsFile), problems); err != nil {
		return err
	}
	if err := WriteCitySuccess(filepath.Join(dir, CitySuccessFile), success); err != nil {
		return err
	}
	return RenderChart(filepath.Join(dir, ChartFile), top, problems, success)
}

func WriteTopProducts(path string, rows []analytics.TopProductRow) error {
	records := [][]string{{"ciudad", "producto", "cantidad"}}
	for _, r := range rows {
		records = append(records, []string{r.City, r.Product, strconv.FormatInt(r.Quantity, 10)})
	}
	return writeCSV(path, records)
}

func WriteProblemProducts(path string, rows []analytics.ProblemProductRow) error {
	records := [][]string{{"producto", "tasa_problemas", "cantidad_ordenes", "total_ordenes"}}
	for _, r := range rows {
		records = append(records, []string{
			r.Product,
			r.ProblemRate.StringFixed(4),
			strconv.FormatInt(r.ProblemCount, 10),
			strconv.FormatInt(r.TotalCount, 10),
		})
	}
	return writeCSV(path, records)
}

func WriteCitySuccess(path string, rows []analytics.CitySuccessRow) error {
	records := [][]string{{"ciudad", "total_ordenes", "ordenes_exitosas", "porcentaje_exitoso"}}
	for _, r := range rows {
		records = append(records, []string{
			r.City,
			strconv.FormatInt(r.TotalOrders, 10),
			strconv.FormatInt(r.SuccessfulOrders, 10),
			r.SuccessRate.Mul(oneHundred).StringFixed(2),
		})
	}
	return writeCSV(path, records)
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
