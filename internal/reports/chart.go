package reports

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"freshmarket-system/internal/analytics"
)

const (
	panelWidth  = 640
	panelHeight = 480
)

// RenderChart writes the three analytic views as one side-by-side bar chart
// image, matching the original combined figure.
func RenderChart(path string, top []analytics.TopProductRow, problems []analytics.ProblemProductRow, success []analytics.CitySuccessRow) error {
	topValues := make([]chart.Value, 0, len(top))
	for _, r := range top {
		topValues = append(topValues, chart.Value{
			Label: fmt.Sprintf("%s (%s)", r.City, r.Product),
			Value: float64(r.Quantity),
		})
	}

	problemValues := make([]chart.Value, 0, len(problems))
	for _, r := range problems {
		problemValues = append(problemValues, chart.Value{
			Label: r.Product,
			Value: float64(r.ProblemCount),
		})
	}

	successValues := make([]chart.Value, 0, len(success))
	for _, r := range success {
		pct, _ := r.SuccessRate.Mul(oneHundred).Float64()
		successValues = append(successValues, chart.Value{Label: r.City, Value: pct})
	}

	panels := make([]image.Image, 0, 3)
	titles := []string{
		"Productos Mas Vendidos por Ciudad",
		"Productos con Mayor Retraso o Cancelacion",
		"Porcentaje de Exito Logistico por Ciudad",
	}
	for i, values := range [][]chart.Value{topValues, problemValues, successValues} {
		panel, err := renderBarPanel(titles[i], values)
		if err != nil {
			return fmt.Errorf("rendering chart panel %q: %w", titles[i], err)
		}
		panels = append(panels, panel)
	}

	combined := image.NewRGBA(image.Rect(0, 0, panelWidth*len(panels), panelHeight))
	for i, panel := range panels {
		target := image.Rect(i*panelWidth, 0, (i+1)*panelWidth, panelHeight)
		draw.Draw(combined, target, panel, image.Point{}, draw.Src)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, combined); err != nil {
		return fmt.Errorf("encoding chart %s: %w", path, err)
	}
	return nil
}

func renderBarPanel(title string, values []chart.Value) (image.Image, error) {
	// go-chart cannot render an empty bar set; keep the panel with a zero
	// placeholder so the combined layout stays stable.
	if len(values) == 0 {
		values = []chart.Value{{Label: "sin datos", Value: 0}}
	}

	// go-chart refuses zero-delta value ranges (single bar, all-equal or
	// all-zero values), so the Y range is always set explicitly.
	maxValue := 0.0
	for _, v := range values {
		if v.Value > maxValue {
			maxValue = v.Value
		}
	}
	if maxValue == 0 {
		maxValue = 1
	}

	bar := chart.BarChart{
		Title:  title,
		Width:  panelWidth,
		Height: panelHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.1},
		},
		BarWidth: 40,
		Bars:     values,
	}

	var buf bytes.Buffer
	if err := bar.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}
