// Package viz renders learned node embeddings for eyeballing: after
// training, nodes of the same class should cluster together.
package viz

import (
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart"
	"gonum.org/v1/gonum/mat"
)

// Scatter writes a PNG scatter plot of 2-D embeddings to path, one
// chart series (and color) per distinct label
func Scatter(path string, z *mat.Dense, labels []int32) error {
	n, d := z.Dims()
	if d != 2 {
		return errors.Errorf("scatter plot needs 2-D embeddings, got %d dims", d)
	}
	if labels == nil {
		labels = make([]int32, n)
	}
	if len(labels) != n {
		return errors.Errorf("got %d labels for %d embeddings", len(labels), n)
	}

	xs := make(map[int32][]float64)
	ys := make(map[int32][]float64)
	for i := 0; i < n; i++ {
		cls := labels[i]
		xs[cls] = append(xs[cls], z.At(i, 0))
		ys[cls] = append(ys[cls], z.At(i, 1))
	}

	var classes []int32
	for cls := range xs {
		classes = append(classes, cls)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })

	var series []chart.Series
	for i, cls := range classes {
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("class %d (n=%d)", cls, len(xs[cls])),
			XValues: xs[cls],
			YValues: ys[cls],
			Style: chart.Style{
				Show:        true,
				StrokeWidth: chart.Disabled,
				DotWidth:    5,
				DotColor:    chart.GetAlternateColor(i),
			},
		})
	}

	graph := chart.Chart{
		Title:      "Node Embeddings",
		TitleStyle: chart.StyleShow(),
		XAxis: chart.XAxis{
			Style: chart.StyleShow(),
		},
		YAxis: chart.YAxis{
			Style: chart.StyleShow(),
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		return errors.Wrapf(err, "rendering scatter")
	}
	return f.Close()
}
