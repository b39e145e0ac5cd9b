package visualize

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/nmrkit/ssc/result"
)

// Plot geometry in pixels.
const (
	plotWidth  = 900
	plotHeight = 620
	margin     = 70
)

// pointView is one plotted peak.
type pointView struct {
	CX, CY  float64
	Tooltip string
}

// ellipseView is the 4σ spread ellipse of a multi-peak cluster.
type ellipseView struct {
	CX, CY, RX, RY float64
}

// clusterView is one cluster's renderable geometry.
type clusterView struct {
	Label   int
	Color   string
	Points  []pointView
	LabelX  float64
	LabelY  float64
	Ellipse *ellipseView
}

// plotView is the template's root model.
type plotView struct {
	Title          string
	Width, Height  int
	Margin         int
	XAxis, YAxis   string
	XMin, XMax     string
	YMin, YMax     string
	Clusters       []clusterView
	AxisBottom     float64
	AxisLeft       float64
	AxisRight      float64
	AxisTop        float64
	TitleX, TitleY float64
}

// Render writes the HTML plot for g to w.
func Render(w io.Writer, g result.Grouping, opts Options) error {
	view, err := buildView(g, opts)
	if err != nil {
		return err
	}
	return plotTemplate.Execute(w, view)
}

// RenderFile writes the HTML plot for g to path.
func RenderFile(path string, g result.Grouping, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("visualize: create %s: %w", path, err)
	}
	defer f.Close()
	return Render(f, g, opts)
}

// buildView validates the axis selection and maps every cluster into
// pixel space.
func buildView(g result.Grouping, opts Options) (*plotView, error) {
	if len(g) == 0 {
		return nil, ErrEmptyGrouping
	}
	if opts.XIndex < 0 || opts.YIndex < 0 {
		return nil, fmt.Errorf("%w: negative dimension index", ErrBadAxis)
	}
	for _, c := range g {
		for _, p := range c.Peaks {
			if opts.XIndex >= len(p.Dimensions) || opts.YIndex >= len(p.Dimensions) {
				return nil, fmt.Errorf("%w: dimension index %d/%d against peak of width %d",
					ErrBadAxis, opts.XIndex, opts.YIndex, len(p.Dimensions))
			}
		}
		if _, ok := c.Stds[opts.XLabel]; !ok {
			return nil, fmt.Errorf("%w: %q is not a root dimension of the result", ErrBadAxis, opts.XLabel)
		}
		if _, ok := c.Stds[opts.YLabel]; !ok {
			return nil, fmt.Errorf("%w: %q is not a root dimension of the result", ErrBadAxis, opts.YLabel)
		}
	}

	xmin, xmax, ymin, ymax := dataBounds(g, opts)
	sx := scaler(xmin, xmax, margin, plotWidth-margin)
	sy := scaler(ymax, ymin, margin, plotHeight-margin) // y grows downward in SVG

	view := &plotView{
		Title:      opts.Title,
		Width:      plotWidth,
		Height:     plotHeight,
		Margin:     margin,
		XAxis:      opts.XLabel + ", ppm",
		YAxis:      opts.YLabel + ", ppm",
		XMin:       fmt.Sprintf("%.2f", xmin),
		XMax:       fmt.Sprintf("%.2f", xmax),
		YMin:       fmt.Sprintf("%.2f", ymin),
		YMax:       fmt.Sprintf("%.2f", ymax),
		AxisBottom: plotHeight - margin,
		AxisLeft:   margin,
		AxisRight:  plotWidth - margin,
		AxisTop:    margin,
		TitleX:     plotWidth / 2,
		TitleY:     margin / 2,
	}

	for i, c := range g {
		cv := clusterView{Label: c.Label, Color: palette[i%len(palette)]}

		var sumX, sumY float64
		for _, p := range c.Peaks {
			x, y := p.Dimensions[opts.XIndex], p.Dimensions[opts.YIndex]
			sumX += x
			sumY += y
			cv.Points = append(cv.Points, pointView{
				CX:      sx(x),
				CY:      sy(y),
				Tooltip: fmt.Sprintf("%.3f, %.3f  %s", x, y, strings.Join(p.Assignment, "-")),
			})
		}
		cx := sumX / float64(len(c.Peaks))
		cy := sumY / float64(len(c.Peaks))
		cv.LabelX = sx(cx)
		cv.LabelY = sy(cy)

		if len(c.Peaks) > 1 {
			// 4σ total width per axis, i.e. ±2σ around the centroid.
			cv.Ellipse = &ellipseView{
				CX: sx(cx),
				CY: sy(cy),
				RX: (sx(cx+2*c.Stds[opts.XLabel]) - sx(cx)),
				RY: (sy(cy) - sy(cy+2*c.Stds[opts.YLabel])),
			}
		}

		view.Clusters = append(view.Clusters, cv)
	}
	return view, nil
}

// dataBounds returns padded min/max over the plotted coordinates,
// widened to include ellipse extents.
func dataBounds(g result.Grouping, opts Options) (xmin, xmax, ymin, ymax float64) {
	first := g[0].Peaks[0]
	xmin, xmax = first.Dimensions[opts.XIndex], first.Dimensions[opts.XIndex]
	ymin, ymax = first.Dimensions[opts.YIndex], first.Dimensions[opts.YIndex]

	for _, c := range g {
		rx := 2 * c.Stds[opts.XLabel]
		ry := 2 * c.Stds[opts.YLabel]
		for _, p := range c.Peaks {
			x, y := p.Dimensions[opts.XIndex], p.Dimensions[opts.YIndex]
			xmin = min(xmin, x-rx)
			xmax = max(xmax, x+rx)
			ymin = min(ymin, y-ry)
			ymax = max(ymax, y+ry)
		}
	}

	// 5% padding; degenerate spans get a fixed half-unit.
	padX := (xmax - xmin) * 0.05
	padY := (ymax - ymin) * 0.05
	if padX == 0 {
		padX = 0.5
	}
	if padY == 0 {
		padY = 0.5
	}
	return xmin - padX, xmax + padX, ymin - padY, ymax + padY
}

// scaler maps [d0,d1] in data space onto [p0,p1] in pixel space.
func scaler(d0, d1, p0, p1 float64) func(float64) float64 {
	span := d1 - d0
	if span == 0 {
		span = 1
	}
	return func(v float64) float64 {
		return p0 + (v-d0)/span*(p1-p0)
	}
}

// plotTemplate renders the full HTML document around the SVG scatter.
var plotTemplate = template.Must(template.New("plot").Parse(plotHTML))

const plotHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 1em; }
svg { border: 1px solid #ddd; background: #fff; }
circle:hover { stroke: #111; stroke-width: 2; }
</style>
</head>
<body>
<svg width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
  <text x="{{.TitleX}}" y="{{.TitleY}}" text-anchor="middle" font-size="18">{{.Title}}</text>
  <line x1="{{.AxisLeft}}" y1="{{.AxisBottom}}" x2="{{.AxisRight}}" y2="{{.AxisBottom}}" stroke="#333"/>
  <line x1="{{.AxisLeft}}" y1="{{.AxisTop}}" x2="{{.AxisLeft}}" y2="{{.AxisBottom}}" stroke="#333"/>
  <text x="{{.AxisLeft}}" y="{{.AxisBottom}}" dy="16" text-anchor="middle" font-size="11">{{.XMin}}</text>
  <text x="{{.AxisRight}}" y="{{.AxisBottom}}" dy="16" text-anchor="middle" font-size="11">{{.XMax}}</text>
  <text x="{{.AxisLeft}}" y="{{.AxisBottom}}" dx="-8" text-anchor="end" font-size="11">{{.YMin}}</text>
  <text x="{{.AxisLeft}}" y="{{.AxisTop}}" dx="-8" text-anchor="end" font-size="11">{{.YMax}}</text>
  <text x="{{.TitleX}}" y="{{.AxisBottom}}" dy="40" text-anchor="middle" font-size="14">{{.XAxis}}</text>
  <text x="20" y="{{.Height}}" text-anchor="start" font-size="14" transform="rotate(-90 20 {{.Height}})" dy="-{{.Margin}}">{{.YAxis}}</text>
{{- range $c := .Clusters}}
  <g>
  {{- if $c.Ellipse}}
    <ellipse cx="{{$c.Ellipse.CX}}" cy="{{$c.Ellipse.CY}}" rx="{{$c.Ellipse.RX}}" ry="{{$c.Ellipse.RY}}" fill="none" stroke="{{$c.Color}}" stroke-dasharray="4 3"/>
  {{- end}}
  {{- range $c.Points}}
    <circle cx="{{.CX}}" cy="{{.CY}}" r="5" fill="{{$c.Color}}" fill-opacity="0.5"><title>{{.Tooltip}}</title></circle>
  {{- end}}
    <text x="{{$c.LabelX}}" y="{{$c.LabelY}}" text-anchor="middle" font-size="11">{{$c.Label}}</text>
  </g>
{{- end}}
</svg>
</body>
</html>
`
