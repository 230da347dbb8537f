package orrery

import (
	"math"

	"orrery/feature/orrery/models"
)

const (
	// Title is shown above the chart and set as the figure title.
	Title = "Realistic 3D Solar System Orrery"
	// ChartID is the id of the element the chart is drawn into.
	ChartID = "solar-system-orrery"

	// OrbitSamples is the number of points in every orbit polyline.
	OrbitSamples = 360
	// MarkerScale converts a body's relative size to a marker size.
	MarkerScale = 10.0

	orbitColor = "white"
	orbitWidth = 1.5

	traceType = "scatter3d"
)

// BuildScene turns the catalog into a figure: the Sun's marker first, then an orbit
// and a marker for every planet in catalog order.
func BuildScene(cat models.Catalog) *models.Figure {
	data := make([]models.Trace, 0, 1+2*len(cat.Planets))
	data = append(data, sunMarker(cat.Sun))
	for _, p := range cat.Planets {
		data = append(data, orbitTrace(p), planetMarker(p))
	}

	return &models.Figure{
		Data:   data,
		Layout: sceneLayout(),
	}
}

// OrbitPath samples a circle of radius distance in the z=0 plane.
// The polyline is open: theta runs over [0, 2pi) so no point is repeated.
func OrbitPath(distance float64, samples int) []models.Vec3 {
	points := make([]models.Vec3, samples)
	step := 2 * math.Pi / float64(samples)
	for i := range points {
		theta := float64(i) * step
		points[i] = models.Vec3{
			X: distance * math.Cos(theta),
			Y: distance * math.Sin(theta),
		}
	}
	return points
}

func sunMarker(sun models.Star) models.Trace {
	return markerTrace(sun.Name, models.Vec3{}, sun.Size, sun.Color)
}

func planetMarker(p models.CelestialBody) models.Trace {
	return markerTrace(p.Name, models.Vec3{X: p.Distance}, p.Size, p.Color)
}

func markerTrace(name string, at models.Vec3, size float64, color string) models.Trace {
	t := columns([]models.Vec3{at})
	t.Type = traceType
	t.Mode = "markers"
	t.Name = name
	t.Marker = &models.Marker{
		Size:    MarkerScale * size,
		Color:   color,
		Symbol:  "circle",
		Opacity: 1,
	}
	return t
}

func orbitTrace(p models.CelestialBody) models.Trace {
	t := columns(OrbitPath(p.Distance, OrbitSamples))
	t.Type = traceType
	t.Mode = "lines"
	t.Name = p.Name + " Orbit"
	t.Line = &models.Line{Color: orbitColor, Width: orbitWidth}
	return t
}

func columns(points []models.Vec3) models.Trace {
	t := models.Trace{
		X: make([]float64, len(points)),
		Y: make([]float64, len(points)),
		Z: make([]float64, len(points)),
	}
	for i, p := range points {
		t.X[i], t.Y[i], t.Z[i] = p.X, p.Y, p.Z
	}
	return t
}

// plotly_dark background and font colours. Plotly.js has no named templates,
// so the theme is spelled out on the layout.
const (
	darkBackground = "rgb(17,17,17)"
	darkFont       = "#f2f5fa"
)

func sceneLayout() models.Layout {
	hidden := func(title string) models.Axis {
		return models.Axis{Title: models.Title{Text: title}}
	}

	return models.Layout{
		Title: models.Title{Text: Title},
		Scene: models.Scene{
			XAxis:       hidden("X (AU)"),
			YAxis:       hidden("Y (AU)"),
			ZAxis:       hidden("Z (AU)"),
			AspectMode:  "manual",
			AspectRatio: models.Vec3{X: 1, Y: 1, Z: 1},
			Camera:      models.Camera{Eye: models.Vec3{X: 2, Y: 2, Z: 0.1}},
		},
		Margin:       models.Margin{},
		Height:       800,
		Width:        1200,
		PaperBgColor: darkBackground,
		PlotBgColor:  darkBackground,
		Font:         models.Font{Color: darkFont},
		ShowLegend:   true,
	}
}
