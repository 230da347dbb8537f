package models

// Vec3 is a point or direction in scene space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Figure is a Plotly figure: traces plus layout, serialised as-is for Plotly.newPlot.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a single scatter3d element (an orbit line or a body marker).
type Trace struct {
	Type   string    `json:"type"`
	Mode   string    `json:"mode"`
	Name   string    `json:"name"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
	Z      []float64 `json:"z"`
	Marker *Marker   `json:"marker,omitempty"`
	Line   *Line     `json:"line,omitempty"`
}

// Points zips the coordinate columns back into points.
func (t Trace) Points() []Vec3 {
	points := make([]Vec3, len(t.X))
	for i := range t.X {
		points[i] = Vec3{X: t.X[i], Y: t.Y[i], Z: t.Z[i]}
	}
	return points
}

// Marker styles a markers-mode trace.
type Marker struct {
	Size    float64 `json:"size"`
	Color   string  `json:"color"`
	Symbol  string  `json:"symbol"`
	Opacity float64 `json:"opacity"`
}

// Line styles a lines-mode trace.
type Line struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// Title is a Plotly title object.
type Title struct {
	Text string `json:"text"`
}

// Font sets the global text colour of the figure.
type Font struct {
	Color string `json:"color"`
}

// Margin is the outer margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	B int `json:"b"`
	T int `json:"t"`
}

// Axis configures one scene axis.
type Axis struct {
	Title          Title `json:"title"`
	ShowBackground bool  `json:"showbackground"`
	Visible        bool  `json:"visible"`
}

// Camera positions the initial viewpoint.
type Camera struct {
	Eye Vec3 `json:"eye"`
}

// Scene is the 3D scene layout.
type Scene struct {
	XAxis       Axis   `json:"xaxis"`
	YAxis       Axis   `json:"yaxis"`
	ZAxis       Axis   `json:"zaxis"`
	AspectMode  string `json:"aspectmode"`
	AspectRatio Vec3   `json:"aspectratio"`
	Camera      Camera `json:"camera"`
}

// Layout is the figure layout.
type Layout struct {
	Title        Title  `json:"title"`
	Scene        Scene  `json:"scene"`
	Margin       Margin `json:"margin"`
	Height       int    `json:"height"`
	Width        int    `json:"width"`
	PaperBgColor string `json:"paper_bgcolor"`
	PlotBgColor  string `json:"plot_bgcolor"`
	Font         Font   `json:"font"`
	ShowLegend   bool   `json:"showlegend"`
}
