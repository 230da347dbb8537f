package orrery

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"orrery/feature/orrery/models"
)

// PlotlyURL is the Plotly.js bundle the page loads.
const PlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

//go:embed templates/index.html
var content embed.FS

var pageTemplate = template.Must(template.New("index.html").ParseFS(content, "templates/index.html"))

type pageData struct {
	Title     string
	ChartID   string
	PlotlyURL string
	Figure    *models.Figure
}

// RenderPage renders the HTML page embedding fig.
func RenderPage(fig *models.Figure) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, pageData{
		Title:     Title,
		ChartID:   ChartID,
		PlotlyURL: PlotlyURL,
		Figure:    fig,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	return buf.Bytes(), nil
}
