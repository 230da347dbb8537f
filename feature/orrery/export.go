package orrery

import (
	"encoding/json"
	"fmt"

	"orrery/feature/orrery/models"
)

// EncodeFigure serialises fig as indented JSON, the same document the page hands to
// Plotly.newPlot.
func EncodeFigure(fig *models.Figure) ([]byte, error) {
	data, err := json.MarshalIndent(fig, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode figure: %w", err)
	}
	return append(data, '\n'), nil
}
