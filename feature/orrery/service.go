package orrery

import (
	"orrery/feature/orrery/models"

	"go.uber.org/zap"
)

// Service holds the figure and the page rendered from it.
// Both are built once and only read afterwards.
type Service struct {
	figure *models.Figure
	page   []byte
	logger *zap.Logger
}

// NewService renders the page for fig.
func NewService(fig *models.Figure, logger *zap.Logger) (*Service, error) {
	page, err := RenderPage(fig)
	if err != nil {
		return nil, err
	}

	logger.Debug("Rendered orrery page",
		zap.Int("traces", len(fig.Data)),
		zap.Int("bytes", len(page)),
	)

	return &Service{
		figure: fig,
		page:   page,
		logger: logger,
	}, nil
}

// Figure returns the figure the page was rendered from.
func (s *Service) Figure() *models.Figure {
	return s.figure
}

// Page returns the rendered HTML page. Callers must not modify it.
func (s *Service) Page() []byte {
	return s.page
}
