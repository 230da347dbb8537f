package orrery

import (
	"errors"
	"fmt"

	"orrery/feature/orrery/models"

	"github.com/lucasb-eyer/go-colorful"
)

// SolarSystem returns the compiled-in catalog. Every call returns a fresh copy.
func SolarSystem() models.Catalog {
	return models.Catalog{
		Sun: models.Star{Name: "Sun", Color: "#ffff00", Size: 10},
		Planets: []models.CelestialBody{
			{Name: "Mercury", Distance: 0.39, Color: "#b1b1b1", Size: 0.383},
			{Name: "Venus", Distance: 0.72, Color: "#e3db77", Size: 0.949},
			{Name: "Earth", Distance: 1.0, Color: "#1f77b4", Size: 1.0},
			{Name: "Mars", Distance: 1.52, Color: "#d62728", Size: 0.532},
			{Name: "Jupiter", Distance: 5.2, Color: "#ff7f0e", Size: 11.21},
			{Name: "Saturn", Distance: 9.58, Color: "#e2c5a2", Size: 9.45},
			{Name: "Uranus", Distance: 19.2, Color: "#7f7fff", Size: 4.0},
			{Name: "Neptune", Distance: 30.05, Color: "#1f77b4", Size: 3.88},
		},
	}
}

// Validate checks the catalog before a scene is built from it.
// All problems are reported together.
func Validate(cat models.Catalog) error {
	var errs []error

	if cat.Sun.Name == "" {
		errs = append(errs, errors.New("sun: empty name"))
	}
	if cat.Sun.Size <= 0 {
		errs = append(errs, fmt.Errorf("%s: size must be positive, got %v", cat.Sun.Name, cat.Sun.Size))
	}
	if _, err := colorful.Hex(cat.Sun.Color); err != nil {
		errs = append(errs, fmt.Errorf("%s: invalid color %q: %w", cat.Sun.Name, cat.Sun.Color, err))
	}

	seen := map[string]struct{}{cat.Sun.Name: {}}
	for i, p := range cat.Planets {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("planet %d: empty name", i))
			continue
		}
		if _, dup := seen[p.Name]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate name", p.Name))
		}
		seen[p.Name] = struct{}{}

		if p.Distance <= 0 {
			errs = append(errs, fmt.Errorf("%s: distance must be positive, got %v", p.Name, p.Distance))
		}
		if p.Size <= 0 {
			errs = append(errs, fmt.Errorf("%s: size must be positive, got %v", p.Name, p.Size))
		}
		if _, err := colorful.Hex(p.Color); err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid color %q: %w", p.Name, p.Color, err))
		}
	}

	return errors.Join(errs...)
}
