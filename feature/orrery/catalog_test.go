package orrery_test

import (
	"testing"

	"orrery/feature/orrery"
	"orrery/feature/orrery/models"

	"github.com/stretchr/testify/assert"
)

func TestSolarSystem(t *testing.T) {
	cat := orrery.SolarSystem()

	assert.NoError(t, orrery.Validate(cat))
	assert.Len(t, cat.Planets, 8)

	names := make([]string, len(cat.Planets))
	for i, p := range cat.Planets {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune"}, names)
}

func TestSolarSystem_ReturnsCopy(t *testing.T) {
	a := orrery.SolarSystem()
	a.Planets[0].Distance = 99

	b := orrery.SolarSystem()
	assert.Equal(t, 0.39, b.Planets[0].Distance)
}

func TestValidate(t *testing.T) {
	sun := models.Star{Name: "Sun", Color: "#ffff00", Size: 10}

	tests := []struct {
		name    string
		catalog models.Catalog
		wantErr string
	}{
		{
			name:    "DuplicateName",
			catalog: models.Catalog{Sun: sun, Planets: []models.CelestialBody{{Name: "A", Distance: 1, Color: "#000000", Size: 1}, {Name: "A", Distance: 2, Color: "#000000", Size: 1}}},
			wantErr: "A: duplicate name",
		},
		{
			name:    "PlanetNamedLikeSun",
			catalog: models.Catalog{Sun: sun, Planets: []models.CelestialBody{{Name: "Sun", Distance: 1, Color: "#000000", Size: 1}}},
			wantErr: "Sun: duplicate name",
		},
		{
			name:    "ZeroDistance",
			catalog: models.Catalog{Sun: sun, Planets: []models.CelestialBody{{Name: "A", Distance: 0, Color: "#000000", Size: 1}}},
			wantErr: "A: distance must be positive",
		},
		{
			name:    "NegativeSize",
			catalog: models.Catalog{Sun: sun, Planets: []models.CelestialBody{{Name: "A", Distance: 1, Color: "#000000", Size: -1}}},
			wantErr: "A: size must be positive",
		},
		{
			name:    "BadColor",
			catalog: models.Catalog{Sun: sun, Planets: []models.CelestialBody{{Name: "A", Distance: 1, Color: "blue", Size: 1}}},
			wantErr: `A: invalid color "blue"`,
		},
		{
			name:    "EmptyName",
			catalog: models.Catalog{Sun: sun, Planets: []models.CelestialBody{{Distance: 1, Color: "#000000", Size: 1}}},
			wantErr: "planet 0: empty name",
		},
		{
			name:    "BadSun",
			catalog: models.Catalog{Sun: models.Star{Name: "Sun", Color: "#ffff00", Size: 0}},
			wantErr: "Sun: size must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := orrery.Validate(tt.catalog)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
