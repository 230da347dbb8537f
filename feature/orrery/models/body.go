package models

// CelestialBody is a planet in the catalog.
type CelestialBody struct {
	// Name is unique within the catalog and used as the legend label.
	Name string `json:"name"`
	// Distance is the orbital distance from the origin in AU.
	Distance float64 `json:"distance"`
	// Color is a hex colour string (#rrggbb).
	Color string `json:"color"`
	// Size is a unitless relative marker size.
	Size float64 `json:"size"`
}

// Star is the body fixed at the origin. It has no orbit.
type Star struct {
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Size  float64 `json:"size"`
}

// Catalog is the full set of bodies drawn in the scene.
// Planets are drawn, and listed in the legend, in slice order.
type Catalog struct {
	Sun     Star            `json:"sun"`
	Planets []CelestialBody `json:"planets"`
}
