// Package orrery builds and serves a static 3D view of the Sun and the eight planets.
//
// The scene is computed once from a compiled-in catalog: a marker for the Sun at the
// origin and, per planet, a circular orbit polyline in the z=0 plane followed by a
// marker at (distance, 0, 0). The resulting Plotly figure is rendered into an HTML
// page once at startup and the same bytes are served for every request.
//
// # Components
//
//   - Catalog: SolarSystem returns the body table; Validate checks it.
//   - Scene: BuildScene and OrbitPath produce the figure. Pure functions.
//   - Service: Owns the figure and the pre-rendered page.
//   - Handler: Serves the page.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET / : The page embedding the chart (container id "solar-system-orrery").
package orrery
