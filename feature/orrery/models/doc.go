// Package models defines the catalog types and the Plotly figure they are turned into.
//
// Figure and its children mirror Plotly.js's JSON schema for scatter3d traces, so a
// Figure marshals straight into the arguments of Plotly.newPlot.
package models
