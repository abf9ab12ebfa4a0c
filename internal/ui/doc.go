// Package ui draws the grid-line overlay, status text and parameter HUD for
// the ebiten front end. Everything except this file requires the ebiten build
// tag.
package ui
