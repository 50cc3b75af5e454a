// Package ui draws the control panel and change overlay for the ebiten
// build. Every other file in the package requires the ebiten build tag.
package ui
