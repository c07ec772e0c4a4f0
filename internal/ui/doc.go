// Package ui implements the interactive terminal interface with Bubble Tea.
//
// The interface is a single App model driven by the Elm-style
// update loop:
//   - Lifecycle: modal phase machine gating which inputs are accepted
//   - Panel: focus split between the mode list and the options list
//   - Tool: the external command surface, swappable for tests
//
// Switch and reset commands run on worker goroutines owned by the runner
// package; the spinner animation doubles as the poll loop that collects
// their outcomes.
package ui
