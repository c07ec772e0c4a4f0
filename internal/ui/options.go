package ui

import (
	"fmt"

	"github.com/tassiovirginio/envy-tui/internal/envycontrol"
)

// Option is one row in the options panel. Non-toggleable rows are either
// informational (integrated mode) or temporarily locked by another toggle.
type Option struct {
	Label       string
	Description string
	Toggleable  bool
	On          bool
}

// options returns the descriptor list for the mode under the cursor. The
// list is rebuilt on every call so labels pick up the current field values.
func (a *App) options() []Option {
	switch a.selectedMode() {
	case envycontrol.ModeHybrid:
		return []Option{
			{
				Label:       "RTD3 Power Management",
				Description: "Enables Runtime D3 (RTD3) power management for the dGPU. Allows GPU to enter low-power state when idle.",
				Toggleable:  true,
				On:          a.rtd3Enabled,
			},
			{
				Label:       fmt.Sprintf("RTD3 Level: %s", a.rtd3Level.Label()),
				Description: "Controls RTD3 aggressiveness. Higher levels save more power but may cause latency on GPU wake.",
				Toggleable:  a.rtd3Enabled,
				On:          false,
			},
		}
	case envycontrol.ModeNvidia:
		return []Option{
			{
				Label:       "Force Composition Pipeline",
				Description: "Forces full composition pipeline. Fixes screen tearing but may reduce performance slightly.",
				Toggleable:  true,
				On:          a.forceComp,
			},
			{
				Label:       fmt.Sprintf("Coolbits (value: %d)", a.coolbitsValue),
				Description: "Enables advanced GPU features like overclocking, fan control, and voltage adjustment.",
				Toggleable:  true,
				On:          a.coolbitsEnabled,
			},
		}
	default:
		return []Option{
			{
				Label:       "No additional options available",
				Description: "Integrated mode uses only the iGPU. The dGPU is powered off to save battery.",
			},
		}
	}
}

// toggleOption mutates the option field behind the row under the cursor.
// The RTD3 level row always advances the stored level; the level only
// reaches the command line while RTD3 is enabled.
func (a *App) toggleOption() {
	switch a.selectedMode() {
	case envycontrol.ModeHybrid:
		switch a.optionIndex {
		case 0:
			a.rtd3Enabled = !a.rtd3Enabled
		case 1:
			a.rtd3Level = a.rtd3Level.Next()
		}
	case envycontrol.ModeNvidia:
		switch a.optionIndex {
		case 0:
			a.forceComp = !a.forceComp
		case 1:
			a.coolbitsEnabled = !a.coolbitsEnabled
		}
	}
}
