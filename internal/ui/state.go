package ui

import (
	"fmt"

	"github.com/tassiovirginio/envy-tui/internal/envycontrol"
)

// Lifecycle is the modal phase of the application. It gates which inputs
// the dispatcher accepts: see handleKey in update.go.
type Lifecycle int

const (
	LifecycleNormal Lifecycle = iota
	LifecycleConfirmingSwitch
	LifecycleLoading
	LifecycleConfirmingReboot
	LifecycleSuccess
	LifecycleError
)

func (l Lifecycle) String() string {
	switch l {
	case LifecycleNormal:
		return "Normal"
	case LifecycleConfirmingSwitch:
		return "ConfirmingSwitch"
	case LifecycleLoading:
		return "Loading"
	case LifecycleConfirmingReboot:
		return "ConfirmingReboot"
	case LifecycleSuccess:
		return "Success"
	case LifecycleError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Panel identifies which pane receives directional input. Exactly one is
// active at a time.
type Panel int

const (
	PanelModes Panel = iota
	PanelOptions
)

func (p Panel) String() string {
	switch p {
	case PanelModes:
		return "Graphics Mode"
	case PanelOptions:
		return "Options"
	default:
		return "Unknown"
	}
}

// selectedMode returns the mode under the cursor.
func (a *App) selectedMode() envycontrol.Mode {
	return envycontrol.Modes()[a.modeIndex]
}

// nextMode moves the mode cursor down, wrapping at the end. The option
// cursor is clamped because the new mode may expose a shorter option list.
func (a *App) nextMode() {
	a.modeIndex = (a.modeIndex + 1) % len(envycontrol.Modes())
	a.clampOptionIndex()
}

// prevMode moves the mode cursor up, wrapping at the start.
func (a *App) prevMode() {
	n := len(envycontrol.Modes())
	a.modeIndex = (a.modeIndex - 1 + n) % n
	a.clampOptionIndex()
}

// nextOption moves the option cursor down, wrapping over the selected
// mode's descriptor list.
func (a *App) nextOption() {
	if n := len(a.options()); n > 0 {
		a.optionIndex = (a.optionIndex + 1) % n
	}
}

// prevOption moves the option cursor up, wrapping at the start.
func (a *App) prevOption() {
	if n := len(a.options()); n > 0 {
		a.optionIndex = (a.optionIndex - 1 + n) % n
	}
}

// clampOptionIndex keeps the option cursor inside the current descriptor
// list. Every mode exposes at least one row, so n-1 is always valid.
func (a *App) clampOptionIndex() {
	if n := len(a.options()); a.optionIndex >= n {
		a.optionIndex = n - 1
	}
}

// togglePanel moves focus between the mode list and the options list.
func (a *App) togglePanel() {
	if a.panel == PanelModes {
		a.panel = PanelOptions
	} else {
		a.panel = PanelModes
	}
}

// beginConfirmSwitch records the mode under the cursor as pending and asks
// the user to confirm. The pending mode is held until the switch outcome
// arrives or the user cancels.
func (a *App) beginConfirmSwitch() {
	a.pending = a.selectedMode()
	a.lifecycle = LifecycleConfirmingSwitch
	a.message = fmt.Sprintf("Switch to %s mode?", a.pending)
}

// cancelConfirm drops the pending switch and returns to the normal phase.
func (a *App) cancelConfirm() {
	a.pending = envycontrol.ModeUnknown
	a.clearNotice()
}

// clearNotice returns to the normal phase with no status message.
func (a *App) clearNotice() {
	a.lifecycle = LifecycleNormal
	a.message = ""
}

func (a *App) setError(msg string) {
	a.lifecycle = LifecycleError
	a.message = msg
}

func (a *App) setSuccess(msg string) {
	a.lifecycle = LifecycleSuccess
	a.message = msg
}

// switchRequest snapshots the option fields for the pending mode. The
// returned value is handed to the worker goroutine, which owns the copy.
func (a *App) switchRequest() envycontrol.SwitchRequest {
	return envycontrol.SwitchRequest{
		Mode:            a.pending,
		Rtd3Enabled:     a.rtd3Enabled,
		Rtd3Level:       a.rtd3Level,
		ForceComp:       a.forceComp,
		CoolbitsEnabled: a.coolbitsEnabled,
		CoolbitsValue:   a.coolbitsValue,
	}
}

// applySwitchResult folds the switch outcome into the lifecycle. The
// pending mode is consumed either way: committed on success, dropped on
// failure.
func (a *App) applySwitchResult(err error) {
	target := a.pending
	a.pending = envycontrol.ModeUnknown
	if err != nil {
		a.setError(err.Error())
		return
	}
	a.current = target
	a.lifecycle = LifecycleConfirmingReboot
	a.message = fmt.Sprintf("Switched to %s mode successfully! Reboot now?", target)
}

// applyResetResult folds the reset outcome into the lifecycle. A
// successful reset leaves the hardware mode unknown until the next query.
func (a *App) applyResetResult(msg string, err error) {
	if err != nil {
		a.setError(err.Error())
		return
	}
	a.current = envycontrol.ModeUnknown
	a.setSuccess(msg)
}
