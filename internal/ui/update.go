package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tassiovirginio/envy-tui/internal/logging"
	"github.com/tassiovirginio/envy-tui/internal/runner"
)

func (m appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	a := m.app
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return m, nil
	case modeQueriedMsg:
		if msg.err != nil {
			a.setError(msg.err.Error())
			return m, nil
		}
		a.current = msg.mode
		return m, nil
	case gpuInfoMsg:
		a.gpu = msg.info
		return m, nil
	case telemetryTickMsg:
		return m, tea.Batch(queryGPUCmd(a.tool), telemetryTickCmd())
	case spinner.TickMsg:
		return m, a.handleSpinnerTick(msg)
	case tea.KeyMsg:
		return m, a.handleKey(msg)
	}
	return m, nil
}

// handleSpinnerTick drives the loading phase. Each animation frame doubles
// as a poll of the in-flight worker; the tick chain stops as soon as the
// outcome lands.
func (a *App) handleSpinnerTick(msg spinner.TickMsg) tea.Cmd {
	if a.lifecycle != LifecycleLoading || a.inflight == nil {
		return nil
	}
	if res, done := a.inflight.Poll(); done {
		a.finishOperation(res)
		return nil
	}
	var cmd tea.Cmd
	a.spinner, cmd = a.spinner.Update(msg)
	return cmd
}

// finishOperation folds a worker outcome into the state machine and clears
// the in-flight bookkeeping.
func (a *App) finishOperation(res runner.Result[string]) {
	op := a.op
	a.op = opNone
	a.inflight = nil
	switch op {
	case opSwitch:
		a.applySwitchResult(res.Err)
	case opReset:
		a.applyResetResult(res.Value, res.Err)
	}
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch a.lifecycle {
	case LifecycleConfirmingSwitch:
		switch msg.String() {
		case "y", "enter":
			return a.dispatchSwitch()
		case "n", "esc":
			a.cancelConfirm()
		}
		return nil

	case LifecycleConfirmingReboot:
		switch msg.String() {
		case "y", "enter":
			// systemctl takes over from here; only the request itself
			// can fail visibly.
			if err := a.tool.Reboot(); err != nil {
				a.setError(err.Error())
			}
		case "n", "esc":
			a.setSuccess("Changes applied. Reboot later for the new mode to take effect.")
		}
		return nil

	case LifecycleLoading:
		// Input is locked until the worker reports back.
		return nil

	case LifecycleSuccess, LifecycleError:
		a.clearNotice()
		return nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return tea.Quit
	case key.Matches(msg, a.keys.Panel):
		a.togglePanel()
	case key.Matches(msg, a.keys.Up):
		if a.panel == PanelModes {
			a.prevMode()
		} else {
			a.prevOption()
		}
	case key.Matches(msg, a.keys.Down):
		if a.panel == PanelModes {
			a.nextMode()
		} else {
			a.nextOption()
		}
	case key.Matches(msg, a.keys.Toggle):
		if a.panel == PanelOptions {
			a.toggleOption()
		}
	case key.Matches(msg, a.keys.Apply):
		a.beginConfirmSwitch()
	case key.Matches(msg, a.keys.Reset):
		return a.dispatchReset()
	}
	return nil
}

// dispatchSwitch hands the confirmed switch to a worker goroutine and
// enters the loading phase. The returned spinner tick starts the poll loop.
func (a *App) dispatchSwitch() tea.Cmd {
	req := a.switchRequest()
	logging.Logger.Info("dispatching mode switch", "mode", req.Mode.String())
	a.inflight = runner.Spawn(func() (string, error) {
		return a.tool.Switch(req)
	})
	a.op = opSwitch
	a.lifecycle = LifecycleLoading
	a.message = fmt.Sprintf("Switching to %s mode...", req.Mode)
	return a.spinner.Tick
}

func (a *App) dispatchReset() tea.Cmd {
	logging.Logger.Info("dispatching configuration reset")
	a.inflight = runner.Spawn(func() (string, error) {
		return a.tool.Reset()
	})
	a.op = opReset
	a.lifecycle = LifecycleLoading
	a.message = "Resetting graphics configuration..."
	return a.spinner.Tick
}
