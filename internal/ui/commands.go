package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// telemetryInterval is how often the GPU telemetry line refreshes.
const telemetryInterval = 5 * time.Second

func queryModeCmd(t Tool) tea.Cmd {
	return func() tea.Msg {
		mode, err := t.QueryMode()
		return modeQueriedMsg{mode: mode, err: err}
	}
}

func queryGPUCmd(t Tool) tea.Cmd {
	return func() tea.Msg {
		return gpuInfoMsg{info: t.QueryGPU()}
	}
}

func telemetryTickCmd() tea.Cmd {
	return tea.Tick(telemetryInterval, func(ts time.Time) tea.Msg {
		return telemetryTickMsg(ts)
	})
}
