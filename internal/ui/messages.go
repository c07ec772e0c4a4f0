package ui

import (
	"time"

	"github.com/tassiovirginio/envy-tui/internal/envycontrol"
	"github.com/tassiovirginio/envy-tui/internal/gpu"
)

// modeQueriedMsg carries the result of an envycontrol --query probe.
type modeQueriedMsg struct {
	mode envycontrol.Mode
	err  error
}

// gpuInfoMsg carries one nvidia-smi telemetry sample. info is nil when the
// tool is missing or its output was unusable.
type gpuInfoMsg struct {
	info *gpu.Info
}

// telemetryTickMsg fires when the telemetry refresh timer elapses.
type telemetryTickMsg time.Time
