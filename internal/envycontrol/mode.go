package envycontrol

import "strconv"

// Mode is a GPU operating mode. The zero value means the current mode has
// not been determined yet.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeIntegrated
	ModeHybrid
	ModeNvidia
)

// Modes returns the selectable modes in display order. ModeUnknown is not
// selectable and is excluded.
func Modes() []Mode {
	return []Mode{ModeIntegrated, ModeHybrid, ModeNvidia}
}

// String returns the lowercase mode name, which is also the exact token
// the envycontrol CLI accepts for its -s flag.
func (m Mode) String() string {
	switch m {
	case ModeIntegrated:
		return "integrated"
	case ModeHybrid:
		return "hybrid"
	case ModeNvidia:
		return "nvidia"
	default:
		return "unknown"
	}
}

// Name returns the capitalized display form shown in the mode list.
func (m Mode) Name() string {
	switch m {
	case ModeIntegrated:
		return "Integrated"
	case ModeHybrid:
		return "Hybrid"
	case ModeNvidia:
		return "Nvidia"
	default:
		return "Unknown"
	}
}

// Description returns a one-line summary of what the mode does.
func (m Mode) Description() string {
	switch m {
	case ModeIntegrated:
		return "Use Intel/AMD iGPU exclusively. Nvidia GPU is turned off for power saving."
	case ModeHybrid:
		return "Enable PRIME render offloading. GPU can be dynamically turned off when not in use."
	case ModeNvidia:
		return "Use Nvidia dGPU exclusively. Higher performance, higher power consumption."
	default:
		return ""
	}
}

// Icon returns the nerd-font glyph shown next to the mode name.
func (m Mode) Icon() string {
	switch m {
	case ModeIntegrated:
		return "󰍹"
	case ModeHybrid:
		return "󰢮"
	case ModeNvidia:
		return "󰾲"
	default:
		return ""
	}
}

// Rtd3Level is the RTD3 power-management level passed to envycontrol for
// hybrid mode. The integer value is the code the CLI expects verbatim.
type Rtd3Level int

const (
	Rtd3Disabled Rtd3Level = iota
	Rtd3CoarseGrained
	Rtd3FineGrained
	Rtd3FineGrainedAmpere
)

// Rtd3Levels returns all levels in ascending code order.
func Rtd3Levels() []Rtd3Level {
	return []Rtd3Level{Rtd3Disabled, Rtd3CoarseGrained, Rtd3FineGrained, Rtd3FineGrainedAmpere}
}

// Label returns the display form shown in the options panel.
func (l Rtd3Level) Label() string {
	switch l {
	case Rtd3Disabled:
		return "0 - Disabled"
	case Rtd3CoarseGrained:
		return "1 - Coarse-grained"
	case Rtd3FineGrained:
		return "2 - Fine-grained"
	case Rtd3FineGrainedAmpere:
		return "3 - Fine-grained (Ampere+)"
	default:
		return strconv.Itoa(int(l))
	}
}

// Next returns the following level, wrapping back to Disabled after the
// last one.
func (l Rtd3Level) Next() Rtd3Level {
	levels := Rtd3Levels()
	for i, lv := range levels {
		if lv == l {
			return levels[(i+1)%len(levels)]
		}
	}
	return levels[0]
}

// SwitchRequest is the full input for one mode switch. The caller snapshots
// it before dispatch; the executing goroutine owns the copy.
type SwitchRequest struct {
	Mode            Mode
	Rtd3Enabled     bool
	Rtd3Level       Rtd3Level
	ForceComp       bool
	CoolbitsEnabled bool
	CoolbitsValue   int
}

// Args returns the envycontrol argument list for the request. RTD3 is only
// meaningful in hybrid mode and only when enabled; force composition and
// coolbits apply to nvidia mode only.
func (r SwitchRequest) Args() []string {
	args := []string{"-s", r.Mode.String()}
	if r.Mode == ModeHybrid && r.Rtd3Enabled {
		args = append(args, "--rtd3", strconv.Itoa(int(r.Rtd3Level)))
	}
	if r.Mode == ModeNvidia {
		if r.ForceComp {
			args = append(args, "--force-comp")
		}
		if r.CoolbitsEnabled {
			args = append(args, "--coolbits", strconv.Itoa(r.CoolbitsValue))
		}
	}
	return append(args, "--verbose")
}
