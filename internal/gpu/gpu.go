// Package gpu reads best-effort telemetry for the discrete GPU through
// nvidia-smi. Telemetry is cosmetic; every failure degrades to "no data"
// rather than an error.
package gpu

import (
	"fmt"
	"os/exec"
	"strings"
)

// Info is one nvidia-smi sample.
type Info struct {
	Name        string
	Temperature string
	MemoryUsed  string
	MemoryTotal string
}

// MemoryDisplay renders the used/total pair for the header line.
func (i Info) MemoryDisplay() string {
	return fmt.Sprintf("%s / %s MiB", i.MemoryUsed, i.MemoryTotal)
}

// runSMI executes the nvidia-smi query. Replaced in tests.
var runSMI = func() (string, error) {
	out, err := exec.Command("nvidia-smi",
		"--query-gpu=name,temperature.gpu,memory.used,memory.total",
		"--format=csv,noheader,nounits",
	).Output()
	return string(out), err
}

// Query samples the GPU. It returns nil on any failure or when the output
// carries fewer than four comma-separated fields.
func Query() *Info {
	out, err := runSMI()
	if err != nil {
		return nil
	}
	return parse(out)
}

func parse(out string) *Info {
	parts := strings.Split(strings.TrimSpace(out), ",")
	if len(parts) < 4 {
		return nil
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return &Info{
		Name:        parts[0],
		Temperature: parts[1] + "°C",
		MemoryUsed:  parts[2],
		MemoryTotal: parts[3],
	}
}
