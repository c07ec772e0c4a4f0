// Package envycontrol wraps the envycontrol command-line tool, which applies
// GPU operating modes on switchable-graphics laptops. State-changing
// invocations run under pkexec with envycontrol's own confirmation prompt
// auto-answered through a yes pipe. Every failure comes back as an error
// value; nothing in this package may take down the UI loop.
package envycontrol

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/tassiovirginio/envy-tui/internal/logging"
)

// ErrNotInstalled reports that the envycontrol executable is missing from
// the system.
var ErrNotInstalled = errors.New("envycontrol is not installed")

// runQuery executes `envycontrol --query`.
// Replaced in tests for deterministic output.
var runQuery = func() (stdout, stderr string, err error) {
	return capture(exec.Command("envycontrol", "--query"))
}

// runPrivileged executes envycontrol with the given arguments under pkexec,
// piping yes into it so the tool's interactive prompt is auto-confirmed.
// Replaced in tests.
var runPrivileged = func(args ...string) (stdout, stderr string, err error) {
	shellCmd := "yes | envycontrol " + strings.Join(args, " ")
	return capture(exec.Command("pkexec", "sh", "-c", shellCmd))
}

// lookPath probes PATH for an executable. Replaced in tests.
var lookPath = exec.LookPath

// startReboot spawns the system reboot command without waiting on it.
// Replaced in tests.
var startReboot = func() error {
	return exec.Command("systemctl", "reboot").Start()
}

// capture runs cmd with stdout and stderr collected separately.
func capture(cmd *exec.Cmd) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// QueryMode asks envycontrol for the current graphics mode. It returns
// ErrNotInstalled (wrapped) when the executable is missing. A query that
// runs but fails or prints something unrecognized yields ModeUnknown with
// no error: the mode is simply not known.
func QueryMode() (Mode, error) {
	stdout, stderr, err := runQuery()
	if err != nil {
		if notInstalled(err, stderr) {
			return ModeUnknown, fmt.Errorf("query current mode: %w", ErrNotInstalled)
		}
		logging.Logger.Debug("envycontrol query failed", "err", err, "stderr", strings.TrimSpace(stderr))
		return ModeUnknown, nil
	}
	return ParseMode(stdout), nil
}

// ParseMode scans query output for a known mode name, case-insensitively.
// First match wins, in Modes() order.
func ParseMode(out string) Mode {
	out = strings.ToLower(out)
	for _, m := range Modes() {
		if strings.Contains(out, m.String()) {
			return m
		}
	}
	return ModeUnknown
}

// notInstalled reports whether err and stderr indicate a missing executable.
func notInstalled(err error, stderr string) bool {
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	return strings.Contains(stderr, "not found") || strings.Contains(stderr, "No such file")
}

// Switch applies the requested graphics mode. On success it returns the
// message shown to the user; on failure the error carries envycontrol's
// trimmed stderr.
func Switch(req SwitchRequest) (string, error) {
	args := req.Args()
	logging.Logger.Debug("envycontrol switch", "args", strings.Join(args, " "))
	if _, stderr, err := runPrivileged(args...); err != nil {
		logging.Logger.Error("envycontrol switch failed", "mode", req.Mode, "err", err)
		return "", fmt.Errorf("switch to %s mode: %w: %s", req.Mode, err, strings.TrimSpace(stderr))
	}
	return fmt.Sprintf("Switched to %s mode. Please reboot for changes to take effect.", req.Mode), nil
}

// Reset restores envycontrol's default configuration.
func Reset() (string, error) {
	logging.Logger.Debug("envycontrol reset")
	if _, stderr, err := runPrivileged("--reset", "--verbose"); err != nil {
		logging.Logger.Error("envycontrol reset failed", "err", err)
		return "", fmt.Errorf("reset graphics configuration: %w: %s", err, strings.TrimSpace(stderr))
	}
	return "Reset successful. Please reboot for changes to take effect.", nil
}

// IsInstalled reports whether the envycontrol executable is on PATH. Probe
// errors collapse to false.
func IsInstalled() bool {
	_, err := lookPath("envycontrol")
	return err == nil
}

// Reboot asks systemd to restart the machine. The command is spawned and
// never awaited: the reboot itself is expected to terminate this process.
func Reboot() error {
	logging.Logger.Info("reboot requested")
	if err := startReboot(); err != nil {
		return fmt.Errorf("request reboot: %w", err)
	}
	return nil
}
