package envycontrol

import (
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestQueryModeParsesOutput(t *testing.T) {
	old := runQuery
	runQuery = func() (string, string, error) {
		return "Current graphics mode is: Hybrid\n", "", nil
	}
	defer func() { runQuery = old }()

	got, err := QueryMode()
	if err != nil {
		t.Fatalf("QueryMode returned error: %v", err)
	}
	if got != ModeHybrid {
		t.Errorf("QueryMode = %v, want %v", got, ModeHybrid)
	}
}

func TestQueryModeMissingExecutable(t *testing.T) {
	old := runQuery
	runQuery = func() (string, string, error) {
		return "", "", &exec.Error{Name: "envycontrol", Err: exec.ErrNotFound}
	}
	defer func() { runQuery = old }()

	_, err := QueryMode()
	if !errors.Is(err, ErrNotInstalled) {
		t.Fatalf("expected ErrNotInstalled, got %v", err)
	}
}

func TestQueryModeNotFoundViaStderr(t *testing.T) {
	// Some setups surface the missing binary through shell stderr text
	// instead of exec.ErrNotFound.
	old := runQuery
	runQuery = func() (string, string, error) {
		return "", "sh: envycontrol: not found\n", errors.New("exit status 127")
	}
	defer func() { runQuery = old }()

	_, err := QueryMode()
	if !errors.Is(err, ErrNotInstalled) {
		t.Fatalf("expected ErrNotInstalled, got %v", err)
	}
}

func TestQueryModeFailureIsUnknownNotError(t *testing.T) {
	old := runQuery
	runQuery = func() (string, string, error) {
		return "", "unsupported configuration\n", errors.New("exit status 1")
	}
	defer func() { runQuery = old }()

	got, err := QueryMode()
	if err != nil {
		t.Fatalf("query failure must not surface an error, got %v", err)
	}
	if got != ModeUnknown {
		t.Errorf("QueryMode = %v, want ModeUnknown", got)
	}
}

func TestQueryModeUnrecognizedOutput(t *testing.T) {
	old := runQuery
	runQuery = func() (string, string, error) {
		return "something else entirely\n", "", nil
	}
	defer func() { runQuery = old }()

	got, err := QueryMode()
	if err != nil {
		t.Fatalf("QueryMode returned error: %v", err)
	}
	if got != ModeUnknown {
		t.Errorf("QueryMode = %v, want ModeUnknown", got)
	}
}

func TestSwitchPassesRequestArgs(t *testing.T) {
	var gotArgs []string
	old := runPrivileged
	runPrivileged = func(args ...string) (string, string, error) {
		gotArgs = args
		return "done", "", nil
	}
	defer func() { runPrivileged = old }()

	msg, err := Switch(SwitchRequest{Mode: ModeNvidia, CoolbitsEnabled: true, CoolbitsValue: 28})
	if err != nil {
		t.Fatalf("Switch returned error: %v", err)
	}
	want := "-s nvidia --coolbits 28 --verbose"
	if got := strings.Join(gotArgs, " "); got != want {
		t.Errorf("privileged args = %q, want %q", got, want)
	}
	if !strings.Contains(msg, "Switched to nvidia mode") {
		t.Errorf("success message %q does not name the target mode", msg)
	}
}

func TestSwitchFailureCarriesStderr(t *testing.T) {
	old := runPrivileged
	runPrivileged = func(args ...string) (string, string, error) {
		return "", "pkexec: authorization could not be obtained\n", errors.New("exit status 127")
	}
	defer func() { runPrivileged = old }()

	_, err := Switch(SwitchRequest{Mode: ModeHybrid})
	if err == nil {
		t.Fatal("expected error from failed switch")
	}
	if !strings.Contains(err.Error(), "switch to hybrid mode") {
		t.Errorf("error %q does not name the operation", err)
	}
	if !strings.Contains(err.Error(), "authorization could not be obtained") {
		t.Errorf("error %q does not carry stderr detail", err)
	}
}

func TestResetPassesResetFlags(t *testing.T) {
	var gotArgs []string
	old := runPrivileged
	runPrivileged = func(args ...string) (string, string, error) {
		gotArgs = args
		return "", "", nil
	}
	defer func() { runPrivileged = old }()

	msg, err := Reset()
	if err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}
	if got := strings.Join(gotArgs, " "); got != "--reset --verbose" {
		t.Errorf("privileged args = %q, want %q", got, "--reset --verbose")
	}
	if !strings.Contains(msg, "Reset successful") {
		t.Errorf("unexpected success message %q", msg)
	}
}

func TestResetFailureCarriesStderr(t *testing.T) {
	old := runPrivileged
	runPrivileged = func(args ...string) (string, string, error) {
		return "", "nothing to reset\n", errors.New("exit status 1")
	}
	defer func() { runPrivileged = old }()

	_, err := Reset()
	if err == nil {
		t.Fatal("expected error from failed reset")
	}
	if !strings.Contains(err.Error(), "nothing to reset") {
		t.Errorf("error %q does not carry stderr detail", err)
	}
}

func TestIsInstalled(t *testing.T) {
	old := lookPath
	defer func() { lookPath = old }()

	lookPath = func(name string) (string, error) {
		if name != "envycontrol" {
			t.Fatalf("probed unexpected executable %q", name)
		}
		return "/usr/bin/envycontrol", nil
	}
	if !IsInstalled() {
		t.Error("IsInstalled = false with executable present")
	}

	lookPath = func(string) (string, error) { return "", exec.ErrNotFound }
	if IsInstalled() {
		t.Error("IsInstalled = true with executable missing")
	}
}

func TestReboot(t *testing.T) {
	old := startReboot
	defer func() { startReboot = old }()

	startReboot = func() error { return nil }
	if err := Reboot(); err != nil {
		t.Errorf("Reboot returned error: %v", err)
	}

	startReboot = func() error { return errors.New("dbus unavailable") }
	err := Reboot()
	if err == nil {
		t.Fatal("expected error when reboot spawn fails")
	}
	if !strings.Contains(err.Error(), "request reboot") {
		t.Errorf("error %q does not name the operation", err)
	}
}
