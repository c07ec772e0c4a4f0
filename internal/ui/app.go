package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tassiovirginio/envy-tui/internal/envycontrol"
	"github.com/tassiovirginio/envy-tui/internal/gpu"
	"github.com/tassiovirginio/envy-tui/internal/runner"
)

// Tool is the surface the application drives. The production implementation
// shells out to envycontrol and nvidia-smi; tests substitute a fake.
type Tool interface {
	IsInstalled() bool
	QueryMode() (envycontrol.Mode, error)
	Switch(req envycontrol.SwitchRequest) (string, error)
	Reset() (string, error)
	Reboot() error
	QueryGPU() *gpu.Info
}

// cliTool delegates to the real external commands.
type cliTool struct{}

func (cliTool) IsInstalled() bool { return envycontrol.IsInstalled() }

func (cliTool) QueryMode() (envycontrol.Mode, error) { return envycontrol.QueryMode() }

func (cliTool) Switch(req envycontrol.SwitchRequest) (string, error) {
	return envycontrol.Switch(req)
}

func (cliTool) Reset() (string, error) { return envycontrol.Reset() }

func (cliTool) Reboot() error { return envycontrol.Reboot() }

func (cliTool) QueryGPU() *gpu.Info { return gpu.Query() }

// pendingOp tags which operation the in-flight worker belongs to, so its
// outcome can be folded into the right state transition.
type pendingOp int

const (
	opNone pendingOp = iota
	opSwitch
	opReset
)

// App holds the whole interface state. All mutation happens on the Bubble
// Tea event loop; workers communicate through runner handles only.
type App struct {
	tool Tool

	current envycontrol.Mode
	pending envycontrol.Mode

	modeIndex   int
	optionIndex int
	panel       Panel

	lifecycle Lifecycle
	message   string
	quitting  bool

	rtd3Enabled     bool
	rtd3Level       envycontrol.Rtd3Level
	forceComp       bool
	coolbitsEnabled bool
	coolbitsValue   int

	inflight *runner.Handle[string]
	op       pendingOp

	gpu *gpu.Info

	spinner spinner.Model
	keys    keyMap
	help    help.Model

	width  int
	height int
}

// NewApp builds the initial state. When the envycontrol executable is
// missing the app starts in the error phase with a standing banner; no
// query or switch is ever attempted.
func NewApp(t Tool) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = Styles.Accent

	hl := help.New()
	hl.ShortSeparator = " │ "
	hl.Styles.ShortKey = Styles.Accent.Bold(true)
	hl.Styles.ShortDesc = Styles.Muted
	hl.Styles.ShortSeparator = Styles.Separator

	a := &App{
		tool:          t,
		rtd3Level:     envycontrol.Rtd3FineGrained,
		coolbitsValue: 28,
		spinner:       sp,
		keys:          defaultKeyMap(),
		help:          hl,
	}
	if !t.IsInstalled() {
		a.setError("envycontrol is not installed. Please install it first.")
	}
	return a
}

// NewDefaultApp wires the app to the real external commands.
func NewDefaultApp() *App {
	return NewApp(cliTool{})
}

// appAdapter exposes App through the tea.Model interface while keeping a
// single shared *App underneath.
type appAdapter struct {
	app *App
}

var _ tea.Model = appAdapter{}

// AsTeaModel wraps the app for tea.NewProgram.
func (a *App) AsTeaModel() tea.Model {
	return appAdapter{app: a}
}

func (m appAdapter) Init() tea.Cmd {
	a := m.app
	cmds := []tea.Cmd{queryGPUCmd(a.tool), telemetryTickCmd()}
	if cmd := a.startupQueryCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// startupQueryCmd returns the initial mode probe, or nil when the missing
// executable banner is already up.
func (a *App) startupQueryCmd() tea.Cmd {
	if a.lifecycle == LifecycleError {
		return nil
	}
	return queryModeCmd(a.tool)
}
