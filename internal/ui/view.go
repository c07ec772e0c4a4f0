package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tassiovirginio/envy-tui/internal/envycontrol"
	"github.com/tassiovirginio/envy-tui/internal/ui/textutil"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

func (m appAdapter) View() string {
	a := m.app
	if a.quitting {
		return ""
	}
	w, h := a.width, a.height
	if w == 0 {
		w, h = defaultWidth, defaultHeight
	}

	if a.lifecycle != LifecycleNormal {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, a.viewModal(w))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.viewHeader(w),
		a.viewPanels(w),
		a.viewFooter(w),
	)
}

func (a *App) viewHeader(w int) string {
	brand := Styles.TitleIcon.Render("󰾲 ") +
		Styles.TitleAccent.Render("Envy") +
		Styles.TitleRest.Render("TUI")

	var modeLine string
	if a.current == envycontrol.ModeUnknown {
		modeLine = Styles.Normal.Render("Current Mode: ") + Styles.Muted.Render("Unknown")
	} else {
		mc := lipgloss.NewStyle().Foreground(ModeColor(a.current))
		modeLine = Styles.Normal.Render("Current Mode: ") +
			mc.Render(a.current.Icon()+" ") +
			mc.Bold(true).Render(a.current.String())
	}

	lines := []string{brand, modeLine}
	if a.gpu != nil {
		sep := Styles.Separator.Render(" │ ")
		lines = append(lines,
			Styles.Muted.Render("󰍹 "+textutil.Truncate(a.gpu.Name, w/3))+sep+
				Styles.Muted.Render("🌡 "+a.gpu.Temperature)+sep+
				Styles.Muted.Render("󰍛 "+a.gpu.MemoryDisplay()))
	}

	return lipgloss.NewStyle().
		Width(w).
		Align(lipgloss.Center).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(colorBorder)).
		Render(strings.Join(lines, "\n"))
}

func (a *App) viewPanels(w int) string {
	pw := w/2 - 2
	if pw < 30 {
		pw = 30
	}
	cw := pw - 6 // inside border and padding

	modes := a.viewPanel(PanelModes.String(), a.panel == PanelModes, a.viewModes(cw), pw)
	opts := a.viewPanel(PanelOptions.String(), a.panel == PanelOptions, a.viewOptions(cw), pw)
	return lipgloss.JoinHorizontal(lipgloss.Top, modes, opts)
}

func (a *App) viewPanel(title string, focused bool, body string, width int) string {
	box := Styles.Panel
	titleStyle := Styles.PanelTitle
	if focused {
		box = Styles.PanelFocused
		titleStyle = Styles.PanelFocusedTitle
	}
	return box.Width(width - 2).Render(titleStyle.Render(title) + "\n\n" + body)
}

// viewModes renders the mode list. The row under the cursor carries the
// selector arrow when its panel is focused; the active hardware mode
// carries a dot marker regardless of the cursor.
func (a *App) viewModes(contentWidth int) string {
	focused := a.panel == PanelModes
	var lines []string
	for i, mode := range envycontrol.Modes() {
		selected := i == a.modeIndex

		cursor := "  "
		if selected && focused {
			cursor = Styles.Accent.Render("▶ ")
		}
		mc := ModeColor(mode)
		icon := lipgloss.NewStyle().Foreground(mc).Render(mode.Icon() + " ")
		name := Styles.Normal.Bold(true)
		if selected {
			name = Styles.Selected.Foreground(mc)
		}
		row := cursor + icon + name.Render(mode.Name())
		if mode == a.current {
			row += Styles.Success.Render(" ●")
		}
		lines = append(lines, row,
			Styles.Muted.Render("   "+textutil.Truncate(mode.Description(), contentWidth-3)))
		if i < len(envycontrol.Modes())-1 {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

func (a *App) viewOptions(contentWidth int) string {
	focused := a.panel == PanelOptions
	opts := a.options()
	var lines []string
	for i, opt := range opts {
		selected := i == a.optionIndex

		var box string
		switch {
		case opt.Toggleable && opt.On:
			box = Styles.Success.Render("[✓] ")
		case opt.Toggleable:
			box = Styles.Muted.Render("[ ] ")
		default:
			box = "    "
		}
		label := Styles.Normal.Bold(true)
		if selected && focused {
			label = Styles.Selected.Foreground(lipgloss.Color(colorAccent))
		}
		lines = append(lines, box+label.Render(opt.Label),
			Styles.Muted.Render("    "+textutil.Truncate(opt.Description, contentWidth-4)))
		if i < len(opts)-1 {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

func (a *App) viewFooter(w int) string {
	return lipgloss.NewStyle().
		Width(w).
		Align(lipgloss.Center).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(lipgloss.Color(colorBorder)).
		Render(a.help.ShortHelpView(a.keys.ShortHelp()))
}

// viewModal renders the phase popup. The base interface is replaced rather
// than dimmed while a modal is up.
func (a *App) viewModal(w int) string {
	width := 50
	if a.lifecycle == LifecycleLoading {
		width = 40
	}
	if limit := w - 4; width > limit {
		width = limit
	}

	var title string
	var border lipgloss.Color
	switch a.lifecycle {
	case LifecycleSuccess:
		title, border = " Success ", lipgloss.Color(colorSuccess)
	case LifecycleError:
		title, border = " Error ", lipgloss.Color(colorError)
	case LifecycleConfirmingSwitch, LifecycleConfirmingReboot:
		title, border = " Confirm ", lipgloss.Color(colorWarning)
	default:
		title, border = " Loading ", lipgloss.Color(colorAccent)
	}

	parts := []string{lipgloss.NewStyle().Foreground(border).Bold(true).Render(title), ""}
	switch a.lifecycle {
	case LifecycleLoading:
		parts = append(parts, a.spinner.View()+" "+Styles.Normal.Render(a.message))
	case LifecycleConfirmingSwitch, LifecycleConfirmingReboot:
		parts = append(parts,
			Styles.Normal.Render("󰋼 "+a.message),
			"",
			Styles.Hint.Render("y/Enter: Yes  |  n/Esc: No"))
	default:
		parts = append(parts,
			Styles.Normal.Render(a.message),
			"",
			Styles.Hint.Render("Press any key to continue"))
	}

	return Styles.Modal.
		BorderForeground(border).
		Width(width - 2).
		Align(lipgloss.Center).
		Render(strings.Join(parts, "\n"))
}
