package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tassiovirginio/envy-tui/internal/logging"
	"github.com/tassiovirginio/envy-tui/internal/ui"
	"github.com/tassiovirginio/envy-tui/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "envy-tui",
	Short: "Terminal interface for switching GPU modes with envycontrol",
	Long: "envy-tui is an interactive front-end for envycontrol on laptops with\n" +
		"switchable graphics. It selects between integrated, hybrid and nvidia\n" +
		"mode, runs the privileged switch, and offers the reboot that makes\n" +
		"the change effective.",
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		closeLog, err := logging.Setup()
		if err != nil {
			return err
		}
		defer closeLog()
		logging.Logger.Info("starting", "version", version.Version)

		p := tea.NewProgram(ui.NewDefaultApp().AsTeaModel(), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run interface: %w", err)
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
