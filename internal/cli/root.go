package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/gallery/internal/tui"
)

// NewRootCmd creates the gallery command tree. Without a subcommand it
// starts the interactive table.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse and select artworks from the Art Institute of Chicago",
		Long: `gallery pages through the Art Institute of Chicago artwork collection
in a terminal table. Rows can be toggled one by one, or the first N records
of the collection can be selected even when they span pages not yet loaded.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return errors.New("the interactive table needs a terminal; use 'gallery page' or 'gallery select' instead")
			}
			return runTUI(cmd)
		},
	}

	cmd.SetVersionTemplate("gallery {{.Version}}\n")
	cmd.PersistentFlags().String("config", "", "config file (default is $HOME/.config/gallery/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "override logging.level (debug, info, warn, error)")

	cmd.AddCommand(NewPageCmd())
	cmd.AddCommand(NewSelectCmd())
	cmd.AddCommand(NewConfigCmd())

	return cmd
}

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// runTUI runs the Bubble Tea program for one table session
func runTUI(cmd *cobra.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	s.logger.Info("starting gallery", "version", cmd.Root().Version)

	model := tui.NewModel(s.coord, tui.Options{
		Timeout:     s.cfg.Catalog.Timeout,
		AutoAdvance: s.cfg.Selection.AutoAdvance,
		Logger:      s.logger,
	})

	var opts []tea.ProgramOption
	if s.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, tea.WithContext(cmd.Context()))

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		s.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	s.logger.Info("shutting down")
	return nil
}
