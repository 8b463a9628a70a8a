package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idursun/dragorder/internal/config"
	"github.com/idursun/dragorder/internal/ui"
)

type options struct {
	configPath string
	debug      bool
}

// runFunc runs the interactive program and returns the model it ended with.
type runFunc func(model *ui.Model) (*ui.Model, error)

func runProgram(model *ui.Model) (*ui.Model, error) {
	p := tea.NewProgram(ui.New(model), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return model, nil
}

func newRootCmd(run runFunc) *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:           "dragorder",
		Short:         "Reorder lists with the mouse",
		Long:          "Shows the configured lists side by side. Drag items to reorder them or move them between lists of the same group; press esc to cancel a drag.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.debug {
				f, err := tea.LogToFile("dragorder.log", "debug")
				if err != nil {
					return fmt.Errorf("opening log file: %w", err)
				}
				defer f.Close()
			} else {
				log.SetOutput(io.Discard)
			}

			cfg, err := config.Load(o.configPath)
			if err != nil {
				return err
			}
			model, err := ui.NewUI(cfg)
			if err != nil {
				return err
			}
			final, err := run(model)
			if err != nil {
				return fmt.Errorf("running program: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), final.Summary())
			return nil
		},
	}
	cmd.Flags().StringVarP(&o.configPath, "config", "c", os.Getenv("DRAGORDER_CONFIG"),
		"Path to a TOML configuration file.")
	cmd.Flags().BoolVar(&o.debug, "debug", os.Getenv("DEBUG") != "",
		"Write a debug log to dragorder.log.")
	return cmd
}

func main() {
	if err := newRootCmd(runProgram).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
