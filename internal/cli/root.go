package cli

import (
	"os"

	"github.com/spf13/cobra"

	"plane-cli/internal/logx"
	"plane-cli/internal/tui"
)

type App struct {
	Debug bool
	NoLog bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "plane [file]",
		Short:        "Outline sidebar for plan files",
		Long:         "plane keeps a flat outline of headings and todos in a markdown plan file,\nwith an archive section and undoable structural edits.",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(planPath(args))
		},
	}

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if app.NoLog {
			return
		}
		if err := logx.Init(app.Debug); err != nil {
			// Logging is diagnostics only; the app works without it.
			app.NoLog = true
		}
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		logx.Close()
	}

	cmd.PersistentFlags().BoolVar(&app.Debug, "debug", false, "Log at debug level")
	cmd.PersistentFlags().BoolVar(&app.NoLog, "no-log", false, "Disable the log file")

	cmd.AddCommand(newFmtCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newArchiveCmd(app))
	return cmd
}

func planPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if v := os.Getenv("PLANE_FILE"); v != "" {
		return v
	}
	return "plan.md"
}
