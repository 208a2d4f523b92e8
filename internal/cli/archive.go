package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"plane-cli/internal/store"
)

func newArchiveCmd(app *App) *cobra.Command {
	var showOps int

	cmd := &cobra.Command{
		Use:   "archive <file>",
		Short: "List archived items, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if showOps > 0 {
				entries, err := st.ReadOps(cmd.Context(), showOps)
				if err != nil {
					return err
				}
				for _, e := range entries {
					fmt.Fprintf(out, "%s  %-10s %d\n", e.IssuedAt.Format("2006-01-02 15:04:05"), e.Op, e.Count)
				}
				return nil
			}

			_, archived, err := st.Load()
			if err != nil {
				return err
			}
			if len(archived) == 0 {
				fmt.Fprintln(out, "archive is empty")
				return nil
			}
			for _, it := range archived {
				fmt.Fprintln(out, textRow(it))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&showOps, "ops", 0, "Show the last N recorded operations instead of archived items")
	return cmd
}
