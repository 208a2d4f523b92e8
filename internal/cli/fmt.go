package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"plane-cli/internal/planfile"
	"plane-cli/internal/store"
)

func newFmtCmd(app *App) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Rewrite a plan file in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			items, archived := planfile.Parse(string(data))
			canonical := planfile.Format(items, archived)

			if string(data) == canonical {
				return nil
			}
			if check {
				return fmt.Errorf("%s: not in canonical form", args[0])
			}
			// Saving through the store keeps the rotated backups.
			st, err := store.Open(args[0])
			if err != nil {
				return err
			}
			if err := st.Save(items, archived); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "formatted %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Exit nonzero if the file is not canonical, without rewriting")
	return cmd
}
