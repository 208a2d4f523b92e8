package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"plane-cli/internal/model"
	"plane-cli/internal/store"
)

// showRow is the JSON shape for one outline row.
type showRow struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Indent  int    `json:"indent"`
	Checked bool   `json:"checked,omitempty"`
	Note    string `json:"note,omitempty"`
}

type showDoc struct {
	Items    []showRow `json:"items"`
	Archived []showRow `json:"archived"`
}

func newShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(args[0])
			if err != nil {
				return err
			}
			items, archived, err := st.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if asJSON {
				doc := showDoc{Items: toRows(items), Archived: toRows(archived)}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			}

			for _, it := range items {
				fmt.Fprintln(out, textRow(it))
			}
			if len(archived) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintf(out, "%d archived (plane archive %s)\n", len(archived), args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return cmd
}

func toRows(items []model.Item) []showRow {
	rows := make([]showRow, 0, len(items))
	for _, it := range items {
		kind := "todo"
		if it.IsHeading() {
			kind = "heading"
		}
		rows = append(rows, showRow{
			ID:      it.ID,
			Kind:    kind,
			Title:   it.Title,
			Indent:  it.Indent,
			Checked: it.Checked,
			Note:    it.Note,
		})
	}
	return rows
}

func textRow(it model.Item) string {
	if it.IsHeading() {
		return "# " + it.Title
	}
	box := "[ ]"
	if it.Checked {
		box = "[x]"
	}
	return strings.Repeat("  ", it.Indent+1) + box + " " + it.Title
}
