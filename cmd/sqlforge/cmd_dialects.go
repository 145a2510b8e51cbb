package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hlop3z/sqlforge/internal/cli"
	"github.com/hlop3z/sqlforge/internal/dialect"
)

// previewTypes are the generic types whose mapping differs across dialects.
var previewTypes = []string{"VARCHAR(MAX)", "DATETIME2", "DATETIME", "BIT"}

// dialectsCmd lists the supported dialects and a type-mapping preview.
func dialectsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "dialects",
		Short: "List supported dialects and their type mappings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if jsonOutput {
				type entry struct {
					Name    string            `json:"name"`
					Display string            `json:"display"`
					Types   map[string]string `json:"types"`
				}
				entries := []entry{}
				for _, d := range dialect.All() {
					types := make(map[string]string, len(previewTypes))
					for _, t := range previewTypes {
						types[t] = d.MapType(t)
					}
					entries = append(entries, entry{Name: string(d.Name()), Display: d.DisplayName(), Types: types})
				}
				return cli.WriteJSON(out, entries)
			}

			headers := append([]string{"NAME", "DISPLAY"}, previewTypes...)
			table := cli.NewTable(headers...)
			for _, d := range dialect.All() {
				row := []string{string(d.Name()), d.DisplayName()}
				for _, t := range previewTypes {
					row = append(row, d.MapType(t))
				}
				table.AddRow(row...)
			}
			fmt.Fprint(out, table.String())
			fmt.Fprintf(out, "\n%s\n", cli.Dim(fmt.Sprintf("unknown names fall back to %s", dialect.Default)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
