package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hlop3z/sqlforge/internal/cli"
	"github.com/hlop3z/sqlforge/internal/model"
	"github.com/hlop3z/sqlforge/internal/sample"
)

// sampleCmd fills the tables of a project with generated rows.
func sampleCmd() *cobra.Command {
	var (
		rows    int
		seed    uint64
		write   bool
		replace bool
	)

	cmd := &cobra.Command{
		Use:   "sample <project-file>",
		Short: "Fill each table with generated sample rows",
		Example: `  sqlforge sample project.json --rows 10
  sqlforge sample project.yaml --seed 7 --write`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			p, err := model.LoadFile(path)
			if err != nil {
				return err
			}

			fillProject(p, rows, seed, replace)

			if write {
				if err := model.SaveFile(path, p); err != nil {
					return err
				}
				fmt.Fprint(cmd.ErrOrStderr(), cli.FormatSuccess(fmt.Sprintf("added %s per table to %s",
					cli.FormatCount(rows, "row", "rows"), path)))
				return nil
			}

			data, err := model.EncodeJSON(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().IntVarP(&rows, "rows", "n", 5, "Rows to generate per table")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Random seed; the same seed yields the same rows")
	cmd.Flags().BoolVar(&write, "write", false, "Write the rows back to the project file")
	cmd.Flags().BoolVar(&replace, "replace", false, "Discard existing rows first")
	return cmd
}

// fillProject appends n rows to every table from one seeded generator.
func fillProject(p *model.Project, n int, seed uint64, replace bool) {
	g := sample.New(seed)
	for i := range p.Tables {
		t := &p.Tables[i]
		if replace {
			t.Rows = nil
		}
		t.Rows = append(t.Rows, g.Rows(t, n)...)
	}
}
