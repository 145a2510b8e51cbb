package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hlop3z/sqlforge/internal/cli"
	"github.com/hlop3z/sqlforge/internal/model"
	"github.com/hlop3z/sqlforge/internal/validate"
)

// tableReport is the validation outcome of one table.
type tableReport struct {
	Name     string              `json:"name"`
	Valid    bool                `json:"valid"`
	Errors   []string            `json:"errors"`
	Warnings []string            `json:"warnings,omitempty"`
	Rows     []validate.RowError `json:"rows,omitempty"`
}

// validationReport is the validation outcome of a project.
type validationReport struct {
	Valid  bool          `json:"valid"`
	Tables []tableReport `json:"tables"`
}

// validateProject runs structural and row validation over every table.
// Invalid rows make the report invalid even when the table itself is fine.
func validateProject(p *model.Project) validationReport {
	report := validationReport{Valid: true, Tables: []tableReport{}}
	for i := range p.Tables {
		t := &p.Tables[i]
		res := validate.Table(t)
		tr := tableReport{
			Name:     t.Name,
			Valid:    res.Valid,
			Errors:   res.Errors,
			Warnings: res.Warnings,
			Rows:     validate.Rows(t),
		}
		if tr.Errors == nil {
			tr.Errors = []string{}
		}
		if len(tr.Rows) > 0 {
			tr.Valid = false
		}
		if !tr.Valid {
			report.Valid = false
		}
		report.Tables = append(report.Tables, tr)
	}
	return report
}

// validateCmd checks a project file without generating anything.
func validateCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate <project-file>",
		Short: "Validate tables and entered rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			p, err := loadProject(args[0], cfg)
			if err != nil {
				return err
			}

			report := validateProject(p)
			out := cmd.OutOrStdout()

			if jsonOutput {
				if err := cli.WriteJSON(out, report); err != nil {
					return err
				}
			} else {
				for _, tr := range report.Tables {
					if tr.Valid {
						fmt.Fprintf(out, "%s %s\n", cli.Success("ok"), tr.Name)
					} else {
						fmt.Fprintf(out, "%s %s\n", cli.Error("invalid"), tr.Name)
					}
					printSection(out, "errors", tr.Errors, cli.Error)
					rows := make([]string, len(tr.Rows))
					for i, r := range tr.Rows {
						rows[i] = r.String()
					}
					printSection(out, "rows", rows, cli.Error)
					printSection(out, "warnings", tr.Warnings, cli.Warning)
				}
				fmt.Fprintln(out)
				fmt.Fprintf(out, "%s checked\n", cli.FormatCount(len(report.Tables), "table", "tables"))
			}

			if !report.Valid {
				return errSilentExit
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
