package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hlop3z/sqlforge/internal/alerr"
	"github.com/hlop3z/sqlforge/internal/cli"
	"github.com/hlop3z/sqlforge/internal/model"
)

// TimeDisplay is the timestamp layout of listings.
const TimeDisplay = "2006-01-02 15:04:05"

// projectCmd groups the project store subcommands.
func projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Save, list and show stored projects",
	}
	cmd.AddCommand(projectSaveCmd(), projectListCmd(), projectShowCmd(), projectDeleteCmd())
	return cmd
}

func projectSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <project-file>",
		Short: "Store a project under its database name",
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
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			info, err := st.SaveProject(p)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("saved project %s (id %d)", info.Name, info.ID)))
			return nil
		},
	}
}

func projectListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			projects, err := st.ListProjects()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				return cli.WriteJSON(out, projects)
			}
			if len(projects) == 0 {
				fmt.Fprintln(out, "No projects stored.")
				return nil
			}

			table := cli.NewTable("ID", "NAME", "UPDATED")
			for _, p := range projects {
				table.AddRow(fmt.Sprint(p.ID), p.Name, p.UpdatedAt.Local().Format(TimeDisplay))
			}
			fmt.Fprint(out, table.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func projectShowCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "show <name|id>",
		Short: "Print a stored project by name or numeric id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			p, err := st.LoadProject(args[0])
			if alerr.Is(err, alerr.ErrProjectNotFound) {
				if id, convErr := strconv.ParseInt(args[0], 10, 64); convErr == nil {
					p, err = st.LoadProjectByID(id)
				}
			}
			if err != nil {
				return err
			}

			var data []byte
			if asYAML {
				data, err = model.EncodeYAML(p)
			} else {
				data, err = model.EncodeJSON(p)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print as YAML instead of JSON")
	return cmd
}

func projectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a stored project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.DeleteProject(args[0]); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), cli.FormatSuccess("deleted project "+args[0]))
			return nil
		},
	}
}
