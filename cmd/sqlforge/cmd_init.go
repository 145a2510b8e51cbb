package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hlop3z/sqlforge/internal/alerr"
	"github.com/hlop3z/sqlforge/internal/cli"
	"github.com/hlop3z/sqlforge/internal/model"
)

// StarterProjectFile is the project written by init.
const StarterProjectFile = "project.json"

const starterConfig = `# sqlforge.yaml
dialect: ""              # overrides the project's dbms (sqlserver, mysql, postgresql)
actions: [all]           # database, table, insert, getbyid, selectall, update, delete, data
store_path: .sqlforge/store.db
output: ""               # empty writes to stdout
strict_data: false
`

// starterProject is a two-table project with a foreign key and one row.
func starterProject() *model.Project {
	return &model.Project{
		DatabaseName: "shop",
		DBMS:         "mysql",
		Tables: []model.Table{
			{
				Name: "customers",
				Columns: []model.Column{
					{Name: "id", SQLType: "INT", IsPrimaryKey: true, IsAutoIncrement: true},
					{Name: "name", SQLType: "VARCHAR(100)"},
					{Name: "email", SQLType: "VARCHAR(150)", Nullable: true},
				},
				Rows: []model.Row{{"name": "Ada Lovelace", "email": "ada@example.com"}},
			},
			{
				Name: "orders",
				Columns: []model.Column{
					{Name: "id", SQLType: "INT", IsPrimaryKey: true, IsAutoIncrement: true},
					{Name: "customer_id", SQLType: "INT", ForeignKeyTable: "customers", ForeignKeyColumn: "id"},
					{Name: "total", SQLType: "DECIMAL(10,2)"},
					{Name: "created_at", SQLType: "DATETIME", Nullable: true},
				},
			},
		},
	}
}

// initCmd writes a starter config and project, leaving existing files alone.
func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create sqlforge.yaml and a starter project.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.OutOrStdout(), configFile, StarterProjectFile)
		},
	}
}

func runInit(out io.Writer, configPath, projectPath string) error {
	if exists(configPath) {
		fmt.Fprintf(out, "Skipped %s (already exists)\n", configPath)
	} else {
		if err := os.WriteFile(configPath, []byte(starterConfig), 0644); err != nil {
			return alerr.Wrap(alerr.ErrOutputWrite, err, "failed to create config file").WithPath(configPath)
		}
		fmt.Fprintf(out, "Created %s\n", configPath)
	}

	if exists(projectPath) {
		fmt.Fprintf(out, "Skipped %s (already exists)\n", projectPath)
	} else {
		if err := model.SaveFile(projectPath, starterProject()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Created %s\n", projectPath)
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, cli.FormatHelp("run 'sqlforge generate "+projectPath+"' to print the script"))
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
