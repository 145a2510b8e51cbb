package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hlop3z/sqlforge/internal/cli"
	"github.com/hlop3z/sqlforge/internal/store"
)

// historyCmd groups the script history subcommands.
func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: fmt.Sprintf("Browse the last %d generated scripts", store.HistoryLimit),
	}
	cmd.AddCommand(historyListCmd(), historyShowCmd(), historyDeleteCmd(), historyClearCmd())
	return cmd
}

func historyListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded scripts, newest first",
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

			entries, err := st.ListHistory()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				if entries == nil {
					entries = []store.HistoryEntry{}
				}
				return cli.WriteJSON(out, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No scripts recorded. Use 'sqlforge generate --history'.")
				return nil
			}

			table := cli.NewTable("ID", "PROJECT", "DIALECT", "CREATED", "FINGERPRINT")
			for _, e := range entries {
				table.AddRow(
					fmt.Sprint(e.ID),
					e.ProjectName,
					e.Dialect,
					e.CreatedAt.Local().Format(TimeDisplay),
					shortHash(e.Fingerprint),
				)
			}
			fmt.Fprint(out, table.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func historyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a recorded script",
		Long:  "Print a recorded script to stdout. Its project, dialect and fingerprint go to stderr.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseHistoryID(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			e, err := st.GetHistory(id)
			if err != nil {
				return err
			}
			meta := cmd.ErrOrStderr()
			fmt.Fprintln(meta, cli.FormatKeyValue("project", e.ProjectName))
			fmt.Fprintln(meta, cli.FormatKeyValue("dialect", e.Dialect))
			fmt.Fprintln(meta, cli.FormatKeyValue("created", e.CreatedAt.Local().Format(TimeDisplay)))
			fmt.Fprintln(meta, cli.FormatKeyValue("fingerprint", e.Fingerprint))
			fmt.Fprintln(cmd.OutOrStdout(), cli.SQL(e.SQL))
			return nil
		},
	}
}

func historyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove one recorded script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseHistoryID(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			if _, err := st.GetHistory(id); err != nil {
				return err
			}
			if err := st.DeleteHistory(id); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("deleted history entry %d", id)))
			return nil
		},
	}
}

func parseHistoryID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid history id %q: expected a positive number", arg)
	}
	return id, nil
}

func historyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every recorded script",
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

			if err := st.ClearHistory(); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), cli.FormatSuccess("history cleared"))
			return nil
		},
	}
}
