package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hlop3z/sqlforge/internal/alerr"
	"github.com/hlop3z/sqlforge/internal/artifact"
	"github.com/hlop3z/sqlforge/internal/cli"
	"github.com/hlop3z/sqlforge/internal/store"
)

// generateOptions are the generate command's flags.
type generateOptions struct {
	actions    string
	output     string
	strictData bool
	history    bool
	watch      bool
}

// generateCmd assembles the script for a project file.
func generateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate <project-file>",
		Short: "Generate the SQL script for a project file",
		Example: `  sqlforge generate project.json
  sqlforge generate project.yaml --actions table,insert -d mysql
  sqlforge generate project.json -o schema.sql --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("actions") {
				cfg.Actions = []string{opts.actions}
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = opts.output
			}
			if cmd.Flags().Changed("strict-data") {
				cfg.StrictData = opts.strictData
			}

			g := &generator{
				path:    args[0],
				cfg:     cfg,
				history: opts.history,
				stdout:  cmd.OutOrStdout(),
				stderr:  cmd.ErrOrStderr(),
				log:     slog.Default(),
			}
			if err := g.run(); err != nil {
				return err
			}
			if !opts.watch {
				return nil
			}

			fmt.Fprint(g.stderr, cli.FormatNote(fmt.Sprintf("watching %s (Ctrl+C to stop)", cli.FilePath(g.path))))
			return watchFile(cmd.Context(), g.path, g.log, func() {
				if err := g.run(); err != nil {
					fmt.Fprint(g.stderr, cli.FormatError(err))
				}
			})
		},
	}

	cmd.Flags().StringVarP(&opts.actions, "actions", "a", "all", "Comma separated actions (database,table,insert,getbyid,selectall,update,delete,data,crud,all)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the script to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.strictData, "strict-data", false, "Replace INSERT blocks with invalid values by a comment")
	cmd.Flags().BoolVar(&opts.history, "history", false, "Record the script in the history store")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Regenerate when the project file changes")

	return cmd
}

// generator runs one generation pass per call. last is the fingerprint of
// the previous pass, so watch mode can skip unchanged output.
type generator struct {
	path    string
	cfg     *Config
	history bool
	stdout  io.Writer
	stderr  io.Writer
	log     *slog.Logger
	last    *artifact.Fingerprint
}

func (g *generator) run() error {
	set, err := g.cfg.ActionSet()
	if err != nil {
		return err
	}
	p, err := loadProject(g.path, g.cfg)
	if err != nil {
		return err
	}

	script := artifact.Build(p, set, artifact.Options{Logger: g.log, StrictData: g.cfg.StrictData})
	if script.IsEmpty() {
		fmt.Fprint(g.stderr, cli.FormatWarning(g.path, "nothing to generate"))
		return nil
	}

	fp, err := script.Fingerprint()
	if err != nil {
		return err
	}
	if g.last != nil {
		changed := g.last.Changed(fp)
		if len(changed) == 0 {
			fmt.Fprint(g.stderr, cli.FormatNote("script unchanged"))
			return nil
		}
		g.log.Debug("script changed", "blocks", changed)
	}
	g.last = fp

	if err := g.write(script); err != nil {
		return err
	}
	if script.HasDiagnostics() {
		fmt.Fprint(g.stderr, cli.FormatWarning("", fmt.Sprintf("script contains %s",
			cli.FormatCount(len(script.Diagnostics()), "diagnostic", "diagnostics"))))
	}
	if g.history {
		return g.record(p.DatabaseName, script, fp)
	}
	return nil
}

func (g *generator) write(script *artifact.Script) error {
	text := script.String()
	if g.cfg.Output == "" {
		fmt.Fprintln(g.stdout, cli.SQL(text))
		return nil
	}

	if dir := filepath.Dir(g.cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return alerr.Wrap(alerr.ErrOutputWrite, err, "failed to create output directory").WithPath(dir)
		}
	}
	if err := os.WriteFile(g.cfg.Output, []byte(text+"\n"), 0644); err != nil {
		return alerr.Wrap(alerr.ErrOutputWrite, err, "failed to write script").WithPath(g.cfg.Output)
	}
	fmt.Fprint(g.stderr, cli.FormatSuccess(fmt.Sprintf("wrote %s (%s) to %s",
		cli.FormatCount(len(script.Blocks), "block", "blocks"), script.Dialect, g.cfg.Output)))
	return nil
}

func (g *generator) record(project string, script *artifact.Script, fp *artifact.Fingerprint) error {
	st, err := openStore(g.cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	entry, added, err := st.AddHistory(store.HistoryEntry{
		ProjectName: project,
		Dialect:     string(script.Dialect),
		Fingerprint: fp.Root,
		SQL:         script.String(),
	})
	if err != nil {
		return err
	}
	if added {
		g.log.Debug("recorded history", "id", entry.ID, "fingerprint", shortHash(fp.Root))
	} else {
		g.log.Debug("script unchanged, history not updated", "id", entry.ID)
	}
	return nil
}
