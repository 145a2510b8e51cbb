package main

import (
	"fmt"
	"io"

	"github.com/hlop3z/sqlforge/internal/model"
	"github.com/hlop3z/sqlforge/internal/store"
)

// loadProject reads a project file and applies the configured dialect override.
func loadProject(path string, cfg *Config) (*model.Project, error) {
	p, err := model.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if cfg.Dialect != "" {
		p.DBMS = cfg.Dialect
	}
	return p, nil
}

// openStore opens the configured project and history store.
func openStore(cfg *Config) (*store.Store, error) {
	return store.Open(cfg.StorePath)
}

// printSection prints a titled list, skipping empty lists.
func printSection(w io.Writer, title string, items []string, styleFn func(string) string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "  %s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "    %s %s\n", styleFn("-"), item)
	}
}

// shortHash truncates a fingerprint for display.
func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
