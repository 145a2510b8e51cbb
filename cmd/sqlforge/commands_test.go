package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hlop3z/sqlforge/internal/alerr"
	"github.com/hlop3z/sqlforge/internal/cli"
	"github.com/hlop3z/sqlforge/internal/model"
	"github.com/hlop3z/sqlforge/internal/testutil"
)

func init() {
	cli.SetMode(cli.ModePlain)
}

// -----------------------------------------------------------------------------
// Test Environment Setup
// -----------------------------------------------------------------------------

// testEnv is a temporary working area with a config, a project and a store.
type testEnv struct {
	dir        string
	configPath string
	project    string
	storePath  string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clearEnv(t)

	dir := t.TempDir()
	env := &testEnv{
		dir:        dir,
		configPath: filepath.Join(dir, "sqlforge.yaml"),
		project:    filepath.Join(dir, "project.json"),
		storePath:  filepath.Join(dir, ".sqlforge", "store.db"),
	}
	writeFile(t, env.configPath, "strict_data: false\n")
	env.writeProject(t, starterProject())
	return env
}

func (e *testEnv) writeProject(t *testing.T, p *model.Project) {
	t.Helper()
	if err := model.SaveFile(e.project, p); err != nil {
		t.Fatalf("failed to write project: %v", err)
	}
}

// run executes the root command with the environment's config and store.
func (e *testEnv) run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"-c", e.configPath, "--store", e.storePath}, args...))
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, errOut, err := e.run(t, args...)
	if err != nil {
		t.Fatalf("%v failed: %v\nstderr: %s", args, err, errOut)
	}
	return out
}

// -----------------------------------------------------------------------------
// generate
// -----------------------------------------------------------------------------

func TestGenerateStdout(t *testing.T) {
	env := setupTestEnv(t)
	out := env.mustRun(t, "generate", env.project)

	for _, frag := range []string{
		"CREATE DATABASE IF NOT EXISTS `shop`",
		"CREATE TABLE IF NOT EXISTS `customers`",
		"CONSTRAINT `orders_customer_id_FK` FOREIGN KEY (`customer_id`) REFERENCES `customers` (`id`)",
		"CREATE PROCEDURE SPX_orders_Delete(",
		"-- Data entered for customers",
		"('Ada Lovelace', 'ada@example.com')",
	} {
		if !strings.Contains(out, frag) {
			t.Errorf("missing %q in\n%s", frag, out)
		}
	}
}

func TestGenerateDialectOverride(t *testing.T) {
	env := setupTestEnv(t)
	out := env.mustRun(t, "-d", "postgresql", "generate", env.project, "--actions", "table")

	testutil.AssertSQLContains(t, out, `CREATE TABLE IF NOT EXISTS "customers" ( "id" SERIAL PRIMARY KEY,`)
	if strings.Contains(out, "PROCEDURE") || strings.Contains(out, "FUNCTION") {
		t.Errorf("--actions table produced routines:\n%s", out)
	}
}

func TestGenerateToFile(t *testing.T) {
	env := setupTestEnv(t)
	target := filepath.Join(env.dir, "out", "schema.sql")
	_, errOut, err := env.run(t, "generate", env.project, "--actions", "table", "-o", target)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if strings.Count(string(data), "CREATE TABLE") != 2 {
		t.Errorf("expected two tables:\n%s", data)
	}
	if !strings.Contains(errOut, "wrote 2 blocks (mysql)") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestGenerateUnknownAction(t *testing.T) {
	env := setupTestEnv(t)
	_, _, err := env.run(t, "generate", env.project, "--actions", "tabel")
	testutil.AssertError(t, err, alerr.ErrUnknownAction)
}

func TestGenerateMissingProject(t *testing.T) {
	env := setupTestEnv(t)
	_, _, err := env.run(t, "generate", filepath.Join(env.dir, "nope.json"))
	testutil.AssertError(t, err, alerr.ErrProjectNotFound)
}

func TestGenerateReportsDiagnostics(t *testing.T) {
	env := setupTestEnv(t)
	env.writeProject(t, &model.Project{
		DBMS: "mysql",
		Tables: []model.Table{{
			Name:    "tags",
			Columns: []model.Column{{Name: "id", SQLType: "INT", IsPrimaryKey: true}},
		}},
	})
	out, errOut, err := env.run(t, "generate", env.project, "--actions", "update")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "-- Cannot generate SPX_tags_Update") {
		t.Errorf("stdout = %q", out)
	}
	if !strings.Contains(errOut, "script contains 1 diagnostic") {
		t.Errorf("stderr = %q", errOut)
	}
}

// -----------------------------------------------------------------------------
// history
// -----------------------------------------------------------------------------

func TestGenerateHistory(t *testing.T) {
	env := setupTestEnv(t)
	env.mustRun(t, "generate", env.project, "--history")
	env.mustRun(t, "generate", env.project, "--history")

	var entries []map[string]any
	if err := json.Unmarshal([]byte(env.mustRun(t, "history", "list", "--json")), &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("identical scripts recorded %d times", len(entries))
	}
	if entries[0]["project_name"] != "shop" || entries[0]["dialect"] != "mysql" {
		t.Errorf("entry = %v", entries[0])
	}

	list := env.mustRun(t, "history", "list")
	if !strings.Contains(list, "shop") || !strings.Contains(list, "FINGERPRINT") {
		t.Errorf("history list =\n%s", list)
	}

	show := env.mustRun(t, "history", "show", "1")
	if !strings.Contains(show, "CREATE TABLE IF NOT EXISTS `orders`") {
		t.Errorf("history show =\n%s", show)
	}

	if _, stderr, _ := env.run(t, "history", "show", "1"); !strings.Contains(stderr, "dialect: mysql") {
		t.Errorf("history show metadata =\n%s", stderr)
	}

	env.mustRun(t, "generate", env.project, "--history", "-d", "postgresql")
	if out := env.mustRun(t, "history", "delete", "1"); !strings.Contains(out, "deleted history entry 1") {
		t.Errorf("history delete = %q", out)
	}
	if _, _, err := env.run(t, "history", "delete", "1"); !alerr.Is(err, alerr.ErrStoreRead) {
		t.Errorf("second delete error = %v", err)
	}

	env.mustRun(t, "history", "clear")
	if out := env.mustRun(t, "history", "list"); !strings.Contains(out, "No scripts recorded") {
		t.Errorf("after clear: %q", out)
	}
}

func TestHistoryShowInvalidID(t *testing.T) {
	env := setupTestEnv(t)
	for _, arg := range []string{"abc", "0", "-3"} {
		if _, _, err := env.run(t, "history", "show", arg); err == nil {
			t.Errorf("expected error for id %q", arg)
		}
	}
	if _, _, err := env.run(t, "history", "show", "42"); !alerr.Is(err, alerr.ErrStoreRead) {
		t.Errorf("missing entry error = %v", err)
	}
}

// -----------------------------------------------------------------------------
// validate
// -----------------------------------------------------------------------------

func TestValidateStarterProject(t *testing.T) {
	env := setupTestEnv(t)
	out := env.mustRun(t, "validate", env.project)
	if !strings.Contains(out, "ok customers") || !strings.Contains(out, "ok orders") {
		t.Errorf("validate =\n%s", out)
	}
	if !strings.Contains(out, "2 tables checked") {
		t.Errorf("missing summary:\n%s", out)
	}
}

func TestValidateFailures(t *testing.T) {
	env := setupTestEnv(t)
	p := starterProject()
	p.Tables[1].Rows = []model.Row{{"customer_id": "1", "total": "abc"}}
	p.Tables = append(p.Tables, model.Table{
		Name:    "notes",
		Columns: []model.Column{{Name: "body", SQLType: "TEXT"}},
	})
	env.writeProject(t, p)

	out, _, err := env.run(t, "validate", env.project, "--json")
	if !errors.Is(err, errSilentExit) {
		t.Fatalf("error = %v, want silent exit", err)
	}

	var report validationReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if report.Valid || len(report.Tables) != 3 {
		t.Fatalf("report = %+v", report)
	}
	if !report.Tables[0].Valid {
		t.Errorf("customers should be valid: %+v", report.Tables[0])
	}
	if orders := report.Tables[1]; orders.Valid || len(orders.Rows) != 1 || orders.Rows[0].Column != "total" {
		t.Errorf("orders = %+v", orders)
	}
	if notes := report.Tables[2]; notes.Valid || len(notes.Errors) == 0 {
		t.Errorf("notes = %+v", notes)
	}
}

// -----------------------------------------------------------------------------
// sample
// -----------------------------------------------------------------------------

func TestSampleDeterministic(t *testing.T) {
	env := setupTestEnv(t)
	a := env.mustRun(t, "sample", env.project, "--rows", "3", "--seed", "7")
	b := env.mustRun(t, "sample", env.project, "--rows", "3", "--seed", "7")
	if a != b {
		t.Error("same seed produced different rows")
	}

	p, err := model.DecodeJSON([]byte(a))
	if err != nil {
		t.Fatal(err)
	}
	if n := len(p.Tables[0].Rows); n != 4 {
		t.Errorf("customers rows = %d, want 1 existing + 3 generated", n)
	}
}

func TestSampleWriteReplace(t *testing.T) {
	env := setupTestEnv(t)
	env.mustRun(t, "sample", env.project, "--rows", "2", "--write", "--replace")

	p, err := model.LoadFile(env.project)
	if err != nil {
		t.Fatal(err)
	}
	for _, tbl := range p.Tables {
		if len(tbl.Rows) != 2 {
			t.Errorf("%s has %d rows, want 2", tbl.Name, len(tbl.Rows))
		}
	}

	// Generated rows pass validation.
	env.mustRun(t, "validate", env.project)
}

// -----------------------------------------------------------------------------
// project
// -----------------------------------------------------------------------------

func TestProjectCommands(t *testing.T) {
	env := setupTestEnv(t)

	if out := env.mustRun(t, "project", "list"); !strings.Contains(out, "No projects stored") {
		t.Errorf("empty list = %q", out)
	}
	if out := env.mustRun(t, "project", "save", env.project); !strings.Contains(out, "saved project shop") {
		t.Errorf("save = %q", out)
	}
	if out := env.mustRun(t, "project", "list"); !strings.Contains(out, "shop") {
		t.Errorf("list = %q", out)
	}

	show := env.mustRun(t, "project", "show", "shop")
	p, err := model.DecodeJSON([]byte(show))
	if err != nil {
		t.Fatal(err)
	}
	if p.DatabaseName != "shop" || len(p.Tables) != 2 {
		t.Errorf("show = %+v", p)
	}
	if out := env.mustRun(t, "project", "show", "shop", "--yaml"); !strings.Contains(out, "database_name: shop") {
		t.Errorf("show --yaml =\n%s", out)
	}
	if out := env.mustRun(t, "project", "show", "1"); !strings.Contains(out, `"database_name": "shop"`) {
		t.Errorf("show by id =\n%s", out)
	}

	env.mustRun(t, "project", "delete", "shop")
	if _, _, err := env.run(t, "project", "show", "shop"); !alerr.Is(err, alerr.ErrProjectNotFound) {
		t.Errorf("show after delete error = %v", err)
	}
}

// -----------------------------------------------------------------------------
// dialects / init
// -----------------------------------------------------------------------------

func TestDialects(t *testing.T) {
	env := setupTestEnv(t)
	out := env.mustRun(t, "dialects")
	for _, frag := range []string{"sqlserver", "SQL Server", "mysql", "postgresql", "BOOLEAN", "TIMESTAMP"} {
		if !strings.Contains(out, frag) {
			t.Errorf("missing %q in\n%s", frag, out)
		}
	}

	var entries []struct {
		Name  string            `json:"name"`
		Types map[string]string `json:"types"`
	}
	if err := json.Unmarshal([]byte(env.mustRun(t, "dialects", "--json")), &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 || entries[1].Types["VARCHAR(MAX)"] != "TEXT" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestRunInit(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sqlforge.yaml")
	projPath := filepath.Join(dir, "project.json")

	var out bytes.Buffer
	if err := runInit(&out, cfgPath, projPath); err != nil {
		t.Fatal(err)
	}
	if strings.Count(out.String(), "Created") != 2 {
		t.Errorf("first init = %q", out.String())
	}

	out.Reset()
	if err := runInit(&out, cfgPath, projPath); err != nil {
		t.Fatal(err)
	}
	if strings.Count(out.String(), "Skipped") != 2 {
		t.Errorf("second init = %q", out.String())
	}

	configFile = cfgPath
	cfg, err := loadConfig(nil)
	if err != nil {
		t.Fatalf("starter config does not load: %v", err)
	}
	if _, err := cfg.ActionSet(); err != nil {
		t.Errorf("starter actions: %v", err)
	}
	p, err := model.LoadFile(projPath)
	if err != nil {
		t.Fatal(err)
	}
	if !validateProject(p).Valid {
		t.Errorf("starter project is invalid: %+v", validateProject(p))
	}
}
