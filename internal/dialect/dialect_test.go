package dialect

import (
	"strings"
	"testing"
)

// -----------------------------------------------------------------------------
// Lookup Tests
// -----------------------------------------------------------------------------

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  Name
	}{
		// Canonical and display forms
		{"sqlserver", SQLServer},
		{"mysql", MySQL},
		{"postgresql", PostgreSQL},
		{"SQL Server", SQLServer},
		{"MySQL", MySQL},
		{"PostgreSQL", PostgreSQL},

		// Lenient spellings
		{" mysql ", MySQL},
		{"POSTGRESQL", PostgreSQL},
		{"postgres", PostgreSQL},
		{"mssql", SQLServer},

		// Fail-open fallback
		{"", SQLServer},
		{"oracle", SQLServer},
		{"sqlite", SQLServer},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	if _, ok := Parse("oracle"); ok {
		t.Error("Parse(oracle) should fail")
	}
	if n, ok := Parse("MySQL"); !ok || n != MySQL {
		t.Errorf("Parse(MySQL) = %q, %v", n, ok)
	}
}

func TestGetNeverNil(t *testing.T) {
	for _, name := range []string{"", "mysql", "PostgreSQL", "SQL Server", "???"} {
		d := Get(name)
		if d == nil {
			t.Fatalf("Get(%q) returned nil", name)
		}
		if d.Name() != Normalize(name) {
			t.Errorf("Get(%q).Name() = %q, want %q", name, d.Name(), Normalize(name))
		}
	}
}

func TestNamesAndDisplayNames(t *testing.T) {
	want := map[Name]string{
		SQLServer:  "SQL Server",
		MySQL:      "MySQL",
		PostgreSQL: "PostgreSQL",
	}

	if got := Names(); len(got) != 3 {
		t.Fatalf("Names() = %v", got)
	}
	for i, d := range All() {
		if string(d.Name()) != Names()[i] {
			t.Errorf("All()[%d] = %q, want %q", i, d.Name(), Names()[i])
		}
		if d.DisplayName() != want[d.Name()] {
			t.Errorf("%s.DisplayName() = %q, want %q", d.Name(), d.DisplayName(), want[d.Name()])
		}
		// Display names round-trip through Normalize.
		if Normalize(d.DisplayName()) != d.Name() {
			t.Errorf("Normalize(%q) != %q", d.DisplayName(), d.Name())
		}
	}
}

// -----------------------------------------------------------------------------
// Identifier Tests
// -----------------------------------------------------------------------------

func TestQuoteIdent(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{SQLServerDialect(), "[users]"},
		{MySQLDialect(), "`users`"},
		{Postgres(), `"users"`},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect.Name()), func(t *testing.T) {
			if got := tt.dialect.QuoteIdent("users"); got != tt.want {
				t.Errorf("QuoteIdent(users) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuoteIdentNoEscaping(t *testing.T) {
	if got := SQLServerDialect().QuoteIdent("a]b"); got != "[a]b]" {
		t.Errorf("QuoteIdent(a]b) = %q", got)
	}
	if got := Postgres().QuoteIdent(`a"b`); got != `"a"b"` {
		t.Errorf("QuoteIdent(a\"b) = %q", got)
	}
}

func TestParams(t *testing.T) {
	p := Param{Column: "email", Type: "VARCHAR(100)"}

	tests := []struct {
		dialect Dialect
		ref     string
		decl    string
	}{
		{SQLServerDialect(), "@email", "@email VARCHAR(100)"},
		{MySQLDialect(), "p_email", "IN p_email VARCHAR(100)"},
		{Postgres(), "p_email", "p_email VARCHAR(100)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect.Name()), func(t *testing.T) {
			if got := tt.dialect.ParamRef("email"); got != tt.ref {
				t.Errorf("ParamRef() = %q, want %q", got, tt.ref)
			}
			if got := tt.dialect.ParamDecl(p); got != tt.decl {
				t.Errorf("ParamDecl() = %q, want %q", got, tt.decl)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// Type Mapping Tests
// -----------------------------------------------------------------------------

func TestMapType(t *testing.T) {
	tests := []struct {
		input                    string
		sqlserver, mysql, postgr string
	}{
		{"VARCHAR(MAX)", "VARCHAR(MAX)", "TEXT", "TEXT"},
		{"nvarchar(max)", "nvarchar(max)", "TEXT", "TEXT"},
		{"DATETIME2", "DATETIME2", "DATETIME", "TIMESTAMP"},
		{"DATETIME", "DATETIME", "DATETIME", "TIMESTAMP"},
		{"datetime", "datetime", "datetime", "TIMESTAMP"},
		{"BIT", "BIT", "BIT", "BOOLEAN"},
		{"bit", "bit", "bit", "BOOLEAN"},
		{"BIT(8)", "BIT(8)", "BIT(8)", "BIT(8)"},
		{"INT", "INT", "INT", "INT"},
		{"VARCHAR(50)", "VARCHAR(50)", "VARCHAR(50)", "VARCHAR(50)"},
		{"Decimal(10,2)", "Decimal(10,2)", "Decimal(10,2)", "Decimal(10,2)"},
	}

	ss, my, pg := SQLServerDialect(), MySQLDialect(), Postgres()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ss.MapType(tt.input); got != tt.sqlserver {
				t.Errorf("sqlserver MapType(%q) = %q, want %q", tt.input, got, tt.sqlserver)
			}
			if got := my.MapType(tt.input); got != tt.mysql {
				t.Errorf("mysql MapType(%q) = %q, want %q", tt.input, got, tt.mysql)
			}
			if got := pg.MapType(tt.input); got != tt.postgr {
				t.Errorf("postgresql MapType(%q) = %q, want %q", tt.input, got, tt.postgr)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// Value Formatting Tests
// -----------------------------------------------------------------------------

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		typ  string
		want string
	}{
		{"empty", "", "INT", "NULL"},
		{"blank", "   ", "VARCHAR(10)", "NULL"},
		{"null", "NULL", "VARCHAR(10)", "NULL"},
		{"null lowercase padded", " null ", "INT", "NULL"},
		{"auto", "(AUTO)", "INT", "NULL"},
		{"integer", "42", "INT", "42"},
		{"decimal", "10.5", "DECIMAL(10,2)", "10.5"},
		{"varchar", "Ann", "VARCHAR(50)", "'Ann'"},
		{"escaped quote", "O'Brien", "VARCHAR(50)", "'O''Brien'"},
		{"text", "it's 'x'", "TEXT", "'it''s ''x'''"},
		{"date", "2024-01-31", "DATE", "'2024-01-31'"},
		{"datetime2", "2024-01-31 10:00:00", "DATETIME2", "'2024-01-31 10:00:00'"},
		{"uuid", "abc", "UUID", "'abc'"},
		{"bit", "1", "BIT", "'1'"},
		{"boolean", "true", "boolean", "'true'"},
		{"nchar", "x", "nchar(2)", "'x'"},
	}

	for _, d := range All() {
		for _, tt := range tests {
			t.Run(string(d.Name())+"/"+tt.name, func(t *testing.T) {
				if got := d.FormatValue(tt.raw, tt.typ); got != tt.want {
					t.Errorf("FormatValue(%q, %q) = %q, want %q", tt.raw, tt.typ, got, tt.want)
				}
			})
		}
	}
}

// -----------------------------------------------------------------------------
// DDL Tests
// -----------------------------------------------------------------------------

func TestDatabaseHeader(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{SQLServerDialect(), "IF NOT EXISTS (SELECT * FROM sys.databases WHERE name = 'shop')\nBEGIN\n    CREATE DATABASE [shop];\nEND\nGO\n\nUSE [shop];\nGO"},
		{MySQLDialect(), "CREATE DATABASE IF NOT EXISTS `shop`;\nUSE `shop`;"},
		{Postgres(), "SELECT 'CREATE DATABASE \"shop\"' WHERE NOT EXISTS (SELECT FROM pg_database WHERE datname = 'shop')\\gexec\n\\c shop;"},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect.Name()), func(t *testing.T) {
			if got := tt.dialect.DatabaseHeader("shop"); got != tt.want {
				t.Errorf("DatabaseHeader() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestAutoIncrement(t *testing.T) {
	tests := []struct {
		dialect    Dialect
		input      string
		wantType   string
		wantClause string
	}{
		{SQLServerDialect(), "INT", "INT", "IDENTITY(1,1)"},
		{MySQLDialect(), "BIGINT", "BIGINT", "AUTO_INCREMENT"},
		{Postgres(), "INT", "SERIAL", ""},
		{Postgres(), "bigint", "BIGSERIAL", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect.Name())+"/"+tt.input, func(t *testing.T) {
			typ, clause := tt.dialect.AutoIncrement(tt.input)
			if typ != tt.wantType || clause != tt.wantClause {
				t.Errorf("AutoIncrement(%q) = (%q, %q), want (%q, %q)", tt.input, typ, clause, tt.wantType, tt.wantClause)
			}
		})
	}

	if got := SQLServerDialect().CurrentTimestampDefault(); got != "DEFAULT GETDATE()" {
		t.Errorf("sqlserver CurrentTimestampDefault() = %q", got)
	}
	if got := Postgres().CurrentTimestampDefault(); got != "DEFAULT CURRENT_TIMESTAMP" {
		t.Errorf("postgresql CurrentTimestampDefault() = %q", got)
	}
}

func TestTableWrapperDistinctPerDialect(t *testing.T) {
	body := "    col INT"
	seen := make(map[string]Name)

	for _, d := range All() {
		out := d.TableWrapper(d.QuoteIdent("t"), body)
		if other, dup := seen[out]; dup {
			t.Errorf("%s and %s produce the same CREATE TABLE wrapper", d.Name(), other)
		}
		seen[out] = d.Name()
	}

	if got := SQLServerDialect().TableWrapper("[t]", body); got != "CREATE TABLE [t] (\n    col INT\n);\nGO" {
		t.Errorf("sqlserver TableWrapper() = %q", got)
	}
	if got := MySQLDialect().TableWrapper("`t`", body); got != "CREATE TABLE IF NOT EXISTS `t` (\n    col INT\n);" {
		t.Errorf("mysql TableWrapper() = %q", got)
	}
}

// -----------------------------------------------------------------------------
// Routine Tests
// -----------------------------------------------------------------------------

func TestRoutineWrapper(t *testing.T) {
	withParams := Routine{
		Name:   "SPX_users_Delete",
		Kind:   Command,
		Table:  "users",
		Params: []Param{{Column: "id", Type: "INT"}},
		Body:   []string{"DELETE FROM t WHERE id = x;"},
	}
	noParams := Routine{
		Name:  "SPX_users_SelectAll",
		Kind:  Query,
		Table: "users",
		Body:  []string{"SELECT * FROM t;"},
	}

	tests := []struct {
		name    string
		dialect Dialect
		routine Routine
		want    string
	}{
		{
			"sqlserver params", SQLServerDialect(), withParams,
			"CREATE PROCEDURE SPX_users_Delete\n    @id INT\nAS\nBEGIN\n    DELETE FROM t WHERE id = x;\nEND\nGO",
		},
		{
			"sqlserver no params", SQLServerDialect(), noParams,
			"CREATE PROCEDURE SPX_users_SelectAll\nAS\nBEGIN\n    SELECT * FROM t;\nEND\nGO",
		},
		{
			"mysql params", MySQLDialect(), withParams,
			"DELIMITER $$\nCREATE PROCEDURE SPX_users_Delete(\n    IN p_id INT\n)\nBEGIN\n    DELETE FROM t WHERE id = x;\nEND $$\nDELIMITER ;",
		},
		{
			"mysql no params", MySQLDialect(), noParams,
			"DELIMITER $$\nCREATE PROCEDURE SPX_users_SelectAll()\nBEGIN\n    SELECT * FROM t;\nEND $$\nDELIMITER ;",
		},
		{
			"postgres procedure", Postgres(), withParams,
			"CREATE OR REPLACE PROCEDURE SPX_users_Delete(\n    p_id INT\n)\nLANGUAGE plpgsql\nAS $$\nBEGIN\n    DELETE FROM t WHERE id = x;\nEND;\n$$;",
		},
		{
			"postgres function", Postgres(), noParams,
			"CREATE OR REPLACE FUNCTION SPX_users_SelectAll()\nRETURNS SETOF \"users\"\nLANGUAGE sql\nAS $$\n    SELECT * FROM t;\n$$;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.RoutineWrapper(tt.routine); got != tt.want {
				t.Errorf("RoutineWrapper() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestRoutineWrapperMultiLineBody(t *testing.T) {
	r := Routine{
		Name:   "SPX_t_Insert",
		Params: []Param{{Column: "a", Type: "INT"}, {Column: "b", Type: "TEXT"}},
		Body:   []string{"INSERT INTO t (a, b)", "VALUES (@a, @b);"},
	}
	got := SQLServerDialect().RoutineWrapper(r)
	if !strings.Contains(got, "    @a INT,\n    @b TEXT\nAS") {
		t.Errorf("params not one per line:\n%s", got)
	}
	if !strings.Contains(got, "BEGIN\n    INSERT INTO t (a, b)\n    VALUES (@a, @b);\nEND") {
		t.Errorf("body not indented:\n%s", got)
	}
}

func TestInsertDefaultValues(t *testing.T) {
	if got := SQLServerDialect().InsertDefaultValues("[t]"); got != "INSERT INTO [t] DEFAULT VALUES;" {
		t.Errorf("sqlserver = %q", got)
	}
	if got := MySQLDialect().InsertDefaultValues("`t`"); got != "INSERT INTO `t` () VALUES ();" {
		t.Errorf("mysql = %q", got)
	}
}

func TestWriteList(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		want string
	}{
		{"mysql idents", MySQLDialect().QuoteIdent, "`a`, `b`"},
		{"sqlserver params", SQLServerDialect().ParamRef, "@a, @b"},
		{"mysql params", MySQLDialect().ParamRef, "p_a, p_b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			WriteList(&b, []string{"a", "b"}, tt.fn)
			if got := b.String(); got != tt.want {
				t.Errorf("WriteList() = %q, want %q", got, tt.want)
			}
		})
	}
}
