package model

import "testing"

func usersTable() *Table {
	id := NewColumn("id", "INT")
	id.IsPrimaryKey = true
	id.IsAutoIncrement = true
	id.Nullable = false

	return &Table{
		Name: "users",
		Columns: []Column{
			id,
			NewColumn("name", "VARCHAR(100)"),
			{Name: "role_id", SQLType: "INT", Nullable: true, ForeignKeyTable: "roles", ForeignKeyColumn: "id"},
		},
	}
}

func TestNewColumnDefaults(t *testing.T) {
	c := NewColumn("email", "VARCHAR(255)")
	if !c.Nullable {
		t.Error("new columns should be nullable")
	}
	if c.IsPrimaryKey || c.IsAutoIncrement {
		t.Error("new columns should not be keys")
	}
	if c.HasForeignKey() {
		t.Error("new columns should not have a foreign key")
	}
}

func TestColumnHasForeignKey(t *testing.T) {
	tests := []struct {
		name string
		col  Column
		want bool
	}{
		{"both set", Column{ForeignKeyTable: "roles", ForeignKeyColumn: "id"}, true},
		{"table only", Column{ForeignKeyTable: "roles"}, false},
		{"column only", Column{ForeignKeyColumn: "id"}, false},
		{"neither", Column{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.col.HasForeignKey(); got != tt.want {
				t.Errorf("HasForeignKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTablePrimaryKeys(t *testing.T) {
	tbl := usersTable()

	pks := tbl.PrimaryKeys()
	if len(pks) != 1 || pks[0].Name != "id" {
		t.Fatalf("PrimaryKeys() = %+v, want [id]", pks)
	}

	pk, ok := tbl.PrimaryKey()
	if !ok || pk.Name != "id" {
		t.Errorf("PrimaryKey() = %+v, %v", pk, ok)
	}
	if !tbl.HasAutoIncrementKey() {
		t.Error("HasAutoIncrementKey() = false, want true")
	}

	empty := &Table{Name: "logs", Columns: []Column{NewColumn("msg", "TEXT")}}
	if len(empty.PrimaryKeys()) != 0 {
		t.Error("table without keys should report none")
	}
	if _, ok := empty.PrimaryKey(); ok {
		t.Error("PrimaryKey() should report false without keys")
	}
}

func TestTableColumn(t *testing.T) {
	tbl := usersTable()

	if c, ok := tbl.Column("name"); !ok || c.SQLType != "VARCHAR(100)" {
		t.Errorf("Column(name) = %+v, %v", c, ok)
	}
	if _, ok := tbl.Column("missing"); ok {
		t.Error("Column(missing) should not be found")
	}
}

func TestProjectLookups(t *testing.T) {
	p := &Project{DatabaseName: "  shop ", Tables: []Table{*usersTable()}}

	if p.Table("users") == nil {
		t.Error("Table(users) should be found")
	}
	if p.Table("orders") != nil {
		t.Error("Table(orders) should be nil")
	}
	if got := p.StoreName(); got != "shop" {
		t.Errorf("StoreName() = %q, want %q", got, "shop")
	}

	p.DatabaseName = "   "
	if got := p.StoreName(); got != "default" {
		t.Errorf("StoreName() = %q, want %q", got, "default")
	}
}
