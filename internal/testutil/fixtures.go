package testutil

import "github.com/hlop3z/sqlforge/internal/model"

// UsersTable is the smallest complete table: an auto-increment key and one
// required text column.
func UsersTable() *model.Table {
	return &model.Table{
		Name: "users",
		Columns: []model.Column{
			{Name: "id", SQLType: "INT", IsPrimaryKey: true, IsAutoIncrement: true},
			{Name: "email", SQLType: "VARCHAR(100)"},
		},
	}
}

// OrdersTable references users and covers the mapped types: a BIGINT
// identity, VARCHAR(MAX) and a timestamp with a default.
func OrdersTable() *model.Table {
	return &model.Table{
		Name: "orders",
		Columns: []model.Column{
			{Name: "id", SQLType: "BIGINT", IsPrimaryKey: true, IsAutoIncrement: true},
			{Name: "user_id", SQLType: "INT", ForeignKeyTable: "users", ForeignKeyColumn: "id"},
			{Name: "note", SQLType: "VARCHAR(MAX)", Nullable: true},
			{Name: "created_at", SQLType: "DATETIME", Nullable: true},
		},
	}
}

// ShopProject is a "shop" database with the users and orders tables.
func ShopProject(dbms string) *model.Project {
	return &model.Project{
		DatabaseName: "shop",
		DBMS:         dbms,
		Tables:       []model.Table{*UsersTable(), *OrdersTable()},
	}
}
