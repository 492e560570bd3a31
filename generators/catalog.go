package generators

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/darianmavgo/foodmart/generators/common"
)

// TableDef describes a table to create before loading.
type TableDef struct {
	Name    string
	Columns []string
	Types   []common.ColumnType
}

// ReadColumnTypes returns the column type tags of every user table in db, in
// column order. Declared types are mapped with common.ColumnTypeForDecl.
func ReadColumnTypes(ctx context.Context, db *sql.DB) (common.ColumnTypes, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT name FROM sqlite_master
		 WHERE type = 'table' AND name NOT LIKE 'sqlite_%' AND name <> '_foodmart_errors'
		 ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	rows.Close()

	types := make(common.ColumnTypes, len(tables))
	for _, table := range tables {
		colTypes, err := readTableColumnTypes(ctx, db, table)
		if err != nil {
			return nil, err
		}
		types[table] = colTypes
	}
	return types, nil
}

func readTableColumnTypes(ctx context.Context, db *sql.DB, table string) ([]common.ColumnType, error) {
	rows, err := db.QueryContext(ctx, `SELECT type FROM pragma_table_info(?) ORDER BY cid`, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	defer rows.Close()

	var colTypes []common.ColumnType
	for rows.Next() {
		var decl string
		if err := rows.Scan(&decl); err != nil {
			return nil, fmt.Errorf("failed to scan column of %s: %w", table, err)
		}
		colTypes = append(colTypes, common.ColumnTypeForDecl(decl))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	return colTypes, nil
}

// CreateTables creates each table that does not exist yet.
func CreateTables(ctx context.Context, db *sql.DB, defs []TableDef, verbose bool) error {
	for _, def := range defs {
		ddl, err := common.GenCreateTableSQLWithTypes(def.Name, def.Columns, def.Types)
		if err != nil {
			return fmt.Errorf("failed to generate DDL for table %s: %w", def.Name, err)
		}
		if verbose {
			log.Printf("[FOODMART] Creating table: %s", ddl)
		}
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create table %s: %w", def.Name, err)
		}
	}
	return nil
}
