package common

import (
	"fmt"
	"strings"
)

// QuoteIdent wraps a table or column name in double quotes, doubling any embedded quote.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QuoteLiteral wraps s in single quotes, doubling any embedded single quote.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// FormatLiteral renders one raw CSV field as a SQL literal.
// An empty field is NULL whatever the column type.
func FormatLiteral(value string, t ColumnType) string {
	if value == "" {
		return "NULL"
	}
	switch t.Kind() {
	case KindText:
		return QuoteLiteral(value)
	case KindBoolean:
		if strings.EqualFold(value, "TRUE") {
			return "TRUE"
		}
		return "FALSE"
	default:
		return value
	}
}

// GenInsertStmt generates `INSERT INTO "table" VALUES(...)` for one row.
// values and types must have the same length.
func GenInsertStmt(table string, values []string, types []ColumnType) string {
	var b strings.Builder
	b.Grow(len(table) + 24 + len(values)*12)

	b.WriteString("INSERT INTO ")
	b.WriteString(QuoteIdent(table))
	b.WriteString(" VALUES(")
	for i, value := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(FormatLiteral(value, types[i]))
	}
	b.WriteByte(')')
	return b.String()
}

// GenCreateTableSQLWithTypes generates a CREATE TABLE IF NOT EXISTS statement.
func GenCreateTableSQLWithTypes(tableName string, columnNames []string, colTypes []ColumnType) (string, error) {
	if tableName == "" || len(columnNames) == 0 {
		return "", fmt.Errorf("table name and columns are required")
	}
	if len(columnNames) != len(colTypes) {
		return "", fmt.Errorf("%w: table %s has %d columns and %d types",
			ErrColumnCountMismatch, tableName, len(columnNames), len(colTypes))
	}

	var builder strings.Builder
	builder.Grow(len(tableName) + len(columnNames)*20)

	builder.WriteString("CREATE TABLE IF NOT EXISTS ")
	builder.WriteString(QuoteIdent(tableName))
	builder.WriteString(" (")
	for i, name := range columnNames {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(QuoteIdent(name))
		builder.WriteByte(' ')
		builder.WriteString(colTypes[i].String())
	}
	builder.WriteByte(')')
	return builder.String(), nil
}
