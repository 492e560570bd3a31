// Package foodmart describes the Foodmart sample schema and streams its data
// as INSERT statements.
package foodmart

import (
	"fmt"
	"strings"

	"github.com/darianmavgo/foodmart/generators"
	"github.com/darianmavgo/foodmart/generators/common"
	"github.com/darianmavgo/foodmart/generators/csv"
)

// Tables returns the tables of the Foodmart schema in load order.
func Tables() []Table {
	out := make([]Table, len(schema))
	copy(out, schema)
	return out
}

// TableNames returns the names of the Foodmart tables in load order.
func TableNames() []string {
	names := make([]string, len(schema))
	for i, t := range schema {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the table called name.
func Lookup(name string) (Table, bool) {
	for _, t := range schema {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// TableURI returns the location of a table's CSV inside the bundled archive,
// e.g. "/csv/customer.csv".
func TableURI(tableName string) string {
	return "/csv/" + common.ResourceName(tableName)
}

// IsQuoted reports whether column holds text. Names compare case-insensitively.
func (t Table) IsQuoted(column string) bool {
	for _, q := range t.QuotedColumns {
		if strings.EqualFold(q, column) {
			return true
		}
	}
	return false
}

// GenerateInserts returns the INSERT statements for every table in tables, in
// order, read lazily from provider. No resource is opened until the iterator is
// advanced, and at most one is open at a time. A table without an entry in
// columnTypes fails the stream when it is reached.
func GenerateInserts(provider common.ResourceProvider, columnTypes common.ColumnTypes, tables []Table) *generators.Composite[string] {
	sources := make([]common.Source[string], len(tables))
	for i, t := range tables {
		name := t.Name
		sources[i] = func() (common.Iterator[string], error) {
			types, ok := columnTypes[name]
			if !ok {
				return nil, fmt.Errorf("no column types for table %s", name)
			}
			g, err := csv.NewStatementGenerator(provider, name, types)
			if err != nil {
				return nil, err
			}
			return g, nil
		}
	}
	return generators.Concat(sources...)
}

// DefaultColumnTypes derives column types from each table's CSV header: quoted
// columns are VARCHAR, everything else NUMERIC.
func DefaultColumnTypes(provider common.ResourceProvider, tables []Table) (common.ColumnTypes, error) {
	types := make(common.ColumnTypes, len(tables))
	for _, t := range tables {
		headers, err := csv.ReadHeader(provider, t.Name)
		if err != nil {
			return nil, err
		}
		colTypes := make([]common.ColumnType, len(headers))
		for i, h := range headers {
			if t.IsQuoted(h) {
				colTypes[i] = common.Varchar
			} else {
				colTypes[i] = common.Numeric
			}
		}
		types[t.Name] = colTypes
	}
	return types, nil
}
