package common

import (
	"fmt"
	"strings"
)

// ColumnType tags a column with the way its raw CSV text is rendered as a SQL literal.
type ColumnType int

const (
	Varchar ColumnType = iota + 1
	Char
	LongVarchar
	Date
	Timestamp
	Boolean
	TinyInt
	SmallInt
	Integer
	BigInt
	Real
	Float
	Double
	Decimal
	Numeric
)

// Kind groups column types by literal rendering.
type Kind int

const (
	KindNumeric Kind = iota
	KindText
	KindBoolean
)

var typeNames = map[ColumnType]string{
	Varchar:     "VARCHAR",
	Char:        "CHAR",
	LongVarchar: "LONGVARCHAR",
	Date:        "DATE",
	Timestamp:   "TIMESTAMP",
	Boolean:     "BOOLEAN",
	TinyInt:     "TINYINT",
	SmallInt:    "SMALLINT",
	Integer:     "INTEGER",
	BigInt:      "BIGINT",
	Real:        "REAL",
	Float:       "FLOAT",
	Double:      "DOUBLE",
	Decimal:     "DECIMAL",
	Numeric:     "NUMERIC",
}

// typeAliases maps declared SQL type names (without length or precision) to tags.
var typeAliases = map[string]ColumnType{
	"VARCHAR":           Varchar,
	"VARCHAR2":          Varchar,
	"NVARCHAR":          Varchar,
	"CHARACTER VARYING": Varchar,
	"TEXT":              Varchar,
	"CLOB":              LongVarchar,
	"LONGVARCHAR":       LongVarchar,
	"LONG VARCHAR":      LongVarchar,
	"CHAR":              Char,
	"CHARACTER":         Char,
	"NCHAR":             Char,
	"DATE":              Date,
	"TIMESTAMP":         Timestamp,
	"DATETIME":          Timestamp,
	"BOOLEAN":           Boolean,
	"BOOL":              Boolean,
	"TINYINT":           TinyInt,
	"SMALLINT":          SmallInt,
	"INT":               Integer,
	"INTEGER":           Integer,
	"BIGINT":            BigInt,
	"REAL":              Real,
	"FLOAT":             Float,
	"DOUBLE":            Double,
	"DOUBLE PRECISION":  Double,
	"DECIMAL":           Decimal,
	"NUMERIC":           Numeric,
}

func (t ColumnType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ColumnType(%d)", int(t))
}

// Kind returns the rendering group of t. Anything not text-like or boolean is numeric.
func (t ColumnType) Kind() Kind {
	switch t {
	case Varchar, Char, LongVarchar, Date, Timestamp:
		return KindText
	case Boolean:
		return KindBoolean
	default:
		return KindNumeric
	}
}

// normalizeDecl upper-cases a declared type and strips "(n)" / "(p,s)" suffixes.
func normalizeDecl(decl string) string {
	decl = strings.ToUpper(strings.TrimSpace(decl))
	if idx := strings.IndexByte(decl, '('); idx != -1 {
		decl = decl[:idx]
	}
	return strings.Join(strings.Fields(decl), " ")
}

// ParseColumnType parses a declared SQL type name such as "VARCHAR(30)" or "decimal(10,4)".
func ParseColumnType(decl string) (ColumnType, error) {
	if t, ok := typeAliases[normalizeDecl(decl)]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown column type %q", decl)
}

// ColumnTypeForDecl maps a declared type the way SQLite assigns column affinity
// when the name is not one ParseColumnType knows: names containing CHAR, CLOB or
// TEXT are text, everything else is numeric.
func ColumnTypeForDecl(decl string) ColumnType {
	if t, err := ParseColumnType(decl); err == nil {
		return t
	}
	upper := normalizeDecl(decl)
	for _, s := range []string{"CHAR", "CLOB", "TEXT"} {
		if strings.Contains(upper, s) {
			return Varchar
		}
	}
	return Numeric
}

// ParseColumnTypes parses a list of declared type names.
func ParseColumnTypes(decls []string) ([]ColumnType, error) {
	types := make([]ColumnType, len(decls))
	for i, decl := range decls {
		t, err := ParseColumnType(decl)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		types[i] = t
	}
	return types, nil
}
