package common

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseLine splits one CSV line into fields.
//
// This is a deliberately small dialect: a double quote toggles quoting and is
// dropped from the field, commas inside quotes do not split, there is no ""
// escape and a record never spans lines.
func ParseLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	return append(fields, current.String())
}

// EncodeLine is the inverse of ParseLine. Fields holding a comma are quoted.
// A field containing a double quote or a line break has no representation in
// the dialect and yields ErrUnencodable.
func EncodeLine(fields []string) (string, error) {
	var b strings.Builder
	for i, field := range fields {
		if strings.ContainsAny(field, "\"\r\n") {
			return "", fmt.Errorf("%w: field %d %q", ErrUnencodable, i, field)
		}
		if i > 0 {
			b.WriteByte(',')
		}
		if strings.IndexByte(field, ',') != -1 {
			b.WriteByte('"')
			b.WriteString(field)
			b.WriteByte('"')
		} else {
			b.WriteString(field)
		}
	}
	return b.String(), nil
}

// ResourceName is the file name of the resource holding a table's rows.
func ResourceName(tableName string) string {
	return strings.ToLower(tableName) + ".csv"
}

// ReadLine returns the next line from r without its terminator. A line ends at
// "\n", "\r" or "\r\n", and the last line need not be terminated. At end of
// input it returns io.EOF.
func ReadLine(r *bufio.Reader) (string, error) {
	var line []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				return string(line), nil
			}
			return "", err
		}
		switch c {
		case '\n':
			return string(line), nil
		case '\r':
			if next, err := r.Peek(1); err == nil && next[0] == '\n' {
				r.ReadByte()
			}
			return string(line), nil
		}
		line = append(line, c)
	}
}

// IsBlank reports whether line holds nothing but control characters and
// spaces (bytes up to 0x20).
func IsBlank(line string) bool {
	for i := 0; i < len(line); i++ {
		if line[i] > ' ' {
			return false
		}
	}
	return true
}
