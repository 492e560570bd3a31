// Package csv turns a table's CSV resource into a lazy stream of INSERT statements.
package csv

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/darianmavgo/foodmart/generators/common"
)

// StatementGenerator reads one CSV resource and yields one INSERT statement per
// non-blank data line. It holds one statement of lookahead and closes the
// resource exactly once: at end of input, on error, or on Close.
type StatementGenerator struct {
	tableName   string
	columnTypes []common.ColumnType
	headers     []string

	rc     io.ReadCloser
	reader *bufio.Reader
	line   int
	closed bool

	next     string
	buffered bool
	err      error
}

// Ensure StatementGenerator implements Iterator
var _ common.Iterator[string] = (*StatementGenerator)(nil)

// NewStatementGenerator opens the resource for tableName from provider, reads
// the header line and buffers the first statement.
func NewStatementGenerator(provider common.ResourceProvider, tableName string, columnTypes []common.ColumnType) (*StatementGenerator, error) {
	rc, err := provider.OpenResource(tableName)
	if err != nil {
		return nil, err
	}
	return NewStatementGeneratorFromReader(rc, tableName, columnTypes)
}

// NewStatementGeneratorFromReader is like NewStatementGenerator for an already
// open resource. The generator takes ownership of rc.
func NewStatementGeneratorFromReader(rc io.ReadCloser, tableName string, columnTypes []common.ColumnType) (*StatementGenerator, error) {
	g := &StatementGenerator{
		tableName:   tableName,
		columnTypes: columnTypes,
		rc:          rc,
		reader:      bufio.NewReaderSize(rc, 65536),
	}

	header, err := g.readLine()
	if err != nil {
		g.closeQuietly()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", common.ErrMissingHeader, common.ResourceName(tableName))
		}
		return nil, g.readError(err)
	}
	g.headers = common.ParseLine(header)

	if err := g.advance(); err != nil {
		return nil, err
	}
	return g, nil
}

// TableName returns the table the statements insert into.
func (g *StatementGenerator) TableName() string {
	return g.tableName
}

// Headers returns the column names from the header line.
func (g *StatementGenerator) Headers() []string {
	return g.headers
}

// HasNext reports whether a statement is buffered.
func (g *StatementGenerator) HasNext() bool {
	return g.buffered
}

// Next returns the buffered statement and reads ahead to the next one.
// A failure while reading ahead is reported by Err, and HasNext returns false.
func (g *StatementGenerator) Next() (string, error) {
	if !g.buffered {
		if g.err != nil {
			return "", g.err
		}
		return "", common.ErrExhausted
	}
	result := g.next
	g.err = g.advance()
	return result, nil
}

// Err returns the error that ended the stream early, if any.
func (g *StatementGenerator) Err() error {
	return g.err
}

// Close releases the resource. Only the first call closes it.
func (g *StatementGenerator) Close() error {
	g.next, g.buffered = "", false
	if g.closed {
		return nil
	}
	g.closed = true
	return g.rc.Close()
}

func (g *StatementGenerator) closeQuietly() {
	_ = g.Close()
}

// advance buffers the statement for the next non-blank line, or closes the
// resource at end of input.
func (g *StatementGenerator) advance() error {
	g.next, g.buffered = "", false
	if g.closed {
		return nil
	}

	for {
		line, err := g.readLine()
		if errors.Is(err, io.EOF) {
			if err := g.Close(); err != nil {
				return g.readError(err)
			}
			return nil
		}
		if err != nil {
			g.closeQuietly()
			return g.readError(err)
		}
		if common.IsBlank(line) {
			continue
		}

		stmt, err := g.generate(line)
		if err != nil {
			g.closeQuietly()
			return err
		}
		g.next, g.buffered = stmt, true
		return nil
	}
}

func (g *StatementGenerator) readLine() (string, error) {
	s, err := common.ReadLine(g.reader)
	if err != nil {
		return "", err
	}
	g.line++
	return s, nil
}

func (g *StatementGenerator) generate(line string) (string, error) {
	values := common.ParseLine(line)
	if len(values) != len(g.columnTypes) {
		return "", &common.RowError{
			Table: g.tableName,
			Line:  g.line,
			Err: fmt.Errorf("%w: %d fields, %d column types",
				common.ErrColumnCountMismatch, len(values), len(g.columnTypes)),
		}
	}
	return common.GenInsertStmt(g.tableName, values, g.columnTypes), nil
}

func (g *StatementGenerator) readError(err error) error {
	return fmt.Errorf("%w: %s: %w", common.ErrResourceRead, common.ResourceName(g.tableName), err)
}

// ReadHeader opens the resource for tableName and returns its header columns.
func ReadHeader(provider common.ResourceProvider, tableName string) ([]string, error) {
	rc, err := provider.OpenResource(tableName)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	s, err := common.ReadLine(bufio.NewReader(rc))
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", common.ErrMissingHeader, common.ResourceName(tableName))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrResourceRead, common.ResourceName(tableName), err)
	}
	return common.ParseLine(s), nil
}
