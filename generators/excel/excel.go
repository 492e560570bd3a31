// Package excel serves table resources from the sheets of an Excel workbook.
package excel

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/darianmavgo/foodmart/generators"
	"github.com/darianmavgo/foodmart/generators/common"

	"github.com/xuri/excelize/v2"
)

func init() {
	generators.Register("excel", &excelDriver{})
}

type excelDriver struct{}

func (d *excelDriver) Open(location string, config *common.ProviderConfig) (common.ResourceProvider, error) {
	return NewExcelProvider(location, config)
}

// ExcelProvider maps each table to the sheet of the same name (case-insensitive).
// The first row of a sheet is the header.
type ExcelProvider struct {
	file       *excelize.File
	sheetMap   map[string]string // lowercase table name to sheet name
	date1904   bool
	dateStyles map[int]bool // style ID to whether it formats a date or time
	verbose    bool
}

// Ensure ExcelProvider implements ResourceProvider
var _ common.ResourceProvider = (*ExcelProvider)(nil)

// Ensure ExcelProvider implements io.Closer
var _ io.Closer = (*ExcelProvider)(nil)

// NewExcelProvider opens the workbook at path.
func NewExcelProvider(path string, config *common.ProviderConfig) (*ExcelProvider, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	sheetMap := make(map[string]string, len(sheets))
	for _, sheet := range sheets {
		sheetMap[strings.ToLower(sheet)] = sheet
	}

	props, err := f.GetWorkbookProps()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read workbook properties: %w", err)
	}

	verbose := config != nil && config.Verbose
	if verbose {
		log.Printf("[FOODMART] Opened workbook %s with sheets %v", path, sheets)
	}
	return &ExcelProvider{
		file:       f,
		sheetMap:   sheetMap,
		date1904:   props.Date1904 != nil && *props.Date1904,
		dateStyles: make(map[int]bool),
		verbose:    verbose,
	}, nil
}

// OpenResource implements ResourceProvider. Rows are read from the sheet on
// demand and re-encoded as CSV lines.
func (p *ExcelProvider) OpenResource(tableName string) (io.ReadCloser, error) {
	sheet, ok := p.sheetMap[strings.ToLower(tableName)]
	if !ok {
		return nil, fmt.Errorf("%w: sheet %s", common.ErrResourceNotFound, tableName)
	}
	rows, err := p.file.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows iterator for sheet %s: %w", sheet, err)
	}
	if p.verbose {
		log.Printf("[FOODMART] Streaming sheet %s", sheet)
	}
	return &sheetReader{p: p, rows: rows, sheet: sheet}, nil
}

// Close closes the workbook.
func (p *ExcelProvider) Close() error {
	return p.file.Close()
}

// isDateStyle reports whether the cell style styleID displays a date or time.
func (p *ExcelProvider) isDateStyle(styleID int) (bool, error) {
	if isDate, ok := p.dateStyles[styleID]; ok {
		return isDate, nil
	}
	style, err := p.file.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	isDate := builtinDateFormats[style.NumFmt]
	if style.CustomNumFmt != nil {
		isDate = isDateFormatCode(*style.CustomNumFmt)
	}
	p.dateStyles[styleID] = isDate
	return isDate, nil
}

// builtinDateFormats holds the built-in number format IDs that display dates or times.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// isDateFormatCode reports whether a custom number format shows date or time
// parts. Quoted text, bracketed sections and escaped characters are ignored.
func isDateFormatCode(code string) bool {
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			inQuote = c != '"'
		case inBracket:
			inBracket = c != ']'
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++
		default:
			switch c {
			case 'y', 'Y', 'd', 'D', 'm', 'M', 'h', 'H', 's', 'S':
				return true
			}
		}
	}
	return false
}

// formatSerial renders an Excel serial date as ISO text: "2006-01-02" for whole
// days, "15:04:05" for times without a date, otherwise both.
func formatSerial(serial float64, date1904 bool) (string, error) {
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return "", err
	}
	switch {
	case serial < 1:
		return t.Format(time.TimeOnly), nil
	case serial == float64(int64(serial)):
		return t.Format(time.DateOnly), nil
	default:
		return t.Format(time.DateTime), nil
	}
}

// padRow pads the row with empty cells up to targetLen. Excel drops trailing empty cells.
func padRow(row []string, targetLen int) []string {
	if len(row) < targetLen {
		row = append(row, make([]string, targetLen-len(row))...)
	}
	return row
}

// sheetReader presents sheet rows as a line-oriented CSV stream.
type sheetReader struct {
	p     *ExcelProvider
	rows  *excelize.Rows
	sheet string
	row   int
	width int
	buf   []byte
	err   error
}

func (r *sheetReader) Read(p []byte) (int, error) {
	for len(r.buf) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		r.fill()
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

func (r *sheetReader) fill() {
	if !r.rows.Next() {
		if err := r.rows.Error(); err != nil {
			r.err = fmt.Errorf("failed to read sheet %s: %w", r.sheet, err)
		} else {
			r.err = io.EOF
		}
		return
	}
	r.row++

	cols, err := r.rows.Columns(excelize.Options{RawCellValue: true})
	if err != nil {
		r.err = fmt.Errorf("failed to read row of sheet %s: %w", r.sheet, err)
		return
	}
	if r.width > 0 {
		if err := r.convertDates(cols); err != nil {
			r.err = fmt.Errorf("failed to read row %d of sheet %s: %w", r.row, r.sheet, err)
			return
		}
	}

	var line string
	switch {
	case r.width == 0:
		// Header row fixes the width.
		r.width = len(cols)
		line, err = common.EncodeLine(cols)
	case len(cols) == 0:
		// Empty row, emitted as a blank line.
	default:
		line, err = common.EncodeLine(padRow(cols, r.width))
	}
	if err != nil {
		r.err = fmt.Errorf("sheet %s: %w", r.sheet, err)
		return
	}
	r.buf = append(r.buf[:0], line...)
	r.buf = append(r.buf, '\n')
}

// convertDates replaces the serial number of each date-formatted cell with ISO text.
func (r *sheetReader) convertDates(cols []string) error {
	for i, v := range cols {
		serial, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, r.row)
		if err != nil {
			return err
		}
		styleID, err := r.p.file.GetCellStyle(r.sheet, cell)
		if err != nil {
			return err
		}
		if styleID == 0 {
			continue
		}
		isDate, err := r.p.isDateStyle(styleID)
		if err != nil {
			return err
		}
		if !isDate {
			continue
		}
		if cols[i], err = formatSerial(serial, r.p.date1904); err != nil {
			return fmt.Errorf("cell %s: %w", cell, err)
		}
	}
	return nil
}

func (r *sheetReader) Close() error {
	return r.rows.Close()
}
