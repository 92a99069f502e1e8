package intake

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// Column headers read from uploaded sheets. Matching is case-sensitive.
const (
	ColumnDeviceType = "Device Type"
	ColumnModel      = "Model"
	ColumnQuantity   = "Quantity"
	ColumnCondition  = "Condition"
	ColumnNotes      = "Notes"
)

// Format identifies where a Source's rows came from.
type Format string

// Source formats.
const (
	FormatForm    Format = "form"
	FormatCSV     Format = "csv"
	FormatXLSX    Format = "xlsx"
	FormatUnknown Format = "unknown"
)

// RawRow is one input record keyed by column header. Line is 1-based within
// its source; for sheets the header is line 1.
type RawRow struct {
	Line   int
	Values map[string]string
	// Err is set when the record itself could not be parsed.
	Err error
}

func (r RawRow) get(column string) string {
	return r.Values[column]
}

func (r RawRow) blank() bool {
	for _, v := range r.Values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Source is a parsed intake input. A Source with Err set contributes no rows.
type Source struct {
	Name   string
	Format Format
	Rows   []RawRow
	Err    error
}

// FormFields holds the parallel inline arrays posted by the bulk pickup form.
// Row i is built from index i of every slice; short slices leave the field
// empty.
type FormFields struct {
	Types      []string
	Models     []string
	Quantities []string
	Conditions []string
	Notes      []string
}

// FormRows builds a Source from inline form arrays. The Types slice decides
// the row count.
func FormRows(f FormFields) Source {
	at := func(s []string, i int) string {
		if i < len(s) {
			return s[i]
		}
		return ""
	}

	rows := make([]RawRow, 0, len(f.Types))
	for i := range f.Types {
		rows = append(rows, RawRow{
			Line: i + 1,
			Values: map[string]string{
				ColumnDeviceType: at(f.Types, i),
				ColumnModel:      at(f.Models, i),
				ColumnQuantity:   at(f.Quantities, i),
				ColumnCondition:  at(f.Conditions, i),
				ColumnNotes:      at(f.Notes, i),
			},
		})
	}

	return Source{Name: "form", Format: FormatForm, Rows: rows}
}

// FileSource parses an uploaded file, choosing the reader by extension.
func FileSource(filename string, data []byte) Source {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return CSV(filename, data)
	case ".xlsx", ".xlsm", ".xls":
		return Spreadsheet(filename, data)
	default:
		return Source{
			Name:   filename,
			Format: FormatUnknown,
			Err:    fmt.Errorf("unsupported file type %q", filepath.Ext(filename)),
		}
	}
}

// CSV parses a header-keyed CSV file. Text is read as UTF-8 (a leading BOM is
// dropped), then Latin-1, then UTF-8 with invalid bytes removed.
func CSV(name string, data []byte) Source {
	src := Source{Name: name, Format: FormatCSV}

	r := csv.NewReader(strings.NewReader(decodeText(data)))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return src
	}
	if err != nil {
		src.Err = fmt.Errorf("reading csv header: %w", err)
		return src
	}
	header = trimAll(header)

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		// Lines are physical: a quoted cell may span several.
		var row RawRow
		var perr *csv.ParseError
		switch {
		case errors.As(err, &perr):
			row.Line = perr.StartLine
			row.Err = fmt.Errorf("parsing csv record: %w", err)
		case err != nil:
			src.Err = fmt.Errorf("reading csv: %w", err)
			return src
		default:
			row.Line, _ = r.FieldPos(0)
			row.Values = zip(header, rec)
		}
		src.Rows = append(src.Rows, row)
	}

	return src
}

// Spreadsheet parses the first sheet of an XLSX workbook. The first row is
// the header.
func Spreadsheet(name string, data []byte) Source {
	src := Source{Name: name, Format: FormatXLSX}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		src.Err = fmt.Errorf("opening workbook: %w", err)
		return src
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		src.Err = errors.New("workbook has no sheets")
		return src
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		src.Err = fmt.Errorf("reading sheet %q: %w", sheets[0], err)
		return src
	}
	if len(rows) == 0 {
		return src
	}

	header := trimAll(rows[0])
	for i, rec := range rows[1:] {
		src.Rows = append(src.Rows, RawRow{Line: i + 2, Values: zip(header, rec)})
	}

	return src
}

func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return strings.TrimPrefix(string(data), "\ufeff")
	}
	if b, err := charmap.ISO8859_1.NewDecoder().Bytes(data); err == nil {
		return string(b)
	}
	return strings.ToValidUTF8(string(data), "")
}

// zip keys rec by header. Cells past the header are dropped; missing cells are
// absent from the map.
func zip(header, rec []string) map[string]string {
	m := make(map[string]string, len(header))
	for i, h := range header {
		if i >= len(rec) {
			break
		}
		if h == "" {
			continue
		}
		if _, dup := m[h]; dup {
			continue
		}
		m[h] = rec[i]
	}
	return m
}

func trimAll(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
