package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes rows to the first sheet of a new workbook.
func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestFormRows(t *testing.T) {
	t.Parallel()

	src := FormRows(FormFields{
		Types:      []string{"Laptop", "Smartphone", ""},
		Models:     []string{"ThinkPad"},
		Quantities: []string{"3", "x"},
		Conditions: []string{"WORKING", "SCRAP", "WORKING"},
	})

	require.NoError(t, src.Err)
	assert.Equal(t, FormatForm, src.Format)
	require.Len(t, src.Rows, 3)

	assert.Equal(t, 1, src.Rows[0].Line)
	assert.Equal(t, "ThinkPad", src.Rows[0].get(ColumnModel))
	assert.Equal(t, "3", src.Rows[0].get(ColumnQuantity))
	assert.Empty(t, src.Rows[1].get(ColumnModel))
	assert.Empty(t, src.Rows[2].get(ColumnQuantity))
	assert.Empty(t, src.Rows[2].get(ColumnNotes))
}

func TestCSV(t *testing.T) {
	t.Parallel()

	data := []byte("\ufeffDevice Type,Model,Quantity,Condition,Notes\n" +
		"Laptop,Dell Latitude,2,Working,\n" +
		"Smartphone,,1\n" +
		"Desktop-PC,OptiPlex,4,damaged,\"spare, parts\"\n")

	src := CSV("devices.csv", data)
	require.NoError(t, src.Err)
	assert.Equal(t, FormatCSV, src.Format)
	require.Len(t, src.Rows, 3)

	assert.Equal(t, map[string]string{
		ColumnDeviceType: "Laptop",
		ColumnModel:      "Dell Latitude",
		ColumnQuantity:   "2",
		ColumnCondition:  "Working",
		ColumnNotes:      "",
	}, src.Rows[0].Values, "BOM is stripped from the first header")
	assert.Equal(t, 2, src.Rows[0].Line)

	_, hasCondition := src.Rows[1].Values[ColumnCondition]
	assert.False(t, hasCondition, "short records leave trailing columns absent")

	assert.Equal(t, "spare, parts", src.Rows[2].get(ColumnNotes))
}

func TestCSV_PhysicalLineNumbers(t *testing.T) {
	t.Parallel()

	data := []byte("Device Type,Model,Quantity,Condition,Notes\n" +
		"Laptop,,1,Working,\"charger\nbag\nmanual\"\n" +
		"Smartphone,,2,Scrap,\n" +
		"Laptop,Dell \"XPS\",1,,\n" +
		"Router,,1,,\n")

	src := CSV("notes.csv", data)
	require.NoError(t, src.Err)
	require.Len(t, src.Rows, 4)

	assert.Equal(t, 2, src.Rows[0].Line)
	assert.Equal(t, "charger\nbag\nmanual", src.Rows[0].get(ColumnNotes))
	assert.Equal(t, 5, src.Rows[1].Line)
	assert.Equal(t, 6, src.Rows[2].Line)
	require.Error(t, src.Rows[2].Err)
	assert.Equal(t, 7, src.Rows[3].Line)
	assert.Equal(t, "Router", src.Rows[3].get(ColumnDeviceType))
}

func TestCSV_Latin1Fallback(t *testing.T) {
	t.Parallel()

	// "Café" and "Müller" encoded as ISO-8859-1.
	data := []byte("Device Type,Model,Quantity,Condition,Notes\n" +
		"Laptop,M\xfcller,1,Working,Caf\xe9\n")

	src := CSV("latin1.csv", data)
	require.NoError(t, src.Err)
	require.Len(t, src.Rows, 1)

	assert.Equal(t, "Müller", src.Rows[0].get(ColumnModel))
	assert.Equal(t, "Café", src.Rows[0].get(ColumnNotes))
}

func TestCSV_MalformedRecordIsRowLevel(t *testing.T) {
	t.Parallel()

	data := []byte("Device Type,Model,Quantity\n" +
		"Laptop,Dell \"XPS\",2\n" +
		"Smartphone,Pixel,1\n")

	src := CSV("bad-row.csv", data)
	require.NoError(t, src.Err)
	require.Len(t, src.Rows, 2)

	require.Error(t, src.Rows[0].Err)
	assert.NoError(t, src.Rows[1].Err)
	assert.Equal(t, "Pixel", src.Rows[1].get(ColumnModel))
}

func TestCSV_BrokenHeaderIsFileLevel(t *testing.T) {
	t.Parallel()

	src := CSV("broken.csv", []byte("\"Device Type,Model\nLaptop,x\n"))
	require.Error(t, src.Err)
	assert.Empty(t, src.Rows)
}

func TestCSV_Empty(t *testing.T) {
	t.Parallel()

	src := CSV("empty.csv", nil)
	require.NoError(t, src.Err)
	assert.Empty(t, src.Rows)
}

func TestSpreadsheet(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, [][]any{
		{"Device Type", "Model", "Quantity", "Condition", "Notes"},
		{"Laptop", "MacBook Air", 2, "Working", "charger included"},
		{"Flat-Panel-TV", "", 1.5, "Scrap"},
	})

	src := Spreadsheet("devices.xlsx", data)
	require.NoError(t, src.Err)
	assert.Equal(t, FormatXLSX, src.Format)
	require.Len(t, src.Rows, 2)

	assert.Equal(t, "MacBook Air", src.Rows[0].get(ColumnModel))
	assert.Equal(t, "2", src.Rows[0].get(ColumnQuantity))
	assert.Equal(t, "charger included", src.Rows[0].get(ColumnNotes))
	assert.Equal(t, 2, src.Rows[0].Line)

	assert.Equal(t, "Flat-Panel-TV", src.Rows[1].get(ColumnDeviceType))
	assert.Equal(t, "1.5", src.Rows[1].get(ColumnQuantity))
}

func TestSpreadsheet_Unreadable(t *testing.T) {
	t.Parallel()

	src := Spreadsheet("devices.xlsx", []byte("this is not a zip archive"))
	require.Error(t, src.Err)
	assert.Contains(t, src.Err.Error(), "opening workbook")
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     Format
	}{
		{filename: "items.csv", want: FormatCSV},
		{filename: "ITEMS.CSV", want: FormatCSV},
		{filename: "items.xlsx", want: FormatXLSX},
		{filename: "legacy.xls", want: FormatXLSX},
		{filename: "items.txt", want: FormatUnknown},
		{filename: "noext", want: FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()

			src := FileSource(tt.filename, []byte("Device Type\nLaptop\n"))
			assert.Equal(t, tt.want, src.Format)
			assert.Equal(t, tt.filename, src.Name)

			switch tt.want {
			case FormatCSV:
				assert.NoError(t, src.Err)
			default:
				// Neither a workbook nor a supported type.
				assert.Error(t, src.Err)
			}
		})
	}
}

func TestDecodeText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", decodeText([]byte("\xef\xbb\xbfabc")))
	assert.Equal(t, "naïve", decodeText([]byte("naïve")))
	assert.Equal(t, "ÿ", decodeText([]byte{0xff}))
}
