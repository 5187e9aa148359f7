package dataset

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// LoadWideExcel reads a wide-format table from an Excel workbook. When sheet
// is empty the workbook is scanned for the first sheet whose header row looks
// like region data (contains a RegionID-style column).
func LoadWideExcel(path, sheet string) (dataframe.DataFrame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, sheetName, err := findDataSheet(f, sheet)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	slog.Info("found region data sheet",
		slog.String("path", path),
		slog.String("sheet", sheetName),
		slog.Int("rows", len(rows)))

	if len(rows) < 2 {
		return dataframe.DataFrame{}, fmt.Errorf("sheet %q contains no data rows", sheetName)
	}

	// excelize trims trailing empty cells, so pad every row to the header
	// width before handing the records to gota.
	width := len(rows[0])
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			row = padded
		}
		records = append(records, row[:width])
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.Float),
	)
	if err := df.Error(); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("load sheet %q: %w", sheetName, err)
	}

	return df, nil
}

// findDataSheet returns the rows of the requested sheet, or of the first
// sheet that carries a region identifier header when no sheet is named.
func findDataSheet(f *excelize.File, sheet string) ([][]string, string, error) {
	if sheet != "" {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, "", fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		return rows, sheet, nil
	}

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) == 0 {
			continue
		}
		header := strings.ToLower(strings.Join(rows[0], " "))
		if strings.Contains(header, "regionid") || strings.Contains(header, "region_id") {
			return rows, name, nil
		}
	}

	return nil, "", fmt.Errorf("could not find a region data sheet in workbook")
}
