package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadWideCSV(t *testing.T) {
	dir := t.TempDir()

	t.Run("plain file", func(t *testing.T) {
		path := filepath.Join(dir, "wide.csv")
		content := "RegionID,RegionName,2024-01-31,2024-02-29\n" +
			"1,A,100,110\n" +
			"2,B,200,190\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		df, err := LoadWideCSV(path)
		require.NoError(t, err)
		assert.Equal(t, 2, df.Nrow())
		assert.Equal(t, 4, df.Ncol())
		assert.Equal(t, []string{"RegionID", "RegionName", "2024-01-31", "2024-02-29"}, df.Names())
	})

	t.Run("utf8 bom stripped", func(t *testing.T) {
		path := filepath.Join(dir, "bom.csv")
		content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("RegionID,2024-01-31\n1,100\n")...)
		require.NoError(t, os.WriteFile(path, content, 0644))

		df, err := LoadWideCSV(path)
		require.NoError(t, err)
		assert.Equal(t, "RegionID", df.Names()[0])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadWideCSV(filepath.Join(dir, "nope.csv"))
		assert.Error(t, err)
	})
}

func TestLoadWideExcel(t *testing.T) {
	dir := t.TempDir()

	writeWorkbook := func(t *testing.T, path, sheet string, rows [][]interface{}) {
		t.Helper()
		f := excelize.NewFile()
		defer f.Close()

		if sheet != "Sheet1" {
			_, err := f.NewSheet(sheet)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(sheet, cell, &row))
		}
		require.NoError(t, f.SaveAs(path))
	}

	t.Run("explicit sheet", func(t *testing.T) {
		path := filepath.Join(dir, "explicit.xlsx")
		writeWorkbook(t, path, "Sheet1", [][]interface{}{
			{"RegionID", "RegionName", "2024-01-31"},
			{1, "A", 100},
			{2, "B", 200},
		})

		df, err := LoadWideExcel(path, "Sheet1")
		require.NoError(t, err)
		assert.Equal(t, 2, df.Nrow())
		assert.Equal(t, 3, df.Ncol())
	})

	t.Run("autodetected sheet", func(t *testing.T) {
		path := filepath.Join(dir, "auto.xlsx")
		writeWorkbook(t, path, "HomeValues", [][]interface{}{
			{"RegionID", "RegionName", "2024-01-31"},
			{1, "A", 100},
		})

		df, err := LoadWideExcel(path, "")
		require.NoError(t, err)
		assert.Equal(t, 1, df.Nrow())
	})

	t.Run("unknown sheet", func(t *testing.T) {
		path := filepath.Join(dir, "missing.xlsx")
		writeWorkbook(t, path, "Sheet1", [][]interface{}{
			{"RegionID", "2024-01-31"},
			{1, 100},
		})

		_, err := LoadWideExcel(path, "NoSuchSheet")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadWideExcel(filepath.Join(dir, "nope.xlsx"), "")
		assert.Error(t, err)
	})
}
