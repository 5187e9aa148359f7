// Package dataset loads wide-format home value tables into dataframes.
//
// A wide table has one row per region and one date-labeled value column per
// observation month, preceded by identifier columns such as RegionID and
// RegionName. Loaders return the table as-is; reshaping is the caller's job.
package dataset

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// utf8BOM is the byte order mark Excel prepends to CSV exports.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadWideCSV reads a wide-format CSV file into a DataFrame. The first row
// must be a header; a UTF-8 BOM is tolerated. Numeric columns default to
// float so missing cells become NaN instead of failing the load.
func LoadWideCSV(path string) (dataframe.DataFrame, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read CSV file: %w", err)
	}
	content = bytes.TrimPrefix(content, utf8BOM)

	df := dataframe.ReadCSV(bytes.NewReader(content),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.Float),
	)
	if err := df.Error(); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse CSV %s: %w", path, err)
	}

	slog.Info("loaded wide CSV dataset",
		slog.String("path", path),
		slog.Int("rows", df.Nrow()),
		slog.Int("columns", df.Ncol()))

	return df, nil
}
