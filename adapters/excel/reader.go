// Package excel loads CSV and XLSX files into tables. Ingestion is a
// collaborator of the audit core, not part of it.
package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"goeda/domain/table"
	"goeda/internal/errors"
)

// numericThreshold is the share of non-empty cells that must parse as
// numbers before a column is treated as numeric.
const numericThreshold = 0.8

// DataReader handles reading Excel and CSV files into tables
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
}

// NewDataReader creates a reader for the given file. The sheet name only
// applies to XLSX sources.
func NewDataReader(filePath, sheet string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	if sheet == "" {
		sheet = "Sheet1"
	}
	return &DataReader{filePath: filePath, fileType: fileType, sheet: sheet}
}

// ReadTable reads the file into a table, inferring numeric vs categorical
// columns from the cell contents.
func (r *DataReader) ReadTable() (*table.Table, error) {
	log.Printf("[DataReader] reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.IngestError(fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath), err)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, errors.IngestError("unsupported file type: "+r.fileType, nil)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, errors.IngestError("file must have at least a header row and one data row", nil)
	}

	return r.buildTable(rows)
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	start := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.IngestError("failed to open Excel file", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, errors.IngestError("failed to read sheet "+r.sheet, err)
	}
	log.Printf("[DataReader] sheet %s read in %.2fms (%d rows)",
		r.sheet, float64(time.Since(start).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.IngestError("failed to open CSV file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.IngestError("failed to read CSV file", err)
	}
	return rows, nil
}

// buildTable converts raw string rows into a typed table
func (r *DataReader) buildTable(rows [][]string) (*table.Table, error) {
	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}
	data := rows[1:]

	name := strings.TrimSuffix(filepath.Base(r.filePath), filepath.Ext(r.filePath))
	tbl := table.New(name)

	for colIdx, header := range headers {
		cells := make([]string, len(data))
		for rowIdx, row := range data {
			if colIdx < len(row) {
				cells[rowIdx] = strings.TrimSpace(row[colIdx])
			}
		}

		var col *table.Column
		if isNumericColumn(cells) {
			col = table.NewNumericColumn(header, toFloats(cells))
		} else {
			col = table.NewCategoricalColumn(header, cells)
		}
		if err := tbl.AddColumn(col); err != nil {
			return nil, errors.Wrapf(err, "column %d (%q)", colIdx, header)
		}
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), tbl.NumCols(), tbl.NumRows())
	return tbl, nil
}

// isNumericColumn checks whether enough non-empty cells parse as numbers
func isNumericColumn(cells []string) bool {
	nonEmpty := 0
	numeric := 0
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		nonEmpty++
		if _, err := strconv.ParseFloat(cell, 64); err == nil {
			numeric++
		}
	}
	if nonEmpty == 0 {
		return false
	}
	return float64(numeric)/float64(nonEmpty) >= numericThreshold
}

// toFloats parses cells into floats, mapping empty or unparseable cells to NaN
func toFloats(cells []string) []float64 {
	values := make([]float64, len(cells))
	for i, cell := range cells {
		if cell == "" {
			values[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			values[i] = math.NaN()
			continue
		}
		values[i] = v
	}
	return values
}
