package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cardbot/internal/domain"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned for files other than xlsx and csv
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ReadFile reads word pairs from an xlsx or csv file.
// Column A holds the word, column B the translation. A first row whose
// first cell is "word" is treated as a header. Incomplete rows are skipped.
func ReadFile(path string) ([]domain.WordPair, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readExcel(path)
	case ".csv":
		return readCSV(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

func readExcel(path string) ([]domain.WordPair, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	// first sheet, whatever it is called
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return toPairs(rows), nil
}

func readCSV(path string) ([]domain.WordPair, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, row)
	}
	return toPairs(rows), nil
}

func toPairs(rows [][]string) []domain.WordPair {
	pairs := make([]domain.WordPair, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		word := strings.TrimSpace(row[0])
		translation := strings.TrimSpace(row[1])
		if i == 0 && strings.EqualFold(word, "word") {
			continue
		}
		if word == "" || translation == "" {
			continue
		}
		pairs = append(pairs, domain.WordPair{Word: word, Translation: translation})
	}
	return pairs
}
