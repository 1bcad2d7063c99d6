package importer

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadFile parses a deck file. The format is chosen by extension:
// .json is a legacy cards.json export; .xlsx and .csv are tables with the
// front in the first column and the back in the second.
func ReadFile(path string, cfg Config) ([]LegacyCard, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return readJSON(path)
	case ".xlsx":
		return readXLSX(path, cfg.SheetName, cfg.SkipHeader)
	case ".csv":
		return readCSV(path, cfg.SkipHeader)
	default:
		return nil, fmt.Errorf("%s: unsupported file type %q", path, ext)
	}
}

func readJSON(path string) ([]LegacyCard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var deck LegacyDeck
	if err := json.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return deck.Cards, nil
}

func readXLSX(path, sheet string, skipHeader bool) ([]LegacyCard, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, path, err)
	}
	return rowsToCards(rows, skipHeader), nil
}

func readCSV(path string, skipHeader bool) ([]LegacyCard, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		rows = append(rows, rec)
	}
	return rowsToCards(rows, skipHeader), nil
}

// rowsToCards maps table rows to cards, ignoring fully blank rows.
func rowsToCards(rows [][]string, skipHeader bool) []LegacyCard {
	if skipHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	cards := make([]LegacyCard, 0, len(rows))
	for _, row := range rows {
		var front, back string
		if len(row) > 0 {
			front = strings.TrimSpace(row[0])
		}
		if len(row) > 1 {
			back = strings.TrimSpace(row[1])
		}
		if front == "" && back == "" {
			continue
		}
		cards = append(cards, LegacyCard{Front: front, Back: back})
	}
	return cards
}
