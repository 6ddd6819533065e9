package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	enc "github.com/MrJamesThe3rd/valueplus/internal/encoding"
	"github.com/MrJamesThe3rd/valueplus/internal/property"
	"github.com/MrJamesThe3rd/valueplus/internal/recommendation"
)

// readRows decodes r to UTF-8 and returns the rows after the first header
// that satisfies p, together with the header's column index.
func readRows(r io.Reader, p Profile) (colIndex, [][]string, int, error) {
	utf8r, _, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("read %s seed: %w", p.Name, err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, 0, fmt.Errorf("read csv: %w", err)
	}

	for idx, row := range rows {
		if cols, ok := p.match(row); ok {
			return cols, rows[idx+1:], idx + 1, nil
		}
	}

	return nil, nil, 0, fmt.Errorf("no %s header found: expected columns %v", p.Name, p.Required)
}

// sniffDelimiter picks ';' when the first line has more semicolons than
// commas outside quotes, and ',' otherwise.
func sniffDelimiter(data []byte) rune {
	line, _, _ := bytes.Cut(data, []byte("\n"))

	var commas, semis int

	inQuotes := false

	for _, b := range line {
		switch b {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				commas++
			}
		case ';':
			if !inQuotes {
				semis++
			}
		}
	}

	if semis > commas {
		return ';'
	}

	return ','
}

func parseRecommendations(cols colIndex, rows [][]string, headerRow int) ([]recommendation.Record, error) {
	var recs []recommendation.Record

	for i, row := range rows {
		rowNum := headerRow + i + 1

		if blank(row) {
			continue
		}

		title := cellValue(row, cols, fieldTitle)
		if title == "" {
			return nil, fmt.Errorf("row %d: missing title", rowNum)
		}

		cost, ok := parseAmount(cellValue(row, cols, fieldCost))
		if !ok {
			continue
		}

		category, err := recommendation.ParseCategory(cellValue(row, cols, fieldCategory))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		id, err := parseID(cellValue(row, cols, fieldID), int64(len(recs)+1))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		recs = append(recs, recommendation.Record{
			ID:              id,
			Title:           title,
			Description:     cellValue(row, cols, fieldDescription),
			Cost:            cost,
			ValueAddPercent: parsePercent(cellValue(row, cols, fieldValueAdd)),
			Category:        category,
			ImageRef:        cellValue(row, cols, fieldImage),
		})
	}

	return recs, nil
}

func parseProperties(cols colIndex, rows [][]string, headerRow int) ([]property.Record, error) {
	var props []property.Record

	for i, row := range rows {
		rowNum := headerRow + i + 1

		if blank(row) {
			continue
		}

		address := cellValue(row, cols, fieldAddress)
		if address == "" {
			return nil, fmt.Errorf("row %d: missing address", rowNum)
		}

		area, err := strconv.ParseFloat(strings.ReplaceAll(cellValue(row, cols, fieldArea), ",", ""), 64)
		if err != nil || !(area > 0) || math.IsInf(area, 1) {
			continue
		}

		value, ok := parseAmount(cellValue(row, cols, fieldValue))
		if !ok {
			value = decimal.Zero
		}

		pt, err := property.ParseType(cellValue(row, cols, fieldType))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		id, err := parseID(cellValue(row, cols, fieldID), int64(len(props)+1))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		props = append(props, property.Record{
			ID:           id,
			Address:      address,
			Type:         pt,
			AreaSqFt:     area,
			CurrentValue: value,
			ImageRef:     cellValue(row, cols, fieldImage),
		})
	}

	return props, nil
}

// parseAmount accepts plain, rupee-prefixed and Indian-grouped amounts.
// Negative or unparseable amounts are rejected.
func parseAmount(s string) (decimal.Decimal, bool) {
	clean := recommendation.CleanAmount(s)
	if clean == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(clean)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}

	return d, true
}

func parsePercent(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}

	return v
}

// parseID reads an explicit id, or falls back to the 1-based position.
func parseID(s string, fallback int64) (int64, error) {
	if s == "" {
		return fallback, nil
	}

	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}

	return id, nil
}

func cellValue(row []string, cols colIndex, f field) string {
	idx, ok := cols[f]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
