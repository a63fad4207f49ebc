package seed

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ai_linguo/internal/model"

	"github.com/xuri/excelize/v2"
)

// Column order of an import file: term, meaning, example, level.
const (
	colTerm = iota
	colMeaning
	colExample
	colLevel
)

// ReadCardFile reads vocabulary rows from an .xlsx or .csv file. Rows that
// cannot be used are reported in the returned messages and skipped.
func ReadCardFile(path string) ([]*model.VocabCard, []string, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readExcelRows(path)
	case ".csv":
		rows, err = readCSVRows(path)
	default:
		return nil, nil, fmt.Errorf("unsupported import file %q: want .xlsx or .csv", filepath.Base(path))
	}
	if err != nil {
		return nil, nil, err
	}
	cards, problems := ParseCardRows(rows)
	return cards, problems, nil
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file %q has no sheets", filepath.Base(path))
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	return rows, nil
}

// ParseCardRows turns spreadsheet rows into cards. A first row starting with
// "term" is treated as a header. Blank rows are ignored.
func ParseCardRows(rows [][]string) ([]*model.VocabCard, []string) {
	cards := make([]*model.VocabCard, 0, len(rows))
	var problems []string
	seen := make(map[string]bool)

	for i, row := range rows {
		rowNum := i + 1
		if i == 0 && strings.EqualFold(cell(row, colTerm), "term") {
			continue
		}
		if isBlank(row) {
			continue
		}

		term := cell(row, colTerm)
		meaning := cell(row, colMeaning)
		if term == "" || meaning == "" {
			problems = append(problems, fmt.Sprintf("Row %d: term and meaning are required", rowNum))
			continue
		}
		level, ok := model.ParseLevel(cell(row, colLevel))
		if !ok {
			problems = append(problems, fmt.Sprintf("Row %d: invalid level %q", rowNum, cell(row, colLevel)))
			continue
		}
		key := strings.ToLower(term)
		if seen[key] {
			problems = append(problems, fmt.Sprintf("Row %d: duplicate term %q", rowNum, term))
			continue
		}
		seen[key] = true

		cards = append(cards, &model.VocabCard{
			Term:      term,
			Meaning:   meaning,
			Example:   cell(row, colExample),
			CEFRLevel: level,
		})
	}
	return cards, problems
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
