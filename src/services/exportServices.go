package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	excelize "github.com/xuri/excelize/v2"

	"github.com/ludoteca/ludoteca-backend/src/dtos"
)

type ImportResult struct {
	Imported int
	Errors   []string
}

// ExportService produces the admin Excel reports and handles bulk catalog
// imports. It composes the other services instead of querying on its own.
type ExportService struct {
	games      *GameService
	categories *CategoryService
	loans      *LoanService
}

func NewExportService(games *GameService, categories *CategoryService, loans *LoanService) *ExportService {
	return &ExportService{
		games:      games,
		categories: categories,
		loans:      loans,
	}
}

const timeLayout = "2006-01-02 15:04"

// ExportLoanHistory writes an .xlsx workbook of every completed loan
func (s *ExportService) ExportLoanHistory(w io.Writer) error {
	rows, err := s.loans.GetLoanHistory()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Loan history"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Loan ID", "Username", "Game", "Issued", "Due", "Returned"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		returned := ""
		if row.ReturnedAt != nil {
			returned = row.ReturnedAt.Format(timeLayout)
		}
		values := []interface{}{
			row.LoanId,
			row.Username,
			row.GameTitle,
			row.IssuedAt.Format(timeLayout),
			row.DueAt.Format(timeLayout),
			returned,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f.Write(w)
}

// ExportCatalog writes an .xlsx workbook of the active catalog with the
// availability count per game
func (s *ExportService) ExportCatalog(w io.Writer) error {
	games, err := s.games.GetGames("", "", false)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Catalog"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Title", "Category", "Complexity", "Players", "Age", "Minutes", "Tags", "Stock", "Available copies"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, g := range games {
		category := ""
		if g.CategoryName != nil {
			category = *g.CategoryName
		}
		values := []interface{}{
			g.Id,
			g.Title,
			category,
			g.Complexity,
			fmt.Sprintf("%d-%d", g.MinPlayers, g.MaxPlayers),
			g.RecommendedAge,
			g.DurationMinutes,
			strings.Join(g.Tags, ", "),
			g.Stock,
			g.AvailableCopies,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f.Write(w)
}

// ImportGamesFromExcel registers games in bulk from the first worksheet.
// Expected columns: Title, Category, Description, MinPlayers, MaxPlayers,
// RecommendedAge, DurationMinutes, Complexity, Tags (semicolon separated),
// SKUPrefix, Quantity. The first row is treated as the header. Bad rows
// are collected as errors without aborting the rest of the import.
func (s *ExportService) ImportGamesFromExcel(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %q: %w", sheet, err)
	}

	result := &ImportResult{Imported: 0, Errors: []string{}}

	// Category ids resolved once per distinct name
	categoryCache := make(map[string]int)

	for i, row := range rows {
		// Header or empty row
		if i == 0 || len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		dto := dtos.RegisterGameDTO{Title: strings.TrimSpace(row[0])}

		if name := cellAt(row, 1); name != "" {
			id, ok := categoryCache[name]
			if !ok {
				category, err := s.categories.GetOrCreateCategory(name)
				if err != nil {
					result.Errors = append(result.Errors, fmt.Sprintf("row %d: category %q: %v", i+1, name, err))
					continue
				}
				id = category.Id
				categoryCache[name] = id
			}
			idCopy := id
			dto.CategoryId = &idCopy
		}

		if desc := cellAt(row, 2); desc != "" {
			dto.Description = &desc
		}
		dto.MinPlayers = intAt(row, 3)
		dto.MaxPlayers = intAt(row, 4)
		dto.RecommendedAge = intAt(row, 5)
		dto.DurationMinutes = intAt(row, 6)
		dto.Complexity = cellAt(row, 7)
		if tags := cellAt(row, 8); tags != "" {
			dto.Tags = strings.Split(tags, ";")
		}
		dto.SKUPrefix = cellAt(row, 9)
		dto.Quantity = intAt(row, 10)

		if _, err := s.games.RegisterWithCopies(&dto); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func intAt(row []string, idx int) int {
	n, _ := strconv.Atoi(cellAt(row, idx))
	return n
}
