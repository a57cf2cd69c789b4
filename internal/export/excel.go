package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"listpad/internal/models"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Listings"

// ToExcel writes the catalog to a timestamped xlsx workbook in dir and
// returns the path of the created file.
func ToExcel(dir string, listings []models.Listing, logger *zerolog.Logger) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	headers := []string{"ASIN", "Title", "Price", "Description", "Quantity"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, listing := range listings {
		row := i + 2
		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), listing.ASIN)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), listing.Title)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), listing.Price)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), listing.Description)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), listing.Quantity)
	}

	_ = f.SetColWidth(sheetName, "A", "A", 14)
	_ = f.SetColWidth(sheetName, "B", "B", 30)
	_ = f.SetColWidth(sheetName, "C", "C", 10)
	_ = f.SetColWidth(sheetName, "D", "D", 50)
	_ = f.SetColWidth(sheetName, "E", "E", 10)

	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("listings_export_%s.xlsx", time.Now().Format("2006-01-02_15-04-05"))
	filePath := filepath.Join(dir, fileName)
	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}

	logger.Info().Str("file_path", filePath).Int("listings", len(listings)).Msg("Excel file created")
	return filePath, nil
}
