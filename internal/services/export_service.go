package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Elus"

type ExportService struct {
	personService *PersonService
}

func NewExportService(personService *PersonService) *ExportService {
	return &ExportService{
		personService: personService,
	}
}

// WriteWorkbook writes every person as one row of an XLSX workbook
func (s *ExportService) WriteWorkbook(w io.Writer) error {
	elus, err := s.personService.ListPersons()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &[]interface{}{"Name", "Email", "Mandates"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, elu := range elus {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{elu.Name, elu.Email, strings.Join(elu.Mandates, ", ")}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "C", 30); err != nil {
		return err
	}

	return f.Write(w)
}
