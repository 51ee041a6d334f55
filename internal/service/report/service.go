package report

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jwalitptl/doacao-api/internal/model"
	"github.com/jwalitptl/doacao-api/internal/repository"
	apperrors "github.com/jwalitptl/doacao-api/pkg/errors"
)

const (
	msgReportFailed = "Erro ao gerar relatório"

	SheetStock    = "Estoque"
	SheetByType   = "Doadores por tipo"
	SheetByStatus = "Agendamentos por status"
)

type Service struct {
	reports repository.ReportRepository
	stock   repository.StockRepository
}

func NewService(reports repository.ReportRepository, stock repository.StockRepository) *Service {
	return &Service{reports: reports, stock: stock}
}

func (s *Service) DonorsByBloodType(ctx context.Context) ([]*model.BloodTypeCount, error) {
	counts, err := s.reports.DonorsByBloodType(ctx)
	if err != nil {
		return nil, apperrors.Internal(msgReportFailed, err)
	}
	return counts, nil
}

func (s *Service) AppointmentsByStatus(ctx context.Context) ([]*model.StatusCount, error) {
	counts, err := s.reports.AppointmentsByStatus(ctx)
	if err != nil {
		return nil, apperrors.Internal(msgReportFailed, err)
	}
	return counts, nil
}

// Workbook builds a spreadsheet with the stock grid and both aggregates,
// one sheet each. The caller must Close the returned file.
func (s *Service) Workbook(ctx context.Context) (*excelize.File, error) {
	entries, err := s.stock.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(msgReportFailed, err)
	}
	byType, err := s.DonorsByBloodType(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.AppointmentsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := writeWorkbook(f, entries, byType, byStatus); err != nil {
		f.Close()
		return nil, apperrors.Internal(msgReportFailed, err)
	}
	return f, nil
}

func writeWorkbook(f *excelize.File, entries []*model.StockEntry, byType []*model.BloodTypeCount, byStatus []*model.StatusCount) error {
	if err := f.SetSheetName("Sheet1", SheetStock); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetByType); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetByStatus); err != nil {
		return err
	}

	stockRows := make([][]interface{}, 0, len(entries))
	for _, e := range entries {
		stockRows = append(stockRows, []interface{}{
			string(e.TipoSanguineo),
			e.QuantidadeML,
			string(e.Nivel),
			e.UltimaAtualizacao.Format(time.DateTime),
		})
	}
	if err := writeSheet(f, SheetStock, []string{"Tipo sanguíneo", "Quantidade (ml)", "Nível", "Última atualização"}, stockRows); err != nil {
		return err
	}

	typeRows := make([][]interface{}, 0, len(byType))
	for _, c := range byType {
		typeRows = append(typeRows, []interface{}{string(c.TipoSanguineo), c.Total})
	}
	if err := writeSheet(f, SheetByType, []string{"Tipo sanguíneo", "Total"}, typeRows); err != nil {
		return err
	}

	statusRows := make([][]interface{}, 0, len(byStatus))
	for _, c := range byStatus {
		statusRows = append(statusRows, []interface{}{string(c.Status), c.Total})
	}
	return writeSheet(f, SheetByStatus, []string{"Status", "Total"}, statusRows)
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header %s: %w", h, err)
		}
	}
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r+2, err)
		}
	}
	return nil
}
