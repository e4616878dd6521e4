package repository

import "github.com/datidev/aws-cost-calculator-go/internal/domain/entity"

// ExportRepository defines the interface for report export operations.
type ExportRepository interface {
	// WriteSummaryText grava o resumo comercial como texto plano, com o nome
	// de arquivo derivado do cliente e da conta.
	WriteSummaryText(summary string, client entity.ClientIdentity, outputDir string) (string, error)

	ExportReportToCSV(report entity.Report, filename, outputDir string) (string, error)
	ExportReportToJSON(report entity.Report, filename, outputDir string) (string, error)
	ExportReportToPDF(report entity.Report, summary, filename, outputDir string) (string, error)
}
