package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/datidev/aws-cost-calculator-go/internal/domain/entity"
	"github.com/datidev/aws-cost-calculator-go/internal/domain/repository"
	"github.com/datidev/aws-cost-calculator-go/internal/domain/service"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// WriteSummaryText grava o resumo comercial como texto plano. O nome do
// arquivo segue o padrão do download original: resumo_aws_<cliente>_<conta>.txt.
func (r *ExportRepositoryImpl) WriteSummaryText(summary string, client entity.ClientIdentity, outputDir string) (string, error) {
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		outputDir = cwd
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", outputDir, err)
	}

	filename := fmt.Sprintf("resumo_aws_%s_%s.txt", client.ClientName, client.AccountID)
	outputFilename := filepath.Join(outputDir, filename)

	if err := os.WriteFile(outputFilename, []byte(summary), 0644); err != nil {
		return "", fmt.Errorf("error writing summary file: %w", err)
	}
	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportReportToCSV(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Região", "Serviço", "Tipo", "Quantidade",
		"Modo de pagamento", "Custo (USD)", "Especificações",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, region := range sortedRegions(report) {
		services := report.ServicesByRegion[region]
		for _, family := range entity.FamilyOrder {
			for _, item := range services[family] {
				record := []string{
					region,
					string(family),
					item.Type,
					fmt.Sprintf("%d", item.Quantity),
					string(item.PaymentMode),
					item.Cost.StringFixed(2),
					strings.Join(item.Specs, " | "),
				}
				if err := writer.Write(record); err != nil {
					return "", fmt.Errorf("error writing CSV record: %w", err)
				}
			}
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportReportToJSON(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportReportToPDF(report entity.Report, summary, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{27, 15, 93}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if strings.TrimSpace(content) == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  Resumo de Custos AWS: %s", report.Client.ClientName)), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Conta AWS: %s", report.Client.AccountID)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	// Uma seção por região, na mesma ordem do resumo em texto.
	for _, region := range sortedRegions(report) {
		services := report.ServicesByRegion[region]
		var b strings.Builder
		for _, family := range entity.FamilyOrder {
			for _, item := range services[family] {
				b.WriteString(fmt.Sprintf("%s | %dx %s | %s | USD %s\n",
					family, item.Quantity, item.Type, item.PaymentMode, service.FormatUSD(item.Cost)))
			}
		}
		drawSection(service.RegionDisplayName(region), b.String())
	}

	// Totais gerais
	var totals strings.Builder
	if report.Totals.NoUpfront.IsPositive() {
		totals.WriteString(fmt.Sprintf("No Upfront: USD %s/mês\n", service.FormatUSD(report.Totals.NoUpfront)))
	}
	if report.Totals.AllUpfront.IsPositive() {
		totals.WriteString(fmt.Sprintf("All Upfront: USD %s/ano\n", service.FormatUSD(report.Totals.AllUpfront)))
	}
	drawSection("Totais", totals.String())

	drawSection("Resumo comercial", summary)

	// Rodapé
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by AWS Cost Calculator (Go) | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

func sortedRegions(report entity.Report) []string {
	regions := make([]string, 0, len(report.ServicesByRegion))
	for region := range report.ServicesByRegion {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}
