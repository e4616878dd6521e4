package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/datidev/aws-cost-calculator-go/internal/domain/entity"
)

func sampleReport() entity.Report {
	return entity.Report{
		Client: entity.ClientIdentity{ClientName: "Cliente X", AccountID: "123456789012"},
		Regions: map[string]bool{
			"Leste dos EUA (N. da Virgínia)": true,
		},
		ServicesByRegion: map[string]map[entity.ServiceFamily][]entity.LineItem{
			"Leste dos EUA (N. da Virgínia)": {
				entity.FamilyEC2: {
					{
						InstanceDetail: entity.InstanceDetail{
							Type:     "t3.medium",
							Quantity: 2,
							Specs:    []string{"N/A", "Linux"},
						},
						PaymentMode: entity.NoUpfront,
						Cost:        decimal.RequireFromString("100.50"),
					},
				},
			},
		},
		Totals: entity.Totals{
			NoUpfront:  decimal.RequireFromString("100.50"),
			AllUpfront: decimal.Zero,
		},
	}
}

func TestWriteSummaryText(t *testing.T) {
	repo := &ExportRepositoryImpl{}
	dir := t.TempDir()

	client := entity.ClientIdentity{ClientName: "Cliente X", AccountID: "123456789012"}
	path, err := repo.WriteSummaryText("conteúdo do resumo", client, dir)
	if err != nil {
		t.Fatalf("WriteSummaryText returned error: %v", err)
	}

	if filepath.Base(path) != "resumo_aws_Cliente X_123456789012.txt" {
		t.Errorf("filename = %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading summary file: %v", err)
	}
	if string(data) != "conteúdo do resumo" {
		t.Errorf("content = %q", string(data))
	}
}

func TestExportReportToCSV(t *testing.T) {
	repo := &ExportRepositoryImpl{}
	dir := t.TempDir()

	path, err := repo.ExportReportToCSV(sampleReport(), "resumo_aws", dir)
	if err != nil {
		t.Fatalf("ExportReportToCSV returned error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening CSV: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("records = %d, want header + 1 row", len(records))
	}
	if records[0][0] != "Região" {
		t.Errorf("header[0] = %q, want Região", records[0][0])
	}
	row := records[1]
	if row[1] != "EC2" || row[2] != "t3.medium" || row[3] != "2" {
		t.Errorf("row = %v", row)
	}
	if row[5] != "100.50" {
		t.Errorf("cost = %q, want 100.50", row[5])
	}
}

func TestExportReportToJSON(t *testing.T) {
	repo := &ExportRepositoryImpl{}
	dir := t.TempDir()

	path, err := repo.ExportReportToJSON(sampleReport(), "resumo_aws", dir)
	if err != nil {
		t.Fatalf("ExportReportToJSON returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading JSON: %v", err)
	}

	var decoded entity.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding JSON: %v", err)
	}
	if decoded.Client.AccountID != "123456789012" {
		t.Errorf("AccountID = %q", decoded.Client.AccountID)
	}
	if !decoded.Totals.NoUpfront.Equal(decimal.RequireFromString("100.50")) {
		t.Errorf("NoUpfront = %s", decoded.Totals.NoUpfront)
	}
}

func TestExportReportToPDF(t *testing.T) {
	repo := &ExportRepositoryImpl{}
	dir := t.TempDir()

	path, err := repo.ExportReportToPDF(sampleReport(), "resumo comercial", "resumo_aws", dir)
	if err != nil {
		t.Fatalf("ExportReportToPDF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Error("output does not look like a PDF file")
	}
}

func TestGenerateFilenameCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub", "dir")

	path, err := generateFilename("resumo_aws", dir, "csv")
	if err != nil {
		t.Fatalf("generateFilename returned error: %v", err)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("directory was not created: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "resumo_aws_") || !strings.HasSuffix(path, ".csv") {
		t.Errorf("unexpected filename: %q", path)
	}
}
