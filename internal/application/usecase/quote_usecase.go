package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/datidev/aws-cost-calculator-go/internal/domain/entity"
	"github.com/datidev/aws-cost-calculator-go/internal/domain/repository"
	"github.com/datidev/aws-cost-calculator-go/internal/domain/service"
	"github.com/datidev/aws-cost-calculator-go/internal/shared/types"
)

// Valores padrão quando nem a flag nem o arquivo de configuração definem.
const (
	DefaultExchangeRate = 5.50
	DefaultTaxRate      = 13.83
)

// QuoteUseCase orquestra o pipeline: carga do CSV, agregação, resumo e exports.
type QuoteUseCase struct {
	estimateRepo repository.EstimateRepository
	exportRepo   repository.ExportRepository
	configRepo   repository.ConfigRepository
	console      types.ConsoleInterface
}

// NewQuoteUseCase creates a new quote use case.
func NewQuoteUseCase(
	estimateRepo repository.EstimateRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *QuoteUseCase {
	return &QuoteUseCase{
		estimateRepo: estimateRepo,
		exportRepo:   exportRepo,
		configRepo:   configRepo,
		console:      console,
	}
}

// Run executa o pipeline completo a partir dos argumentos da CLI.
func (uc *QuoteUseCase) Run(ctx context.Context, args *types.CLIArgs) error {
	if err := uc.applyConfigFile(args); err != nil {
		return err
	}

	status := uc.console.Status(fmt.Sprintf("Lendo estimativa '%s'...", args.EstimateFile))

	estimate, err := uc.estimateRepo.LoadFile(args.EstimateFile)
	if err != nil {
		status.Stop()
		return fmt.Errorf("error loading estimate: %w", err)
	}

	status.Update("Calculando custos e descontos...")

	switches := service.PaymentSwitches{
		Lambda:  args.LambdaPaymentOption,
		Fargate: args.FargatePaymentOption,
	}
	report := service.BuildReport(estimate, switches)

	opts := service.FinancialOptions{
		ExchangeRate: decimal.NewFromFloat(args.ExchangeRate),
		TaxRate:      decimal.NewFromFloat(args.TaxRate),
		Switches:     switches,
	}
	summary := service.GenerateSummary(report, opts)

	status.Stop()

	if estimate.NumericFallbacks > 0 {
		uc.console.LogWarning("%d numeric value(s) in the CSV could not be parsed and were treated as $0.00", estimate.NumericFallbacks)
	}
	if report.Client.AccountID == "" {
		uc.console.LogWarning("Could not identify the AWS account in the group hierarchy; summary will show an empty account")
	}

	if !args.SummaryOnly {
		uc.displayDashboard(report, opts)
	}

	uc.console.Println()
	uc.console.Println(summary)

	summaryPath, err := uc.exportRepo.WriteSummaryText(summary, report.Client, args.Dir)
	if err != nil {
		return fmt.Errorf("error writing summary file: %w", err)
	}
	uc.console.LogSuccess("Summary saved to %s", summaryPath)

	return uc.exportReports(report, summary, args)
}

// applyConfigFile mescla valores do arquivo de configuração nos argumentos.
// A flag na linha de comando vence; o arquivo só preenche o que ficou no padrão.
func (uc *QuoteUseCase) applyConfigFile(args *types.CLIArgs) error {
	if args.ConfigFile == "" {
		return nil
	}

	config, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return fmt.Errorf("error loading config file: %w", err)
	}

	if config.ExchangeRate != 0 && args.ExchangeRate == DefaultExchangeRate {
		args.ExchangeRate = config.ExchangeRate
	}
	if config.TaxRate != 0 && args.TaxRate == DefaultTaxRate {
		args.TaxRate = config.TaxRate
	}
	if config.LambdaPaymentOption != "" && args.LambdaPaymentOption == entity.PaymentOptionNoUpfront {
		args.LambdaPaymentOption = config.LambdaPaymentOption
	}
	if config.FargatePaymentOption != "" && args.FargatePaymentOption == entity.PaymentOptionNoUpfront {
		args.FargatePaymentOption = config.FargatePaymentOption
	}
	if config.ReportName != "" && args.ReportName == "resumo_aws" {
		args.ReportName = config.ReportName
	}
	if len(config.ReportType) > 0 && len(args.ReportType) == 0 {
		args.ReportType = config.ReportType
	}
	if config.Dir != "" && args.Dir == "" {
		args.Dir = config.Dir
	}

	return nil
}

// displayDashboard apresenta as métricas principais, as tabelas por região e
// a distribuição de custos antes do resumo em texto.
func (uc *QuoteUseCase) displayDashboard(report entity.Report, opts service.FinancialOptions) {
	uc.displayMetrics(report)

	regions := make([]string, 0, len(report.ServicesByRegion))
	for region := range report.ServicesByRegion {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	for _, region := range regions {
		services := report.ServicesByRegion[region]

		table := uc.console.CreateTable()
		table.AddColumn("Serviço")
		table.AddColumn("Tipo")
		table.AddColumn("Qtd")
		table.AddColumn("Modo de pagamento")
		table.AddColumn("Custo (USD)")

		hasRows := false
		for _, family := range entity.FamilyOrder {
			for _, item := range services[family] {
				table.AddRow(
					string(family),
					item.Type,
					item.Quantity,
					string(item.PaymentMode),
					service.FormatUSD(item.Cost),
				)
				hasRows = true
			}
		}
		if !hasRows {
			continue
		}

		pterm.DefaultSection.Println(service.RegionDisplayName(region))
		uc.console.Println(table.Render())
	}

	uc.console.DisplayCostBars(serviceCostDistribution(report))
	uc.displayFinancialPanel(report, opts)
}

// displayMetrics mostra o cabeçalho com cliente, conta, regiões e serviços.
func (uc *QuoteUseCase) displayMetrics(report entity.Report) {
	regionNames := make([]string, 0, len(report.Regions))
	for region := range report.Regions {
		regionNames = append(regionNames, service.RegionDisplayName(region))
	}
	sort.Strings(regionNames)

	panels := pterm.Panels{
		{
			{Data: pterm.Sprintf("%s\n%s", pterm.LightCyan("Cliente"), report.Client.ClientName)},
			{Data: pterm.Sprintf("%s\n%s", pterm.LightCyan("Conta AWS"), report.Client.AccountID)},
			{Data: pterm.Sprintf("%s\n%d", pterm.LightCyan("Regiões"), len(report.Regions))},
			{Data: pterm.Sprintf("%s\n%d", pterm.LightCyan("Configurações"), report.InstanceCount())},
		},
		{
			{Data: pterm.Sprintf("%s\n%s", pterm.LightCyan("Nomes das regiões"), strings.Join(regionNames, ", "))},
		},
	}

	_ = pterm.DefaultPanel.WithPanels(panels).WithPadding(4).Render()
}

// displayFinancialPanel mostra os totais gerais com a carga tributária aplicada.
func (uc *QuoteUseCase) displayFinancialPanel(report entity.Report, opts service.FinancialOptions) {
	taxFactor := opts.TaxRate.Div(decimal.NewFromInt(100))
	var b strings.Builder

	if report.Totals.NoUpfront.IsPositive() {
		withTaxes := report.Totals.NoUpfront.Add(report.Totals.NoUpfront.Mul(taxFactor))
		fmt.Fprintf(&b, "No Upfront:  USD %s/mês  (USD %s/mês com impostos)\n",
			service.FormatUSD(report.Totals.NoUpfront), service.FormatUSD(withTaxes))
	}
	if report.Totals.AllUpfront.IsPositive() {
		withTaxes := report.Totals.AllUpfront.Add(report.Totals.AllUpfront.Mul(taxFactor))
		fmt.Fprintf(&b, "All Upfront: USD %s/ano  (USD %s/ano com impostos)\n",
			service.FormatUSD(report.Totals.AllUpfront), service.FormatUSD(withTaxes))
	}
	if b.Len() == 0 {
		return
	}

	panel := pterm.DefaultBox.
		WithTitle("Totais Gerais").
		WithBoxStyle(pterm.NewStyle(pterm.FgGreen)).
		Sprint(strings.TrimRight(b.String(), "\n"))
	uc.console.Println("\n" + panel)
}

// exportReports gera os relatórios adicionais pedidos via --report-type.
func (uc *QuoteUseCase) exportReports(report entity.Report, summary string, args *types.CLIArgs) error {
	for _, reportType := range args.ReportType {
		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			path, err := uc.exportRepo.ExportReportToCSV(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export CSV: %v", err)
				continue
			}
			uc.console.LogSuccess("CSV report saved to %s", path)
		case "json":
			path, err := uc.exportRepo.ExportReportToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export JSON: %v", err)
				continue
			}
			uc.console.LogSuccess("JSON report saved to %s", path)
		case "pdf":
			path, err := uc.exportRepo.ExportReportToPDF(report, summary, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export PDF: %v", err)
				continue
			}
			uc.console.LogSuccess("PDF report saved to %s", path)
		case "":
			// Nada a fazer
		default:
			uc.console.LogWarning("Unknown report type: %s (expected csv, json or pdf)", reportType)
		}
	}
	return nil
}

// serviceCostDistribution acumula o custo por família para o gráfico de barras.
func serviceCostDistribution(report entity.Report) []types.ServiceCost {
	costs := make(map[entity.ServiceFamily]decimal.Decimal)
	for _, services := range report.ServicesByRegion {
		for family, items := range services {
			total := costs[family]
			for _, item := range items {
				total = total.Add(item.Cost)
			}
			costs[family] = total
		}
	}

	result := make([]types.ServiceCost, 0, len(costs))
	for _, family := range entity.FamilyOrder {
		if total, ok := costs[family]; ok && total.IsPositive() {
			result = append(result, types.ServiceCost{
				Service: string(family),
				Cost:    total.InexactFloat64(),
			})
		}
	}

	// Maior custo primeiro
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Cost > result[j].Cost
	})
	return result
}
