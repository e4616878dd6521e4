package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/datidev/aws-cost-calculator-go/internal/application/usecase"
	"github.com/datidev/aws-cost-calculator-go/internal/domain/entity"
	"github.com/datidev/aws-cost-calculator-go/internal/shared/types"
	"github.com/datidev/aws-cost-calculator-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd      *cobra.Command
	quoteUseCase *usecase.QuoteUseCase
	version      string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "aws-cost-calculator [estimate.csv]",
		Short:   "AWS Cost Calculator CLI",
		Long:    "Processes an AWS Pricing Calculator CSV export and produces a commercial cost summary with reseller discounts applied.",
		Version: formattedVersion, // Use a versão formatada
		Args:    cobra.ExactArgs(1),
		RunE:    app.runCommand,
	}

	// Personaliza a template para incluir mais informações de versão
	rootCmd.SetVersionTemplate(`{{printf "AWS Cost Calculator version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().Float64P("exchange-rate", "e", usecase.DefaultExchangeRate, "USD to BRL exchange rate used in the financial summary")
	rootCmd.PersistentFlags().Float64P("tax-rate", "t", usecase.DefaultTaxRate, "Tax rate percentage applied on top of the USD totals")
	rootCmd.PersistentFlags().String("lambda-payment", entity.PaymentOptionNoUpfront, "Payment option for Lambda ('No Upfront 12x pela AWS' or 'All Upfront 06x pela TdSynnex')")
	rootCmd.PersistentFlags().String("fargate-payment", entity.PaymentOptionNoUpfront, "Payment option for Fargate ('No Upfront 12x pela AWS' or 'All Upfront 06x pela TdSynnex')")
	rootCmd.PersistentFlags().StringP("report-name", "n", "resumo_aws", "Specify the base name for the report files (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Additional report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().Bool("summary-only", false, "Skip the terminal dashboard and print only the text summary")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(estimateFile string) (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	exchangeRate, _ := app.rootCmd.Flags().GetFloat64("exchange-rate")
	taxRate, _ := app.rootCmd.Flags().GetFloat64("tax-rate")
	lambdaPayment, _ := app.rootCmd.Flags().GetString("lambda-payment")
	fargatePayment, _ := app.rootCmd.Flags().GetString("fargate-payment")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	summaryOnly, _ := app.rootCmd.Flags().GetBool("summary-only")

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:           configFile,
		EstimateFile:         estimateFile,
		ExchangeRate:         exchangeRate,
		TaxRate:              taxRate,
		LambdaPaymentOption:  lambdaPayment,
		FargatePaymentOption: fargatePayment,
		ReportName:           reportName,
		ReportType:           reportType,
		Dir:                  dir,
		SummaryOnly:          summaryOnly,
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs(args[0])
	if err != nil {
		return err
	}

	// Erros de execução já são reportados com contexto pelo caso de uso
	cmd.SilenceUsage = true

	ctx := context.Background()
	return app.quoteUseCase.Run(ctx, cliArgs)
}

// SetQuoteUseCase sets the quote use case for the CLI app.
func (app *CLIApp) SetQuoteUseCase(useCase *usecase.QuoteUseCase) {
	app.quoteUseCase = useCase
}
