package main

import (
	"fmt"
	"os"

	"github.com/datidev/aws-cost-calculator-go/internal/adapter/driven/config"
	"github.com/datidev/aws-cost-calculator-go/internal/adapter/driven/estimate"
	"github.com/datidev/aws-cost-calculator-go/internal/adapter/driven/export"
	"github.com/datidev/aws-cost-calculator-go/internal/adapter/driving/cli"
	"github.com/datidev/aws-cost-calculator-go/internal/application/usecase"
	"github.com/datidev/aws-cost-calculator-go/pkg/console"
	"github.com/datidev/aws-cost-calculator-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	estimateRepo := estimate.NewEstimateRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	quoteUseCase := usecase.NewQuoteUseCase(
		estimateRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetQuoteUseCase(quoteUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
