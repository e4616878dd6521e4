package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile           string
	EstimateFile         string
	ExchangeRate         float64
	TaxRate              float64
	LambdaPaymentOption  string
	FargatePaymentOption string
	ReportName           string
	ReportType           []string
	Dir                  string
	SummaryOnly          bool
}
