package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	ExchangeRate         float64  `json:"exchange_rate" yaml:"exchange_rate" toml:"exchange_rate"`
	TaxRate              float64  `json:"tax_rate" yaml:"tax_rate" toml:"tax_rate"`
	LambdaPaymentOption  string   `json:"lambda_payment_option" yaml:"lambda_payment_option" toml:"lambda_payment_option"`
	FargatePaymentOption string   `json:"fargate_payment_option" yaml:"fargate_payment_option" toml:"fargate_payment_option"`
	ReportName           string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType           []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir                  string   `json:"dir" yaml:"dir" toml:"dir"`
}
