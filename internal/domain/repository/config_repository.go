package repository

import "github.com/datidev/aws-cost-calculator-go/internal/shared/types"

// ConfigRepository defines the interface for configuration operations.
type ConfigRepository interface {
	// LoadConfigFile loads configuration from a TOML, YAML, or JSON file.
	LoadConfigFile(filePath string) (*types.Config, error)
}
