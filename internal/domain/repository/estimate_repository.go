package repository

import "github.com/datidev/aws-cost-calculator-go/internal/domain/entity"

// EstimateRepository define a porta de leitura do export da Calculadora AWS.
type EstimateRepository interface {
	// Load interpreta os bytes brutos de um export CSV.
	Load(data []byte) (*entity.Estimate, error)

	// LoadFile lê e interpreta um export CSV do disco.
	LoadFile(path string) (*entity.Estimate, error)
}
