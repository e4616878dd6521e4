package estimate

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/datidev/aws-cost-calculator-go/internal/domain/entity"
	"github.com/datidev/aws-cost-calculator-go/internal/domain/repository"
	"github.com/datidev/aws-cost-calculator-go/internal/shared/types"
)

// Colunas canônicas (variante em português). A variante em inglês é
// renomeada para este esquema, de modo que o restante do pipeline opere
// sobre um único conjunto de nomes.
const (
	colHierarchy = "Hierarquia de grupos"
	colRegion    = "Região"
	colService   = "Serviço"
	colUpfront   = "Pagamento adiantado"
	colMonthly   = "Mensal"
	colConfig    = "Resumo da configuração"
)

var canonicalColumns = []string{colHierarchy, colRegion, colService, colUpfront, colMonthly, colConfig}

// englishColumns mapeia a variante em inglês do cabeçalho para o esquema canônico.
var englishColumns = map[string]string{
	"Group hierarchy":       colHierarchy,
	"Region":                colRegion,
	"Service":               colService,
	"Upfront":               colUpfront,
	"Monthly":               colMonthly,
	"Configuration summary": colConfig,
}

// EstimateRepositoryImpl implementa o EstimateRepository.
type EstimateRepositoryImpl struct{}

// NewEstimateRepository cria uma nova implementação do EstimateRepository.
func NewEstimateRepository() repository.EstimateRepository {
	return &EstimateRepositoryImpl{}
}

// LoadFile lê e interpreta um export CSV da Calculadora AWS do disco.
func (r *EstimateRepositoryImpl) LoadFile(path string) (*entity.Estimate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading estimate file: %w", err)
	}
	return r.Load(data)
}

// Load interpreta os bytes brutos de um export CSV. O arquivo completo contém
// várias seções; apenas a "Estimativa detalhada" interessa: começa na linha
// seguinte ao marcador e termina na primeira linha em branco ou no marcador
// de confirmação, o que vier primeiro.
func (r *EstimateRepositoryImpl) Load(data []byte) (*entity.Estimate, error) {
	// Remove o BOM UTF-8 opcional que a Calculadora inclui no export.
	content := strings.TrimPrefix(string(data), "\ufeff")
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	startIdx := -1
	for i, line := range lines {
		if strings.Contains(line, "Estimativa detalhada") || strings.Contains(line, "Detailed Estimate") {
			startIdx = i + 1
			break
		}
	}
	if startIdx == -1 {
		return nil, types.ErrEstimateSectionNotFound
	}

	endIdx := len(lines)
	for i := startIdx + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" ||
			strings.Contains(lines[i], "Confirmação") ||
			strings.Contains(lines[i], "Acknowledgement") {
			endIdx = i
			break
		}
	}

	section := strings.Join(lines[startIdx:endIdx], "\n")
	reader := csv.NewReader(strings.NewReader(section))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMissingRequiredColumns, err)
	}

	columnIndex, err := normalizeHeader(header)
	if err != nil {
		return nil, err
	}

	est := &entity.Estimate{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Linhas malformadas não abortam o processamento.
			continue
		}

		cell := func(name string) string {
			idx, ok := columnIndex[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return record[idx]
		}

		row := entity.RawRow{
			Hierarchy: cell(colHierarchy),
			Region:    cell(colRegion),
			Service:   cell(colService),
			Config:    cell(colConfig),
		}
		row.Upfront = r.parseAmount(cell(colUpfront), est)
		row.Monthly = r.parseAmount(cell(colMonthly), est)
		est.Rows = append(est.Rows, row)
	}

	if len(est.Rows) > 0 {
		est.Client = parseClientIdentity(est.Rows[0].Hierarchy)
	}

	return est, nil
}

// normalizeHeader valida o cabeçalho e devolve os índices das colunas
// canônicas. O cabeçalho em inglês é aceito por renomeação.
func normalizeHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if canonical, ok := englishColumns[name]; ok {
			// Só renomeia quando a coluna canônica ainda não apareceu.
			if _, exists := index[canonical]; !exists {
				index[canonical] = i
				continue
			}
		}
		index[name] = i
	}

	for _, col := range canonicalColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w (%s)", types.ErrMissingRequiredColumns, col)
		}
	}
	return index, nil
}

// parseAmount trata valores ausentes ou não numéricos como zero: o export
// nem sempre preenche todas as células e isso não é um erro.
func (r *EstimateRepositoryImpl) parseAmount(raw string, est *entity.Estimate) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		est.NumericFallbacks++
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		est.NumericFallbacks++
		return decimal.Zero
	}
	return d
}

// parseClientIdentity extrai nome do cliente e ID da conta do primeiro
// segmento da hierarquia de grupos. Heurística best-effort em três níveis:
// separador " - " (com três ou mais partes, a última é o ID), depois o último
// espaço. Sem validação do formato do ID.
func parseClientIdentity(hierarchy string) entity.ClientIdentity {
	var identity entity.ClientIdentity
	if !strings.Contains(hierarchy, " > ") {
		return identity
	}
	clientAccount := strings.TrimSpace(strings.Split(hierarchy, " > ")[0])

	switch {
	case strings.Contains(clientAccount, " - "):
		parts := strings.Split(clientAccount, " - ")
		if len(parts) >= 3 {
			identity.ClientName = strings.TrimSpace(strings.Join(parts[:len(parts)-1], " - "))
			identity.AccountID = strings.TrimSpace(parts[len(parts)-1])
		} else if len(parts) == 2 {
			identity.ClientName = strings.TrimSpace(parts[0])
			identity.AccountID = strings.TrimSpace(parts[1])
		}
	case strings.Contains(clientAccount, " "):
		idx := strings.LastIndex(clientAccount, " ")
		identity.ClientName = strings.TrimSpace(clientAccount[:idx])
		identity.AccountID = strings.TrimSpace(clientAccount[idx+1:])
	}
	return identity
}
