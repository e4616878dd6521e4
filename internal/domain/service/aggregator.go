package service

import (
	"github.com/shopspring/decimal"

	"github.com/datidev/aws-cost-calculator-go/internal/domain/entity"
)

var twelve = decimal.NewFromInt(12)

// BuildReport executa o pipeline de classificação, extração, resolução e
// agregação sobre as linhas já carregadas. O acumulador é local à chamada e
// devolvido no relatório: duas execuções com as mesmas entradas produzem
// totais idênticos.
func BuildReport(estimate *entity.Estimate, switches PaymentSwitches) entity.Report {
	report := entity.Report{
		Client:           estimate.Client,
		Regions:          make(map[string]bool),
		ServicesByRegion: make(map[string]map[entity.ServiceFamily][]entity.LineItem),
		Totals: entity.Totals{
			NoUpfront:  decimal.Zero,
			AllUpfront: decimal.Zero,
		},
	}

	for _, row := range estimate.Rows {
		// Toda linha entra no conjunto de regiões, mesmo as descartadas.
		report.Regions[row.Region] = true

		family := Classify(row.Service)
		resolution := Resolve(row, family, switches)
		if resolution.Skip {
			continue
		}

		detail := ExtractInstanceDetail(row.Config, row.Service, family)
		item := entity.LineItem{
			InstanceDetail: detail,
			PaymentMode:    resolution.Mode,
			Cost:           resolution.Cost,
			Upfront:        row.Upfront,
			Monthly:        row.Monthly,
			ServiceName:    row.Service,
			Config:         row.Config,
		}

		if report.ServicesByRegion[row.Region] == nil {
			report.ServicesByRegion[row.Region] = make(map[entity.ServiceFamily][]entity.LineItem)
		}
		report.ServicesByRegion[row.Region][family] = append(report.ServicesByRegion[row.Region][family], item)

		// No Upfront acumula em base mensal; All Upfront/Heavy em base anual.
		// Lambda e Fargate resolvem custo em escala mensal mesmo em All
		// Upfront, por isso a anualização (x12) acontece aqui.
		if resolution.Mode == entity.NoUpfront {
			report.Totals.NoUpfront = report.Totals.NoUpfront.Add(resolution.Cost)
		} else if family == entity.FamilyLambda || family == entity.FamilyFargate {
			report.Totals.AllUpfront = report.Totals.AllUpfront.Add(resolution.Cost.Mul(twelve))
		} else {
			report.Totals.AllUpfront = report.Totals.AllUpfront.Add(resolution.Cost)
		}
	}

	return report
}
