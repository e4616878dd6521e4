package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/datidev/aws-cost-calculator-go/internal/domain/entity"
)

// FinancialOptions é a configuração financeira fornecida pelo operador.
type FinancialOptions struct {
	ExchangeRate decimal.Decimal
	TaxRate      decimal.Decimal
	Switches     PaymentSwitches
}

var oneHundred = decimal.NewFromInt(100)

// FormatUSD formata um valor monetário com duas casas decimais e separador de
// milhar, no mesmo formato dos modelos de resumo ("1,234.56").
func FormatUSD(d decimal.Decimal) string {
	return humanize.FormatFloat("#,###.##", d.InexactFloat64())
}

// RegionDisplayName mapeia o nome exportado da região para o nome usado nos
// resumos comerciais.
func RegionDisplayName(region string) string {
	switch {
	case strings.Contains(region, "N. da Virgínia"),
		strings.Contains(region, "N. Virginia"),
		strings.Contains(region, "Leste dos EUA"):
		return "N. Virginia"
	case isSaoPauloRegion(region):
		return "São Paulo"
	}
	return region
}

// GenerateSummary renderiza o resumo comercial em texto a partir do
// relatório agregado. Os subtotais por serviço são recalculados aqui a partir
// das listas de instâncias e devem reconciliar com os totais do agregador.
func GenerateSummary(report entity.Report, opts FinancialOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Resumos dos recursos a serem reservados\n%s - %s\n\n",
		report.Client.ClientName, report.Client.AccountID)

	totalNoUpfront := decimal.Zero
	totalAllUpfront := decimal.Zero

	regions := make([]string, 0, len(report.Regions))
	for region := range report.Regions {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	for _, region := range regions {
		services, ok := report.ServicesByRegion[region]
		if !ok {
			continue
		}

		regionName := RegionDisplayName(region)
		fmt.Fprintf(&b, "%s\n", regionName)

		for _, family := range entity.FamilyOrder {
			instances := services[family]
			if len(instances) == 0 {
				continue
			}

			noUpfrontInstances := lo.Filter(instances, func(i entity.LineItem, _ int) bool {
				return i.PaymentMode == entity.NoUpfront
			})
			allUpfrontInstances := lo.Filter(instances, func(i entity.LineItem, _ int) bool {
				return i.PaymentMode == entity.AllUpfront || i.PaymentMode == entity.HeavyUtilization
			})

			noUpfrontCost := sumCosts(noUpfrontInstances)
			allUpfrontCost := sumCosts(allUpfrontInstances)

			totalNoUpfront = totalNoUpfront.Add(noUpfrontCost)
			if family == entity.FamilyLambda || family == entity.FamilyFargate {
				totalAllUpfront = totalAllUpfront.Add(allUpfrontCost.Mul(twelve))
			} else {
				totalAllUpfront = totalAllUpfront.Add(allUpfrontCost)
			}

			switch family {
			case entity.FamilyEC2:
				fmt.Fprintf(&b, "EC2 Instances - %02d instâncias - Conta AWS %s\n",
					sumQuantities(instances), report.Client.AccountID)
				b.WriteString("Tipos de Instancias:\n")
				for _, instance := range instances {
					fmt.Fprintf(&b, "-%d - %s (%s, %s)\n",
						instance.Quantity, instance.Type, spec(instance, 0), spec(instance, 1))
				}
				writeSubtotals(&b, noUpfrontCost, allUpfrontCost)

			case entity.FamilyRDS:
				fmt.Fprintf(&b, "RDS - %02d instâncias - Conta AWS %s\n",
					sumQuantities(instances), report.Client.AccountID)
				b.WriteString("Tipos de Instancias:\n")
				for _, instance := range instances {
					// O modo de pagamento resolvido substitui a opção de compra extraída.
					fmt.Fprintf(&b, "-%d - %s (%s, %s, %s, %s)\n",
						instance.Quantity, instance.Type,
						spec(instance, 0), instance.PaymentMode, spec(instance, 2), spec(instance, 3))
				}
				writeSubtotals(&b, noUpfrontCost, allUpfrontCost)

			case entity.FamilyElastiCache:
				fmt.Fprintf(&b, "ElastiCache - %02d nós - Conta AWS %s\n",
					sumQuantities(instances), report.Client.AccountID)
				b.WriteString("Tipos de Instancias:\n")
				for _, instance := range instances {
					fmt.Fprintf(&b, "-%d - %s (%s, %s, %s)\n",
						instance.Quantity, instance.Type,
						instance.PaymentMode, spec(instance, 1), spec(instance, 2))
				}
				writeSubtotals(&b, noUpfrontCost, allUpfrontCost)

			case entity.FamilyCloudFront:
				fmt.Fprintf(&b, "CloudFront - Conta AWS %s\n", report.Client.AccountID)
				b.WriteString("Período: 1 ano\n")
				b.WriteString("Forma de pagamento: No Upfront em 12x pela AWS\n")
				fmt.Fprintf(&b, "Valor total mensal: USD %s (sem impostos)\n", FormatUSD(noUpfrontCost))

			case entity.FamilyLambda:
				fmt.Fprintf(&b, "Lambda - Conta AWS %s\n", report.Client.AccountID)
				fmt.Fprintf(&b, "Forma de pagamento: %s\n", opts.Switches.Lambda)
				if noUpfrontCost.IsPositive() {
					fmt.Fprintf(&b, "Valor total No Upfront: USD %s/mês\n", FormatUSD(noUpfrontCost))
				}
				if allUpfrontCost.IsPositive() {
					fmt.Fprintf(&b, "Valor total All Upfront: USD %s/ano\n", FormatUSD(allUpfrontCost.Mul(twelve)))
				}

			case entity.FamilyFargate:
				fmt.Fprintf(&b, "ECS fargate - %s - Conta AWS %s\n", regionName, report.Client.AccountID)
				b.WriteString("Período: 1 ano\n")
				fmt.Fprintf(&b, "Forma de pagamento: %s\n", opts.Switches.Fargate)
				for _, instance := range instances {
					architecture := specDefault(instance, 0, "x86")
					osSystem := specDefault(instance, 1, "Linux")
					fmt.Fprintf(&b, "Configuração: %s %s\n", osSystem, architecture)
				}
				if noUpfrontCost.IsPositive() {
					fmt.Fprintf(&b, "Valor total No Upfront: USD %s/mês\n", FormatUSD(noUpfrontCost))
				}
				if allUpfrontCost.IsPositive() {
					fmt.Fprintf(&b, "Valor total All Upfront: USD %s/ano\n", FormatUSD(allUpfrontCost.Mul(twelve)))
				}
			}

			b.WriteString("\n")
		}
	}

	writeFinancialSummary(&b, totalNoUpfront, totalAllUpfront, opts)

	return b.String()
}

// writeFinancialSummary fecha o resumo com impostos, conversão para reais e
// parcelamento. No Upfront anualiza (x12) antes dos impostos e volta à base
// mensal no valor final em reais.
func writeFinancialSummary(b *strings.Builder, totalNoUpfront, totalAllUpfront decimal.Decimal, opts FinancialOptions) {
	taxFactor := opts.TaxRate.Div(oneHundred)

	if totalAllUpfront.IsPositive() {
		taxes := totalAllUpfront.Mul(taxFactor)
		withTaxes := totalAllUpfront.Add(taxes)
		brl := withTaxes.Mul(opts.ExchangeRate)
		installment := brl.Div(decimal.NewFromInt(6))

		b.WriteString("Resumo financeiro All Upfront:\n")
		fmt.Fprintf(b, "Valor total (sem imposto): USD %s/ano\n", FormatUSD(totalAllUpfront))
		fmt.Fprintf(b, "Impostos: USD %s/ano\n", FormatUSD(taxes))
		fmt.Fprintf(b, "Valor do dólar (aproximado): R$ %s\n", opts.ExchangeRate.StringFixed(2))
		fmt.Fprintf(b, "Valor total em reais (com imposto): R$ %s/ano\n", FormatUSD(brl))
		fmt.Fprintf(b, "Parcelamento TdSynnex(com imposto): 06x R$ %s via TdSynnex\n\n", FormatUSD(installment))
	}

	if totalNoUpfront.IsPositive() {
		annual := totalNoUpfront.Mul(twelve)
		taxes := annual.Mul(taxFactor)
		withTaxes := annual.Add(taxes)
		brlMonthly := withTaxes.Mul(opts.ExchangeRate).Div(twelve)

		b.WriteString("Resumo financeiro No Upfront:\n")
		fmt.Fprintf(b, "Valor total (sem imposto): USD %s/ano\n", FormatUSD(annual))
		fmt.Fprintf(b, "Impostos: USD %s/ano\n", FormatUSD(taxes))
		fmt.Fprintf(b, "Valor do dólar (aproximado): R$ %s\n", opts.ExchangeRate.StringFixed(2))
		fmt.Fprintf(b, "Valor total em reais (com imposto): 12x R$ %s via AWS\n", FormatUSD(brlMonthly))
	}
}

func writeSubtotals(b *strings.Builder, noUpfrontCost, allUpfrontCost decimal.Decimal) {
	if noUpfrontCost.IsPositive() {
		fmt.Fprintf(b, "Valor total No Upfront: USD %s/mês\n", FormatUSD(noUpfrontCost))
	}
	if allUpfrontCost.IsPositive() {
		fmt.Fprintf(b, "Valor total All Upfront: USD %s/ano\n", FormatUSD(allUpfrontCost))
	}
}

func sumCosts(instances []entity.LineItem) decimal.Decimal {
	return lo.Reduce(instances, func(acc decimal.Decimal, i entity.LineItem, _ int) decimal.Decimal {
		return acc.Add(i.Cost)
	}, decimal.Zero)
}

func sumQuantities(instances []entity.LineItem) int {
	return lo.SumBy(instances, func(i entity.LineItem) int { return i.Quantity })
}

func spec(instance entity.LineItem, index int) string {
	return specDefault(instance, index, "N/A")
}

func specDefault(instance entity.LineItem, index int, fallback string) string {
	if index < len(instance.Specs) {
		return instance.Specs[index]
	}
	return fallback
}
