package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/datidev/aws-cost-calculator-go/internal/domain/entity"
)

// PaymentSwitches são as opções globais de pagamento escolhidas pelo operador
// para Lambda e ECS Fargate (uma das constantes entity.PaymentOption*).
type PaymentSwitches struct {
	Lambda  string
	Fargate string
}

// Resolution is the outcome of the payment-mode and discount rules for one
// row: the resolved mode and effective cost, or a signal to drop the row.
type Resolution struct {
	Mode entity.PaymentMode
	Cost decimal.Decimal
	Skip bool
}

// Percentuais de desconto fixos negociados por família de serviço.
// Valores de política comercial; alterar somente com o time de vendas.
var (
	cloudFrontMultiplier = decimal.RequireFromString("0.70")

	lambdaSPAllUpfront    = decimal.RequireFromString("0.85")
	lambdaSPNoUpfront     = decimal.RequireFromString("0.90")
	lambdaOtherAllUpfront = decimal.RequireFromString("0.83")
	lambdaOtherNoUpfront  = decimal.RequireFromString("0.88")

	fargateSPAllUpfrontARM = decimal.RequireFromString("0.74")
	fargateSPAllUpfrontX86 = decimal.RequireFromString("0.78")
	fargateSPNoUpfrontARM  = decimal.RequireFromString("0.79")
	fargateSPNoUpfrontX86  = decimal.RequireFromString("0.85")
	fargateOtherAllUpfront = decimal.RequireFromString("0.73")
	fargateOtherNoUpfrontARM = decimal.RequireFromString("0.79")
	fargateOtherNoUpfrontX86 = decimal.RequireFromString("0.80")

	rdsStorageDiscountSP    = decimal.RequireFromString("4.38")
	rdsStorageDiscountOther = decimal.RequireFromString("2.30")
)

// rdsSmallStorageMarker identifica a franquia fixa de armazenamento que
// habilita o desconto regional do RDS.
const rdsSmallStorageMarker = "Quantidade de armazenamento (20 GB)"

// onDemandOnlyCacheSKU reclassifica linhas All Upfront do ElastiCache como
// Heavy Utilization: esse SKU só existe sob demanda.
const onDemandOnlyCacheSKU = "cache.t2.micro"

var (
	allUpfrontTagVariants = []string{"All Upfront", "ALL Upfront", "All UpFront"}
	noUpfrontTagVariants  = []string{"No Upfront", "No UpFront", "No-UpFront"}
	onDemandTagVariants   = []string{"On-demand", "On Demand", "On-Demand"}
)

func containsAny(s string, variants []string) bool {
	for _, v := range variants {
		if strings.Contains(s, v) {
			return true
		}
	}
	return false
}

// isSaoPauloRegion separa a região de São Paulo (América do Sul) das demais
// para fins de desconto.
func isSaoPauloRegion(region string) bool {
	return strings.Contains(region, "São Paulo") || strings.Contains(region, "América do Sul")
}

// baselineRule é um par (predicado, resolução) avaliado em ordem de
// prioridade: a primeira regra que casar vence.
type baselineRule struct {
	matches func(row entity.RawRow, family entity.ServiceFamily) bool
	resolve func(row entity.RawRow, family entity.ServiceFamily) (entity.PaymentMode, decimal.Decimal)
}

// baselineRules classifica o modo de pagamento antes dos ajustes por família.
// A ordem das regras é contratual, não reordenar.
var baselineRules = []baselineRule{
	{
		matches: func(row entity.RawRow, _ entity.ServiceFamily) bool {
			return containsAny(row.Hierarchy, allUpfrontTagVariants)
		},
		resolve: func(row entity.RawRow, family entity.ServiceFamily) (entity.PaymentMode, decimal.Decimal) {
			if family == entity.FamilyElastiCache && strings.Contains(row.Config, onDemandOnlyCacheSKU) {
				return entity.HeavyUtilization, row.Upfront
			}
			return entity.AllUpfront, row.Upfront
		},
	},
	{
		matches: func(row entity.RawRow, _ entity.ServiceFamily) bool {
			return strings.Contains(row.Config, "Heavy Utilization")
		},
		resolve: func(row entity.RawRow, _ entity.ServiceFamily) (entity.PaymentMode, decimal.Decimal) {
			return entity.HeavyUtilization, row.Upfront
		},
	},
	{
		matches: func(row entity.RawRow, _ entity.ServiceFamily) bool {
			return containsAny(row.Hierarchy, noUpfrontTagVariants)
		},
		resolve: func(row entity.RawRow, _ entity.ServiceFamily) (entity.PaymentMode, decimal.Decimal) {
			return entity.NoUpfront, row.Monthly
		},
	},
	{
		matches: func(entity.RawRow, entity.ServiceFamily) bool { return true },
		resolve: func(row entity.RawRow, _ entity.ServiceFamily) (entity.PaymentMode, decimal.Decimal) {
			return entity.NoUpfront, row.Monthly
		},
	},
}

// Resolve aplica a classificação de modo de pagamento e os descontos por
// família a uma linha. A ordem das etapas é sensível: classificação base,
// ajuste por família, correção de adiantamento zero e, por último, o filtro
// de linhas On Demand (que não revalida o custo já calculado).
func Resolve(row entity.RawRow, family entity.ServiceFamily, switches PaymentSwitches) Resolution {
	var mode entity.PaymentMode
	var cost decimal.Decimal
	for _, rule := range baselineRules {
		if rule.matches(row, family) {
			mode, cost = rule.resolve(row, family)
			break
		}
	}

	switch family {
	case entity.FamilyCloudFront:
		mode, cost = resolveCloudFront(row)
	case entity.FamilyLambda:
		mode, cost = resolveLambda(row, switches.Lambda)
	case entity.FamilyFargate:
		mode, cost = resolveFargate(row, switches.Fargate)
	case entity.FamilyRDS:
		cost = resolveRDSCost(row, mode)
	default:
		// Correção: adiantamento zero com mensal positivo só pode ser No Upfront.
		// As quatro famílias acima já carregam custos próprios e não passam aqui.
		if row.Upfront.IsZero() && row.Monthly.IsPositive() {
			mode = entity.NoUpfront
			cost = row.Monthly
		}
	}

	// Linhas On Demand são descartadas, exceto Lambda, Fargate e CloudFront,
	// que sempre seguem o próprio fluxo de desconto.
	if containsAny(row.Hierarchy, onDemandTagVariants) {
		switch family {
		case entity.FamilyLambda, entity.FamilyFargate, entity.FamilyCloudFront:
		default:
			return Resolution{Skip: true}
		}
	}
	if family == entity.FamilyUnknown {
		return Resolution{Skip: true}
	}

	return Resolution{Mode: mode, Cost: cost}
}

// resolveCloudFront: sempre No Upfront com 30% de desconto sobre o valor
// mensal (ou o adiantado, quando não há mensal).
func resolveCloudFront(row entity.RawRow) (entity.PaymentMode, decimal.Decimal) {
	base := row.Monthly
	if !base.IsPositive() {
		base = row.Upfront
	}
	return entity.NoUpfront, base.Mul(cloudFrontMultiplier)
}

// resolveLambda: o modo vem da opção de pagamento global; o multiplicador
// depende da região (São Paulo vs. demais) e do modo.
func resolveLambda(row entity.RawRow, paymentOption string) (entity.PaymentMode, decimal.Decimal) {
	mode := entity.NoUpfront
	if strings.Contains(paymentOption, "All Upfront") {
		mode = entity.AllUpfront
	}

	base := row.Monthly
	if mode == entity.AllUpfront {
		if row.Upfront.IsPositive() {
			base = row.Upfront
		}
	}

	var multiplier decimal.Decimal
	if isSaoPauloRegion(row.Region) {
		if mode == entity.AllUpfront {
			multiplier = lambdaSPAllUpfront
		} else {
			multiplier = lambdaSPNoUpfront
		}
	} else {
		if mode == entity.AllUpfront {
			multiplier = lambdaOtherAllUpfront
		} else {
			multiplier = lambdaOtherNoUpfront
		}
	}
	return mode, base.Mul(multiplier)
}

// resolveFargate: o modo vem da opção de pagamento global; o multiplicador
// depende da região, do modo e da arquitetura (ARM vs. x86). A base é sempre
// o valor mensal.
func resolveFargate(row entity.RawRow, paymentOption string) (entity.PaymentMode, decimal.Decimal) {
	mode := entity.NoUpfront
	if strings.Contains(paymentOption, "All Upfront") {
		mode = entity.AllUpfront
	}
	isARM := strings.Contains(row.Config, "ARM")

	var multiplier decimal.Decimal
	if isSaoPauloRegion(row.Region) {
		switch {
		case mode == entity.AllUpfront && isARM:
			multiplier = fargateSPAllUpfrontARM
		case mode == entity.AllUpfront:
			multiplier = fargateSPAllUpfrontX86
		case isARM:
			multiplier = fargateSPNoUpfrontARM
		default:
			multiplier = fargateSPNoUpfrontX86
		}
	} else {
		switch {
		case mode == entity.AllUpfront:
			multiplier = fargateOtherAllUpfront
		case isARM:
			multiplier = fargateOtherNoUpfrontARM
		default:
			multiplier = fargateOtherNoUpfrontX86
		}
	}
	return mode, row.Monthly.Mul(multiplier)
}

// resolveRDSCost: linhas No Upfront partem do valor mensal e, quando a
// configuração marca a franquia fixa de 20 GB, recebem um desconto regional
// fixo de armazenamento. Demais modos usam o valor adiantado sem ajuste.
func resolveRDSCost(row entity.RawRow, mode entity.PaymentMode) decimal.Decimal {
	if mode != entity.NoUpfront {
		return row.Upfront
	}
	cost := row.Monthly
	if strings.Contains(row.Config, rdsSmallStorageMarker) {
		if isSaoPauloRegion(row.Region) {
			cost = cost.Sub(rdsStorageDiscountSP)
		} else {
			cost = cost.Sub(rdsStorageDiscountOther)
		}
	}
	return cost
}
