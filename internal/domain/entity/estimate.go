package entity

import "github.com/shopspring/decimal"

// ServiceFamily identifica uma das categorias de serviço reconhecidas pelo motor.
type ServiceFamily string

const (
	FamilyEC2         ServiceFamily = "EC2"
	FamilyRDS         ServiceFamily = "RDS"
	FamilyElastiCache ServiceFamily = "ElastiCache"
	FamilyCloudFront  ServiceFamily = "CloudFront"
	FamilyLambda      ServiceFamily = "Lambda"
	FamilyFargate     ServiceFamily = "Fargate"
	FamilyUnknown     ServiceFamily = ""
)

// FamilyOrder é a ordem fixa dos serviços no resumo e nos relatórios.
var FamilyOrder = []ServiceFamily{
	FamilyEC2,
	FamilyRDS,
	FamilyElastiCache,
	FamilyCloudFront,
	FamilyLambda,
	FamilyFargate,
}

// PaymentMode is the billing-commitment classification of a line item.
type PaymentMode string

const (
	NoUpfront        PaymentMode = "No Upfront"
	AllUpfront       PaymentMode = "All Upfront"
	HeavyUtilization PaymentMode = "Heavy Utilization"
)

// Payment options offered for Lambda and Fargate quotes.
const (
	PaymentOptionNoUpfront  = "No Upfront 12x pela AWS"
	PaymentOptionAllUpfront = "All Upfront 06x pela TdSynnex"
)

// RawRow is one line of the detailed-estimate section, immutable once read.
type RawRow struct {
	Hierarchy string          `json:"hierarchy"`
	Region    string          `json:"region"`
	Service   string          `json:"service"`
	Upfront   decimal.Decimal `json:"upfront"`
	Monthly   decimal.Decimal `json:"monthly"`
	Config    string          `json:"config"`
}

// ClientIdentity contém o nome do cliente e o ID da conta AWS extraídos da
// hierarquia de grupos. Extração é best-effort, sem validação do formato do ID.
type ClientIdentity struct {
	ClientName string `json:"client_name"`
	AccountID  string `json:"account_id"`
}

// Estimate is the parsed detailed-estimate section of one export file.
type Estimate struct {
	Client ClientIdentity `json:"client"`
	Rows   []RawRow       `json:"rows"`

	// NumericFallbacks conta células numéricas ausentes ou inválidas tratadas como zero.
	NumericFallbacks int `json:"numeric_fallbacks,omitempty"`
}
