package entity

import "github.com/shopspring/decimal"

// InstanceDetail holds the attributes extracted from a configuration summary.
type InstanceDetail struct {
	Type     string   `json:"type"`
	Quantity int      `json:"quantity"`
	Specs    []string `json:"specs"`
}

// LineItem is one resolved cost line: the extracted instance attributes plus
// the payment mode and effective cost produced by the discount rules. The raw
// upfront/monthly values are retained for auditability.
type LineItem struct {
	InstanceDetail
	PaymentMode PaymentMode     `json:"payment_mode"`
	Cost        decimal.Decimal `json:"cost"`
	Upfront     decimal.Decimal `json:"upfront"`
	Monthly     decimal.Decimal `json:"monthly"`
	ServiceName string          `json:"service_name"`
	Config      string          `json:"config"`
}

// Totals acumula os dois totais gerais: No Upfront em base mensal e
// All Upfront/Heavy Utilization em base anual.
type Totals struct {
	NoUpfront  decimal.Decimal `json:"no_upfront"`
	AllUpfront decimal.Decimal `json:"all_upfront"`
}

// Report is the aggregation result of one processing run.
type Report struct {
	Client           ClientIdentity                        `json:"client"`
	Regions          map[string]bool                       `json:"regions"`
	ServicesByRegion map[string]map[ServiceFamily][]LineItem `json:"services_by_region"`
	Totals           Totals                                `json:"totals"`
}

// InstanceCount devolve o número de configurações resolvidas no relatório.
func (r *Report) InstanceCount() int {
	count := 0
	for _, services := range r.ServicesByRegion {
		for _, items := range services {
			count += len(items)
		}
	}
	return count
}
