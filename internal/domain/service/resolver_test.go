package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/datidev/aws-cost-calculator-go/internal/domain/entity"
)

const (
	regionSaoPaulo = "América do Sul (São Paulo)"
	regionVirginia = "Leste dos EUA (N. da Virgínia)"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultSwitches() PaymentSwitches {
	return PaymentSwitches{
		Lambda:  entity.PaymentOptionNoUpfront,
		Fargate: entity.PaymentOptionNoUpfront,
	}
}

func TestResolveBaselineNoUpfront(t *testing.T) {
	row := entity.RawRow{
		Hierarchy: "Cliente X - 123456789012 > No Upfront > Compute",
		Region:    regionVirginia,
		Service:   "Amazon EC2",
		Upfront:   money("50"),
		Monthly:   money("100"),
	}

	res := Resolve(row, entity.FamilyEC2, defaultSwitches())

	if res.Skip {
		t.Fatal("row should not be skipped")
	}
	if res.Mode != entity.NoUpfront {
		t.Errorf("Mode = %q, want No Upfront", res.Mode)
	}
	if !res.Cost.Equal(money("100")) {
		t.Errorf("Cost = %s, want 100", res.Cost)
	}
}

func TestResolveBaselineAllUpfront(t *testing.T) {
	row := entity.RawRow{
		Hierarchy: "Cliente X > All Upfront > Compute",
		Region:    regionVirginia,
		Service:   "Amazon EC2",
		Upfront:   money("1200"),
		Monthly:   money("0"),
	}

	res := Resolve(row, entity.FamilyEC2, defaultSwitches())

	if res.Mode != entity.AllUpfront {
		t.Errorf("Mode = %q, want All Upfront", res.Mode)
	}
	if !res.Cost.Equal(money("1200")) {
		t.Errorf("Cost = %s, want 1200", res.Cost)
	}
}

func TestResolveBaselineTagVariants(t *testing.T) {
	variants := []string{"All Upfront", "ALL Upfront", "All UpFront"}
	for _, variant := range variants {
		row := entity.RawRow{
			Hierarchy: "Cliente > " + variant + " > Grupo",
			Region:    regionVirginia,
			Service:   "Amazon EC2",
			Upfront:   money("600"),
		}
		res := Resolve(row, entity.FamilyEC2, defaultSwitches())
		if res.Mode != entity.AllUpfront {
			t.Errorf("variant %q: Mode = %q, want All Upfront", variant, res.Mode)
		}
	}
}

func TestResolveCacheT2MicroReclassifiedAsHeavy(t *testing.T) {
	row := entity.RawRow{
		Hierarchy: "Cliente > All Upfront > Cache",
		Region:    regionVirginia,
		Service:   "Amazon ElastiCache",
		Upfront:   money("300"),
		Config:    "Tipo de instância (cache.t2.micro), Nós (1)",
	}

	res := Resolve(row, entity.FamilyElastiCache, defaultSwitches())

	if res.Mode != entity.HeavyUtilization {
		t.Errorf("Mode = %q, want Heavy Utilization", res.Mode)
	}
	if !res.Cost.Equal(money("300")) {
		t.Errorf("Cost = %s, want 300", res.Cost)
	}
}

func TestResolveHeavyUtilizationFromConfig(t *testing.T) {
	row := entity.RawRow{
		Hierarchy: "Cliente > Reservas > Cache",
		Region:    regionVirginia,
		Service:   "Amazon ElastiCache",
		Upfront:   money("450"),
		Config:    "Heavy Utilization, Tipo de instância (cache.m6g.large), Nós (2)",
	}

	res := Resolve(row, entity.FamilyElastiCache, defaultSwitches())

	if res.Mode != entity.HeavyUtilization {
		t.Errorf("Mode = %q, want Heavy Utilization", res.Mode)
	}
	if !res.Cost.Equal(money("450")) {
		t.Errorf("Cost = %s, want 450", res.Cost)
	}
}

func TestResolveCloudFrontAlwaysDiscountedNoUpfront(t *testing.T) {
	// Mesmo marcada como All Upfront e On-Demand, a linha de CloudFront segue
	// o próprio fluxo: No Upfront com 30% de desconto sobre o mensal.
	row := entity.RawRow{
		Hierarchy: "Cliente > All Upfront > On-Demand > CDN",
		Region:    regionVirginia,
		Service:   "Amazon CloudFront",
		Upfront:   money("999"),
		Monthly:   money("200"),
	}

	res := Resolve(row, entity.FamilyCloudFront, defaultSwitches())

	if res.Skip {
		t.Fatal("CloudFront row should never be dropped by the on-demand filter")
	}
	if res.Mode != entity.NoUpfront {
		t.Errorf("Mode = %q, want No Upfront", res.Mode)
	}
	if !res.Cost.Equal(money("140")) {
		t.Errorf("Cost = %s, want 140", res.Cost)
	}
}

func TestResolveCloudFrontFallsBackToUpfront(t *testing.T) {
	row := entity.RawRow{
		Hierarchy: "Cliente > CDN",
		Region:    regionVirginia,
		Service:   "Amazon CloudFront",
		Upfront:   money("100"),
		Monthly:   money("0"),
	}

	res := Resolve(row, entity.FamilyCloudFront, defaultSwitches())

	if !res.Cost.Equal(money("70")) {
		t.Errorf("Cost = %s, want 70", res.Cost)
	}
}

func TestResolveLambda(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		option   string
		upfront  string
		monthly  string
		wantMode entity.PaymentMode
		wantCost string
	}{
		{"sao paulo no upfront", regionSaoPaulo, entity.PaymentOptionNoUpfront, "0", "100", entity.NoUpfront, "90"},
		{"sao paulo all upfront", regionSaoPaulo, entity.PaymentOptionAllUpfront, "100", "0", entity.AllUpfront, "85"},
		{"other region no upfront", regionVirginia, entity.PaymentOptionNoUpfront, "0", "100", entity.NoUpfront, "88"},
		{"other region all upfront", regionVirginia, entity.PaymentOptionAllUpfront, "100", "0", entity.AllUpfront, "83"},
		{"all upfront falls back to monthly", regionVirginia, entity.PaymentOptionAllUpfront, "0", "100", entity.AllUpfront, "83"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := entity.RawRow{
				Hierarchy: "Cliente > Serverless",
				Region:    tt.region,
				Service:   "AWS Lambda",
				Upfront:   money(tt.upfront),
				Monthly:   money(tt.monthly),
			}
			switches := PaymentSwitches{Lambda: tt.option, Fargate: entity.PaymentOptionNoUpfront}

			res := Resolve(row, entity.FamilyLambda, switches)

			if res.Mode != tt.wantMode {
				t.Errorf("Mode = %q, want %q", res.Mode, tt.wantMode)
			}
			if !res.Cost.Equal(money(tt.wantCost)) {
				t.Errorf("Cost = %s, want %s", res.Cost, tt.wantCost)
			}
		})
	}
}

func TestResolveFargate(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		option   string
		config   string
		wantCost string
	}{
		{"sp all upfront arm", regionSaoPaulo, entity.PaymentOptionAllUpfront, "Arquitetura da CPU (ARM)", "74"},
		{"sp all upfront x86", regionSaoPaulo, entity.PaymentOptionAllUpfront, "Arquitetura da CPU (x86)", "78"},
		{"sp no upfront arm", regionSaoPaulo, entity.PaymentOptionNoUpfront, "Arquitetura da CPU (ARM)", "79"},
		{"sp no upfront x86", regionSaoPaulo, entity.PaymentOptionNoUpfront, "Arquitetura da CPU (x86)", "85"},
		{"other all upfront", regionVirginia, entity.PaymentOptionAllUpfront, "Arquitetura da CPU (ARM)", "73"},
		{"other no upfront arm", regionVirginia, entity.PaymentOptionNoUpfront, "Arquitetura da CPU (ARM)", "79"},
		{"other no upfront x86", regionVirginia, entity.PaymentOptionNoUpfront, "Arquitetura da CPU (x86)", "80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := entity.RawRow{
				Hierarchy: "Cliente > Containers",
				Region:    tt.region,
				Service:   "AWS Fargate",
				Monthly:   money("100"),
				Config:    tt.config,
			}
			switches := PaymentSwitches{Lambda: entity.PaymentOptionNoUpfront, Fargate: tt.option}

			res := Resolve(row, entity.FamilyFargate, switches)

			if !res.Cost.Equal(money(tt.wantCost)) {
				t.Errorf("Cost = %s, want %s", res.Cost, tt.wantCost)
			}
		})
	}
}

func TestResolveRDSStorageDiscount(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		config   string
		wantCost string
	}{
		{"sao paulo with 20gb marker", regionSaoPaulo, "Quantidade de armazenamento (20 GB)", "95.62"},
		{"other region with 20gb marker", regionVirginia, "Quantidade de armazenamento (20 GB)", "97.70"},
		{"no marker keeps full monthly", regionVirginia, "Quantidade de armazenamento (100 GB)", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := entity.RawRow{
				Hierarchy: "Cliente > No Upfront > Banco",
				Region:    tt.region,
				Service:   "Amazon RDS for PostgreSQL",
				Monthly:   money("100"),
				Config:    tt.config,
			}

			res := Resolve(row, entity.FamilyRDS, defaultSwitches())

			if !res.Cost.Equal(money(tt.wantCost)) {
				t.Errorf("Cost = %s, want %s", res.Cost, tt.wantCost)
			}
		})
	}
}

func TestResolveRDSAllUpfrontKeepsUpfrontValue(t *testing.T) {
	row := entity.RawRow{
		Hierarchy: "Cliente > All Upfront > Banco",
		Region:    regionVirginia,
		Service:   "Amazon RDS for PostgreSQL",
		Upfront:   money("2400"),
		Monthly:   money("10"),
		Config:    "Quantidade de armazenamento (20 GB)",
	}

	res := Resolve(row, entity.FamilyRDS, defaultSwitches())

	if res.Mode != entity.AllUpfront {
		t.Errorf("Mode = %q, want All Upfront", res.Mode)
	}
	if !res.Cost.Equal(money("2400")) {
		t.Errorf("Cost = %s, want 2400", res.Cost)
	}
}

func TestResolveZeroUpfrontCorrection(t *testing.T) {
	// Marcada como All Upfront mas sem valor adiantado: reclassifica como
	// No Upfront usando o valor mensal.
	row := entity.RawRow{
		Hierarchy: "Cliente > All Upfront > Compute",
		Region:    regionVirginia,
		Service:   "Amazon EC2",
		Upfront:   money("0"),
		Monthly:   money("250"),
	}

	res := Resolve(row, entity.FamilyEC2, defaultSwitches())

	if res.Mode != entity.NoUpfront {
		t.Errorf("Mode = %q, want No Upfront", res.Mode)
	}
	if !res.Cost.Equal(money("250")) {
		t.Errorf("Cost = %s, want 250", res.Cost)
	}
}

func TestResolveOnDemandRowsAreDropped(t *testing.T) {
	for _, variant := range []string{"On-demand", "On Demand", "On-Demand"} {
		row := entity.RawRow{
			Hierarchy: "Cliente > " + variant + " > Compute",
			Region:    regionVirginia,
			Service:   "Amazon EC2",
			Monthly:   money("100"),
		}
		res := Resolve(row, entity.FamilyEC2, defaultSwitches())
		if !res.Skip {
			t.Errorf("variant %q: on-demand EC2 row should be dropped", variant)
		}
	}
}

func TestResolveOnDemandExemptions(t *testing.T) {
	tests := []struct {
		service string
		family  entity.ServiceFamily
	}{
		{"AWS Lambda", entity.FamilyLambda},
		{"AWS Fargate", entity.FamilyFargate},
		{"Amazon CloudFront", entity.FamilyCloudFront},
	}

	for _, tt := range tests {
		row := entity.RawRow{
			Hierarchy: "Cliente > On-Demand > Grupo",
			Region:    regionVirginia,
			Service:   tt.service,
			Monthly:   money("100"),
		}
		res := Resolve(row, tt.family, defaultSwitches())
		if res.Skip {
			t.Errorf("%s: on-demand row should be exempt from the drop filter", tt.service)
		}
	}
}

func TestResolveUnknownFamilyIsDropped(t *testing.T) {
	row := entity.RawRow{
		Hierarchy: "Cliente > No Upfront > Storage",
		Region:    regionVirginia,
		Service:   "Amazon S3",
		Monthly:   money("100"),
	}

	res := Resolve(row, entity.FamilyUnknown, defaultSwitches())

	if !res.Skip {
		t.Error("unknown-family row should be dropped")
	}
}

func TestIsSaoPauloRegion(t *testing.T) {
	tests := []struct {
		region string
		want   bool
	}{
		{"América do Sul (São Paulo)", true},
		{"São Paulo", true},
		{"Leste dos EUA (N. da Virgínia)", false},
		{"US East (N. Virginia)", false},
	}

	for _, tt := range tests {
		if got := isSaoPauloRegion(tt.region); got != tt.want {
			t.Errorf("isSaoPauloRegion(%q) = %v, want %v", tt.region, got, tt.want)
		}
	}
}
