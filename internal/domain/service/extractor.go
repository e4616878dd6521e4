package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/datidev/aws-cost-calculator-go/internal/domain/entity"
)

// A Calculadora AWS exporta o resumo da configuração no idioma do console do
// usuário. Cada campo é modelado como uma lista de alternativas (padrão,
// idioma) avaliadas em ordem fixa de preferência: português primeiro.
type localizedPattern struct {
	re   *regexp.Regexp
	lang string
}

const (
	langPT = "pt"
	langEN = "en"
)

var (
	ec2TypePatterns = []localizedPattern{
		{regexp.MustCompile(`Instância do EC2 avançada \(([^)]+)\)`), langPT},
		{regexp.MustCompile(`Advance EC2 instance \(([^)]+)\)`), langEN},
	}
	ec2QuantityPatterns = []localizedPattern{
		{regexp.MustCompile(`Número de instâncias: (\d+)`), langPT},
		{regexp.MustCompile(`Number of instances: (\d+)`), langEN},
	}
	ec2PricingPatterns = []localizedPattern{
		{regexp.MustCompile(`Pricing strategy \(([^)]+)\)`), langEN},
	}
	ec2OSPatterns = []localizedPattern{
		{regexp.MustCompile(`Sistema operacional \(([^)]+)\)`), langPT},
		{regexp.MustCompile(`Operating system \(([^)]+)\)`), langEN},
	}

	instanceTypePatterns = []localizedPattern{
		{regexp.MustCompile(`Tipo de instância \(([^)]+)\)`), langPT},
		{regexp.MustCompile(`Instance type \(([^)]+)\)`), langEN},
	}
	nodeCountPatterns = []localizedPattern{
		{regexp.MustCompile(`Nós \((\d+)\)`), langPT},
		{regexp.MustCompile(`Nodes \((\d+)\)`), langEN},
	}

	threeYearPattern = regexp.MustCompile(`(?i)3[ -]year`)
)

// oversizedCacheSKU nunca é escolhido na seleção automática de nós do
// ElastiCache. Exclusão deliberada definida pelo time comercial.
const oversizedCacheSKU = "r6gd.12xlarge"

// firstMatch devolve o primeiro grupo capturado entre as alternativas, na
// ordem de preferência da lista.
func firstMatch(patterns []localizedPattern, text string) (string, bool) {
	for _, p := range patterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// allMatches devolve todos os grupos capturados pela primeira alternativa que
// encontrar alguma ocorrência, preservando a ordem do texto.
func allMatches(patterns []localizedPattern, text string) []string {
	for _, p := range patterns {
		if ms := p.re.FindAllStringSubmatch(text, -1); ms != nil {
			out := make([]string, 0, len(ms))
			for _, m := range ms {
				out = append(out, m[1])
			}
			return out
		}
	}
	return nil
}

// ExtractInstanceDetail parses the free-text configuration summary of a row
// into structured attributes. A pattern that does not match is a normal
// outcome: the field keeps its default ("N/A", quantity 1, empty specs) and
// no error is ever raised. The raw service name is carried as the engine
// label for RDS/Aurora.
func ExtractInstanceDetail(configText, serviceName string, family entity.ServiceFamily) entity.InstanceDetail {
	detail := entity.InstanceDetail{Quantity: 1, Type: "N/A"}

	switch family {
	case entity.FamilyEC2:
		if t, ok := firstMatch(ec2TypePatterns, configText); ok {
			detail.Type = t
		}
		if q, ok := firstMatch(ec2QuantityPatterns, configText); ok {
			if n, err := strconv.Atoi(q); err == nil {
				detail.Quantity = n
			}
		}
		pricing := "N/A"
		if p, ok := firstMatch(ec2PricingPatterns, configText); ok {
			pricing = p
		}
		osSystem := "N/A"
		if o, ok := firstMatch(ec2OSPatterns, configText); ok {
			osSystem = o
		}
		detail.Specs = []string{pricing, osSystem}

	case entity.FamilyRDS:
		if t, ok := firstMatch(instanceTypePatterns, configText); ok {
			detail.Type = t
		}
		if q, ok := firstMatch(nodeCountPatterns, configText); ok {
			if n, err := strconv.Atoi(q); err == nil {
				detail.Quantity = n
			}
		}
		azConfig := "Single AZ"
		if strings.Contains(configText, "Multi") || strings.Contains(configText, "multi") {
			azConfig = "Multi AZ"
		}
		detail.Specs = []string{azConfig, purchaseOption(configText, false), commitmentPeriod(configText), serviceName}

	case entity.FamilyElastiCache:
		types := allMatches(instanceTypePatterns, configText)
		counts := nodeCountStrings(allMatches(nodeCountPatterns, configText))

		// Seleciona o primeiro par com nós > 0, ignorando o SKU superdimensionado.
		for i, instanceType := range types {
			if i >= len(counts) {
				break
			}
			if counts[i] > 0 && !strings.Contains(instanceType, oversizedCacheSKU) {
				detail.Type = instanceType
				detail.Quantity = counts[i]
				break
			}
		}

		cacheEngine := "Redis"
		if strings.Contains(configText, "Valkey") {
			cacheEngine = "Valkey"
		} else if strings.Contains(configText, "Memcached") {
			cacheEngine = "Memcached"
		}
		detail.Specs = []string{purchaseOption(configText, true), commitmentPeriod(configText), cacheEngine}

	case entity.FamilyCloudFront, entity.FamilyFargate:
		architecture := "x86"
		if strings.Contains(configText, "ARM") {
			architecture = "ARM"
		}
		osSystem := "Linux"
		if strings.Contains(configText, "Windows") {
			osSystem = "Windows"
		}
		detail.Specs = []string{architecture, osSystem}
	}

	return detail
}

// purchaseOption resolve a opção de compra a partir do texto de configuração.
// ElastiCache reconhece adicionalmente "Heavy Utilization".
func purchaseOption(configText string, withHeavyUtilization bool) string {
	switch {
	case strings.Contains(configText, "OnDemand"):
		return "On Demand"
	case withHeavyUtilization && strings.Contains(configText, "Heavy Utilization"):
		return "Heavy Utilization"
	case strings.Contains(configText, "No Upfront"):
		return "No Upfront"
	case strings.Contains(configText, "All Upfront"):
		return "All Upfront"
	default:
		return "Reserved Instance"
	}
}

// commitmentPeriod detecta compromissos de 3 anos; o padrão é 1 ano.
func commitmentPeriod(configText string) string {
	if threeYearPattern.MatchString(configText) {
		return "3 anos"
	}
	return "1 ano"
}

func nodeCountStrings(raw []string) []int {
	counts := make([]int, 0, len(raw))
	for _, s := range raw {
		n, err := strconv.Atoi(s)
		if err != nil {
			n = 0
		}
		counts = append(counts, n)
	}
	return counts
}
