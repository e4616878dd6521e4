package service

import (
	"strings"

	"github.com/datidev/aws-cost-calculator-go/internal/domain/entity"
)

// Classify mapeia o nome do serviço para a sua família. A classificação é
// feita uma única vez por linha e reutilizada pelo extrator, pelo resolvedor
// e pelo agregador.
func Classify(serviceName string) entity.ServiceFamily {
	switch {
	case strings.Contains(serviceName, "EC2"):
		return entity.FamilyEC2
	case strings.Contains(serviceName, "RDS"), strings.Contains(serviceName, "Aurora"):
		return entity.FamilyRDS
	case strings.Contains(serviceName, "ElastiCache"):
		return entity.FamilyElastiCache
	case strings.Contains(serviceName, "CloudFront"):
		return entity.FamilyCloudFront
	case strings.Contains(serviceName, "Lambda"):
		return entity.FamilyLambda
	case strings.Contains(serviceName, "Fargate"):
		return entity.FamilyFargate
	default:
		return entity.FamilyUnknown
	}
}
