package service

import (
	"math"
	"strings"

	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/models"
)

const (
	baseComplexity     = 1.0
	maxComplexity      = 3.0
	domainComplexity   = 0.4
	complianceBump     = 0.6
	longTextBump       = 0.2
	longTextWordsLimit = 120

	maxRiskPenalty = 0.5
)

// Порядок проверки сохраняется, чтобы сумма с плавающей точкой
// всегда получалась одинаковой.
var complexityDomains = []models.DomainTag{
	models.DomainMedical,
	models.DomainRobotics,
	models.DomainManufacturing,
	models.DomainHardware,
}

var complianceKeywords = []string{"hipaa", "pci", "gdpr", "fda", "iso", "iec"}

// ComplexityFactor вычисляет множитель сложности в диапазоне [1.0, 3.0].
// domains должны быть получены классификатором для того же текста.
func ComplexityFactor(text string, domains []models.DomainTag) float64 {
	t := lowerText(text)
	c := baseComplexity
	for _, tag := range complexityDomains {
		if models.HasDomain(domains, tag) {
			c += domainComplexity
		}
	}
	// поиск по подстроке: "iso" совпадает и с "isolation"
	if containsAny(t, complianceKeywords) {
		c += complianceBump
	}
	if countWords(t) > longTextWordsLimit {
		c += longTextBump
	}
	return math.Min(c, maxComplexity)
}

// RiskPenalty вычисляет штраф за риск в диапазоне [0.0, 0.5]
func RiskPenalty(text string) float64 {
	t := lowerText(text)
	r := 0.0
	if containsAny(t, []string{"novel", "patent"}) {
		r += 0.1
	}
	if containsAny(t, []string{"uncertain", "moonshot"}) {
		r += 0.2
	}
	if containsAny(t, []string{"hardware", "manufacturing"}) {
		r += 0.15
	}
	return math.Min(r, maxRiskPenalty)
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
