package service

import (
	"regexp"
	"sort"

	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/models"
)

const maxDomains = 3

// domainKeywords ключевые слова одной категории в порядке объявления
type domainKeywords struct {
	tag      models.DomainTag
	keywords []string
}

// Порядок категорий важен: при равном числе совпадений выигрывает
// категория, объявленная раньше.
var domainCatalog = []domainKeywords{
	{models.DomainHardware, []string{"hardware", "iot", "device", "pcb", "firmware", "sensor", "bluetooth", "battery", "rf", "microcontroller"}},
	{models.DomainSoftware, []string{"app", "saas", "platform", "api", "cloud", "mobile", "web", "frontend", "backend", "ai", "ml"}},
	{models.DomainManufacturing, []string{"manufactur", "factory", "supply", "supplier", "mold", "injection", "cnc", "bom"}},
	{models.DomainMedical, []string{"med", "health", "clinic", "hipaa", "fda", "iso 13485", "iec 60601"}},
	{models.DomainFintech, []string{"fintech", "payment", "wallet", "pci", "bank", "kyc", "aml"}},
	{models.DomainRobotics, []string{"robot", "motor", "actuator", "servo", "lidar", "ros"}},
}

type compiledDomain struct {
	tag      models.DomainTag
	patterns []*regexp.Regexp
}

// DomainClassifier определяет категории проекта по тексту
type DomainClassifier struct {
	domains []compiledDomain
}

func NewDomainClassifier() *DomainClassifier {
	dc := &DomainClassifier{domains: make([]compiledDomain, 0, len(domainCatalog))}
	for _, d := range domainCatalog {
		cd := compiledDomain{tag: d.tag}
		for _, kw := range d.keywords {
			cd.patterns = append(cd.patterns, wordPattern(kw))
		}
		dc.domains = append(dc.domains, cd)
	}
	return dc
}

// wordPattern ищет слово целиком. Границей слова считается любой символ,
// кроме букв, цифр и подчеркивания (в том числе не-ASCII букв).
func wordPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])` + regexp.QuoteMeta(keyword) + `(?:[^\p{L}\p{N}_]|$)`)
}

// Detect возвращает до трех категорий с наибольшим числом совпавших
// ключевых слов. Если совпадений нет, возвращает [software].
func (dc *DomainClassifier) Detect(text string) []models.DomainTag {
	text = lowerText(text)

	type scored struct {
		tag   models.DomainTag
		score int
	}
	scores := make([]scored, 0, len(dc.domains))
	for _, d := range dc.domains {
		hits := 0
		for _, p := range d.patterns {
			if p.MatchString(text) {
				hits++
			}
		}
		if hits > 0 {
			scores = append(scores, scored{tag: d.tag, score: hits})
		}
	}

	if len(scores) == 0 {
		return []models.DomainTag{models.DomainSoftware}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	if len(scores) > maxDomains {
		scores = scores[:maxDomains]
	}
	domains := make([]models.DomainTag, 0, len(scores))
	for _, s := range scores {
		domains = append(domains, s.tag)
	}
	return domains
}
