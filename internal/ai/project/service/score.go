package service

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/models"
)

const (
	baseScore = 72.0
	minScore  = 30.0
	maxScore  = 92.0
)

var domainPenalties = []struct {
	tag     models.DomainTag
	penalty float64
}{
	{models.DomainMedical, 8.0},
	{models.DomainRobotics, 4.0},
	{models.DomainFintech, 3.0},
}

// ScoreSuccess вычисляет оценку успеха и журнал корректировок.
// Сумма Delta всех компонентов равна итоговой (неокругленной) оценке.
func ScoreSuccess(domains []models.DomainTag, complexity, riskPenalty float64) (float64, models.Explain) {
	base := baseScore
	components := []models.ScoreComponent{{Label: "Base", Delta: models.Float(base)}}

	add := func(label string, delta float64) {
		components = append(components, models.ScoreComponent{Label: label, Delta: models.Float(delta)})
	}

	for _, dp := range domainPenalties {
		if models.HasDomain(domains, dp.tag) {
			add("Domain: "+string(dp.tag), -dp.penalty)
			base -= dp.penalty
		}
	}

	// явное приведение запрещает компилятору объединять умножение с вычитанием (FMA)
	compPen := float64((complexity - 1.0) * 10.0)
	if compPen != 0 {
		add(fmt.Sprintf("Complexity x%.2f", complexity), -compPen)
		base -= compPen
	}

	rpen := float64(riskPenalty * 20.0)
	if rpen != 0 {
		add("Declared risk", -rpen)
		base -= rpen
	}

	unclamped := base
	score := math.Max(minScore, math.Min(maxScore, unclamped))
	if score != unclamped {
		add("Clamp to bounds [30..92]", score-unclamped)
	}

	final := roundTo(score, 1)
	return final, models.Explain{
		Inputs: models.ExplainInputs{
			Domains:     domains,
			Complexity:  models.Float(roundTo(complexity, 2)),
			RiskPenalty: models.Float(roundTo(riskPenalty, 2)),
		},
		Components: components,
		Final:      models.Float(final),
	}
}

// roundTo округляет до digits знаков после запятой по точному десятичному
// значению v, половины к четному.
func roundTo(v float64, digits int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', digits, 64), 64)
	if err != nil {
		return v
	}
	return r
}
