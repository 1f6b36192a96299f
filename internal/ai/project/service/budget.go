package service

import (
	"math"

	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/models"
)

const budgetCurrency = "USD"

type budgetCategory struct {
	item   string
	amount int64
}

func baseBudget() []budgetCategory {
	return []budgetCategory{
		{"discovery", 8000},
		{"design", 25000},
		{"engineering", 45000},
		{"prototype", 30000},
		{"testing", 12000},
		{"launch", 10000},
	}
}

func setAmount(cats []budgetCategory, item string, amount int64) {
	for i := range cats {
		if cats[i].item == item {
			cats[i].amount = amount
			return
		}
	}
}

func addAmount(cats []budgetCategory, item string, delta int64) {
	for i := range cats {
		if cats[i].item == item {
			cats[i].amount += delta
			return
		}
	}
}

// EstimateBudget строит бюджет по категориям и масштабирует его
// множителем сложности. Total округляется от общей суммы, каждая
// строка округляется отдельно.
func EstimateBudget(domains []models.DomainTag, complexity float64) models.Budget {
	cats := baseBudget()

	if models.HasDomain(domains, models.DomainHardware) || models.HasDomain(domains, models.DomainManufacturing) {
		setAmount(cats, "prototype", 45000)
		setAmount(cats, "testing", 18000)
	}
	if models.HasDomain(domains, models.DomainMedical) {
		cats = append(cats, budgetCategory{"compliance", 25000})
	}
	if models.HasDomain(domains, models.DomainRobotics) {
		addAmount(cats, "engineering", 20000)
		addAmount(cats, "prototype", 15000)
	}

	var sum int64
	lines := make([]models.BudgetLine, 0, len(cats))
	for _, c := range cats {
		sum += c.amount
		lines = append(lines, models.BudgetLine{
			Item:   c.item,
			Amount: roundInt(float64(c.amount) * complexity),
		})
	}

	return models.Budget{
		Currency: budgetCurrency,
		Total:    roundInt(float64(sum) * complexity),
		Lines:    lines,
	}
}

// roundInt округляет до ближайшего целого, половины к четному
func roundInt(v float64) int64 {
	return int64(math.RoundToEven(v))
}
