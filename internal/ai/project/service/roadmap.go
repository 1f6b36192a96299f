package service

import (
	"math"
	"slices"

	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/models"
)

// Даты этапов фиксированы и не зависят от DurationMonths.
func baseMilestones() []models.Milestone {
	return []models.Milestone{
		{Title: "Discovery & Requirements", Start: "2025-09-01", End: "2025-09-15", Deliverables: []string{"PRD", "Risk register"}},
		{Title: "Design & Architecture", Start: "2025-09-16", End: "2025-10-05", Deliverables: []string{"Wireframes", "System arch"}},
		{Title: "Engineering Sprint 1", Start: "2025-10-06", End: "2025-10-31", Deliverables: []string{"Core features"}},
		{Title: "Prototype & Test", Start: "2025-11-01", End: "2025-11-30", Deliverables: []string{"Alpha build", "Bench tests"}},
		{Title: "Pilot & Feedback", Start: "2025-12-01", End: "2025-12-20", Deliverables: []string{"Beta pilot", "Report"}},
		{Title: "Launch Prep", Start: "2026-01-05", End: "2026-01-20", Deliverables: []string{"GTM checklist"}},
	}
}

var (
	dfmMilestone = models.Milestone{
		Title: "DFM + Supplier RFQs", Start: "2025-10-15", End: "2025-11-05",
		Deliverables: []string{"BOM", "RFQs sent", "Shortlist"},
	}
	complianceMilestone = models.Milestone{
		Title: "Compliance File", Start: "2026-01-21", End: "2026-02-20",
		Deliverables: []string{"QMS setup", "Pre-sub"},
	}
)

const dfmIndex = 3

// BuildRoadmap строит дорожную карту. Для железа и производства этап DFM
// вставляется перед "Prototype & Test", для медицины в конец добавляется
// этап сертификации.
func BuildRoadmap(domains []models.DomainTag, complexity float64) models.Roadmap {
	steps := baseMilestones()

	if models.HasDomain(domains, models.DomainManufacturing) || models.HasDomain(domains, models.DomainHardware) {
		steps = slices.Insert(steps, dfmIndex, cloneMilestone(dfmMilestone))
	}
	if models.HasDomain(domains, models.DomainMedical) {
		steps = append(steps, cloneMilestone(complianceMilestone))
	}

	return models.Roadmap{
		DurationMonths: int(math.Ceil(4 * complexity)),
		Milestones:     steps,
	}
}

func cloneMilestone(m models.Milestone) models.Milestone {
	m.Deliverables = append([]string(nil), m.Deliverables...)
	return m
}
