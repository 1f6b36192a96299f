package models

// Типы статического ответа /plan. Структура и значения зафиксированы.

type Workstream struct {
	Name       string   `json:"name"`
	Milestones []string `json:"milestones"`
}

type Task struct {
	Title         string `json:"title"`
	OwnerRole     string `json:"owner_role"`
	EstimateHours int    `json:"estimate_hours"`
}

type LegacyPlan struct {
	Workstreams []Workstream `json:"workstreams"`
	Tasks       []Task       `json:"tasks"`
}

type LaborLine struct {
	Role     string `json:"role"`
	Hours    int    `json:"hours"`
	Rate     int    `json:"rate"`
	Subtotal int    `json:"subtotal"`
}

type NonLaborLine struct {
	Category string `json:"category"`
	Amount   int    `json:"amount"`
}

type LegacyBudget struct {
	Labor              []LaborLine    `json:"labor"`
	NonLabor           []NonLaborLine `json:"non_labor"`
	ContingencyPercent int            `json:"contingency_percent"`
	Total              int            `json:"total"`
}

type LegacyMilestone struct {
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	OwnerUserID string `json:"owner_user_id"`
}

type LegacyRoadmap struct {
	Milestones   []LegacyMilestone `json:"milestones"`
	CriticalPath []string          `json:"critical_path"`
}

type Success struct {
	Score int `json:"score"`
}

// PlanResponse ответ /plan
type PlanResponse struct {
	Plan    LegacyPlan    `json:"plan"`
	Budget  LegacyBudget  `json:"budget"`
	Roadmap LegacyRoadmap `json:"roadmap"`
	Success Success       `json:"success"`
}

// HealthResponse ответ /health
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}
