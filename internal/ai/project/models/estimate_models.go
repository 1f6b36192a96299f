package models

// DomainTag категория проекта, определяемая по ключевым словам
type DomainTag string

const (
	DomainHardware      DomainTag = "hardware"
	DomainSoftware      DomainTag = "software"
	DomainManufacturing DomainTag = "manufacturing"
	DomainMedical       DomainTag = "medical"
	DomainFintech       DomainTag = "fintech"
	DomainRobotics      DomainTag = "robotics"
)

// HasDomain сообщает, присутствует ли тег в списке
func HasDomain(domains []DomainTag, tag DomainTag) bool {
	for _, d := range domains {
		if d == tag {
			return true
		}
	}
	return false
}

// GenerateRequest представляет запрос на оценку проекта
type GenerateRequest struct {
	Title   string  `json:"title"`
	Summary *string `json:"summary,omitempty"`
}

// Plan содержит план работ
type Plan struct {
	Domains     []DomainTag `json:"domains"`
	Assumptions []string    `json:"assumptions"`
	Team        []string    `json:"team"`
}

// BudgetLine строка бюджета
type BudgetLine struct {
	Item   string `json:"item"`
	Amount int64  `json:"amount"`
}

// Budget бюджет проекта. Total считается от неокругленной суммы,
// поэтому может не совпадать с суммой Lines.
type Budget struct {
	Currency string       `json:"currency"`
	Total    int64        `json:"total"`
	Lines    []BudgetLine `json:"lines"`
}

// Milestone этап дорожной карты
type Milestone struct {
	Title        string   `json:"title"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	Deliverables []string `json:"deliverables"`
}

// Roadmap дорожная карта проекта
type Roadmap struct {
	DurationMonths int         `json:"durationMonths"`
	Milestones     []Milestone `json:"milestones"`
}

// ScoreComponent одна корректировка оценки успеха
type ScoreComponent struct {
	Label string `json:"label"`
	Delta Float  `json:"delta"`
}

// ExplainInputs входные данные, из которых получена оценка
type ExplainInputs struct {
	Domains     []DomainTag `json:"domains"`
	Complexity  Float       `json:"complexity"`
	RiskPenalty Float       `json:"riskPenalty"`
}

// Explain объяснение оценки успеха
type Explain struct {
	Inputs     ExplainInputs    `json:"inputs"`
	Components []ScoreComponent `json:"components"`
	Final      Float            `json:"final"`
}

// GenerateResponse ответ /v1/generate
type GenerateResponse struct {
	Plan         Plan    `json:"plan"`
	Budget       Budget  `json:"budget"`
	Roadmap      Roadmap `json:"roadmap"`
	SuccessScore Float   `json:"successScore"`
	Explain      Explain `json:"explain"`
}

// ExplainResponse ответ /v1/explain
type ExplainResponse struct {
	SuccessScore Float   `json:"successScore"`
	Explain      Explain `json:"explain"`
}

// FieldError описывает ошибку валидации поля запроса
type FieldError struct {
	Type  string   `json:"type"`
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Input any      `json:"input"`
}

// ValidationErrorResponse тело ответа 422
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}
