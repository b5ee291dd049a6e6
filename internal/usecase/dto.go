package usecase

import "time"

// Campos ponteiro indicam merge parcial: nil preserva o valor atual.

type CreateLeadInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Source  string `json:"source"`
	Score   int    `json:"score"`
	Notes   string `json:"notes"`
}

type UpdateLeadInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Source  *string `json:"source"`
	Status  *string `json:"status"`
	Score   *int    `json:"score"`
	Notes   *string `json:"notes"`
}

type CreateCustomerInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Company       string `json:"company"`
	LifetimeValue int    `json:"lifetime_value"`
	Satisfaction  *int   `json:"satisfaction"`
	Notes         string `json:"notes"`
}

type UpdateCustomerInput struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Company       *string `json:"company"`
	LifetimeValue *int    `json:"lifetime_value"`
	Satisfaction  *int    `json:"satisfaction"`
	Status        *string `json:"status"`
	Notes         *string `json:"notes"`
}

type CreateDealInput struct {
	Title             string     `json:"title"`
	LeadID            string     `json:"lead_id"`
	CustomerID        string     `json:"customer_id"`
	Value             int        `json:"value"`
	StageID           string     `json:"stage_id"`
	Probability       *int       `json:"probability"`
	ExpectedCloseDate *time.Time `json:"expected_close_date"`
	Notes             string     `json:"notes"`
}

type UpdateDealInput struct {
	Title             *string    `json:"title"`
	LeadID            *string    `json:"lead_id"`
	CustomerID        *string    `json:"customer_id"`
	Value             *int       `json:"value"`
	StageID           *string    `json:"stage_id"`
	Probability       *int       `json:"probability"`
	ExpectedCloseDate *time.Time `json:"expected_close_date"`
	Notes             *string    `json:"notes"`
}
