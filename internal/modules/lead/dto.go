package lead

import (
	"time"

	"claimsportal/internal/domain"
)

// CreateLeadRequest mirrors the funnel payload: the personal lead
// fields plus the loan-fee (kredit) selection, submitted together.
type CreateLeadRequest struct {
	LeadData   *LeadData   `json:"leadData"`
	KreditData *KreditData `json:"kreditData"`
}

type LeadData struct {
	LeadType          string `json:"lead_type"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Nationality       string `json:"nationality"`
	BirthDate         string `json:"birth_date"`
	EmploymentStatus  string `json:"employment_status"`
	ConsentPrivacy    bool   `json:"consent_privacy"`
	ConsentConditions bool   `json:"consent_conditions"`
	EmployeeID        string `json:"employee_id"`
}

type KreditData struct {
	CustomerType    string   `json:"customer_type"`
	SelectedBanks   []string `json:"selected_banks"`
	LoanAmountRange string   `json:"loan_amount_range"`
	BorrowerCount   string   `json:"borrower_count"`
}

// KreditView is the kredit object attached to each listed lead.
type KreditView struct {
	ID              string    `json:"id"`
	LeadID          string    `json:"lead_id"`
	CustomerType    string    `json:"customer_type"`
	SelectedBanks   []string  `json:"selected_banks"`
	LoanAmountRange string    `json:"loan_amount_range"`
	BorrowerCount   string    `json:"borrower_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// EnrichedLead is one row of the listing response: the lead itself,
// its kredit selection (or null) and the per-vertical document links.
type EnrichedLead struct {
	domain.Lead
	Kredit    *KreditView          `json:"kredit"`
	Documents domain.DocumentGroup `json:"documents"`
}

type ListLeadsResponse struct {
	Leads []EnrichedLead `json:"leads"`
}
