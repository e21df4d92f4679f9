package campaign

import "time"

// SubmitRequest is the JSON body of the public campaign funnel's
// single write.
type SubmitRequest struct {
	AdminID         string         `json:"adminId"`
	Persona         string         `json:"persona"`
	SelectedBanks   []string       `json:"selectedBanks"`
	LoanAmountRange string         `json:"loanAmountRange"`
	BorrowerCount   string         `json:"borrowerCount"`
	ContactName     string         `json:"contactName"`
	ContactPhone    string         `json:"contactPhone"`
	ContactEmail    string         `json:"contactEmail"`
	ConsentPrivacy  bool           `json:"consentPrivacy"`
	ConsentTerms    bool           `json:"consentTerms"`
	Metadata        map[string]any `json:"metadata"`
}

// LeadView is one row of the admin-facing campaign listing, with the
// JSON text columns decoded.
type LeadView struct {
	ID              string         `json:"id"`
	AdminID         string         `json:"admin_id"`
	Persona         string         `json:"persona"`
	SelectedBanks   []string       `json:"selected_banks"`
	LoanAmountRange string         `json:"loan_amount_range"`
	BorrowerCount   string         `json:"borrower_count"`
	ContactName     string         `json:"contact_name"`
	ContactPhone    string         `json:"contact_phone"`
	ContactEmail    string         `json:"contact_email"`
	Metadata        map[string]any `json:"metadata"`
	CreatedAt       time.Time      `json:"created_at"`
}

type ListLeadsResponse struct {
	Leads []LeadView `json:"leads"`
}
