package domain

import "time"

// LeadType distinguishes leads recorded for existing customers from
// fresh acquisitions.
type LeadType string

const (
	LeadTypeBestand LeadType = "bestands"
	LeadTypeNeu     LeadType = "neu"
)

type CustomerType string

const (
	CustomerPrivat      CustomerType = "privat"
	CustomerUnternehmen CustomerType = "unternehmen"
)

type BorrowerCount string

const (
	BorrowerSingle   BorrowerCount = "single"
	BorrowerMultiple BorrowerCount = "multiple"
)

// Lead is the aggregation root of the intake funnel. It is created
// once when the funnel's borrower-count step completes and never
// mutated afterwards.
type Lead struct {
	ID                string    `gorm:"column:id;primaryKey" json:"id"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
	LeadType          string    `gorm:"column:lead_type" json:"lead_type"`
	FirstName         string    `gorm:"column:first_name" json:"first_name"`
	LastName          string    `gorm:"column:last_name" json:"last_name"`
	Email             string    `gorm:"column:email" json:"email"`
	Phone             string    `gorm:"column:phone" json:"phone"`
	Nationality       string    `gorm:"column:nationality" json:"nationality"`
	BirthDate         string    `gorm:"column:birth_date" json:"birth_date"`
	EmploymentStatus  string    `gorm:"column:employment_status" json:"employment_status"`
	ConsentPrivacy    bool      `gorm:"column:consent_privacy" json:"consent_privacy"`
	ConsentConditions bool      `gorm:"column:consent_conditions" json:"consent_conditions"`
	EmployeeID        string    `gorm:"column:employee_id;index" json:"employee_id"`
}

func (Lead) TableName() string { return "lead_data" }

// Kredit holds the loan-fee interest captured alongside a lead.
// At most one row per lead.
type Kredit struct {
	ID              string    `gorm:"column:id;primaryKey" json:"id"`
	LeadID          string    `gorm:"column:lead_id;index" json:"lead_id"`
	CustomerType    string    `gorm:"column:customer_type" json:"customer_type"`
	SelectedBanks   string    `gorm:"column:selected_banks" json:"-"`
	LoanAmountRange string    `gorm:"column:loan_amount_range" json:"loan_amount_range"`
	BorrowerCount   string    `gorm:"column:borrower_count" json:"borrower_count"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Kredit) TableName() string { return "kreditgebuehren_data" }
