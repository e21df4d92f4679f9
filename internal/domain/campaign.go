package domain

import "time"

// CampaignLead is written by the standalone marketing-campaign funnel.
// Independent of Lead; owned by the configured campaign admin.
type CampaignLead struct {
	ID              string    `gorm:"column:id;primaryKey" json:"id"`
	AdminID         string    `gorm:"column:admin_id;index" json:"admin_id"`
	Persona         string    `gorm:"column:persona" json:"persona"`
	SelectedBanks   string    `gorm:"column:selected_banks" json:"-"`
	LoanAmountRange string    `gorm:"column:loan_amount_range" json:"loan_amount_range"`
	BorrowerCount   string    `gorm:"column:borrower_count" json:"borrower_count"`
	ContactName     string    `gorm:"column:contact_name" json:"contact_name"`
	ContactPhone    string    `gorm:"column:contact_phone" json:"contact_phone"`
	ContactEmail    string    `gorm:"column:contact_email" json:"contact_email"`
	ConsentPrivacy  bool      `gorm:"column:consent_privacy" json:"consent_privacy"`
	ConsentTerms    bool      `gorm:"column:consent_terms" json:"consent_terms"`
	Metadata        string    `gorm:"column:metadata" json:"-"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

func (CampaignLead) TableName() string { return "campaign_kreditbearbeitungs_leads" }
