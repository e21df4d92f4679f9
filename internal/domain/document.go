package domain

import "time"

// EnergyDocument is the metadata row written after an energy bill
// lands in the blob store. The blob itself lives under StoragePath in
// the energie_rechnungen bucket.
type EnergyDocument struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	LeadID         string    `gorm:"column:lead_id;index" json:"lead_id"`
	Provider       string    `gorm:"column:provider" json:"provider"`
	CustomerNumber string    `gorm:"column:customer_number" json:"customer_number"`
	FileID         string    `gorm:"column:file_id;index" json:"file_id"`
	StoragePath    string    `gorm:"column:document_storage_path" json:"document_storage_path"`
	PublicURL      string    `gorm:"column:document_url" json:"document_url"`
	ProxyURL       string    `gorm:"column:document_proxy_url" json:"document_proxy_url"`
	ContentType    string    `gorm:"column:content_type" json:"content_type"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (EnergyDocument) TableName() string { return "energie_daten" }

// OperatingCostDocument covers Betriebskosten statements. Duration is
// the billed period, its unit either "monate" or "jahre".
type OperatingCostDocument struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	LeadID        string    `gorm:"column:lead_id;index" json:"lead_id"`
	Provider      string    `gorm:"column:provider" json:"provider"`
	DurationValue float64   `gorm:"column:duration_value" json:"duration_value"`
	DurationUnit  string    `gorm:"column:duration_unit" json:"duration_unit"`
	Notes         string    `gorm:"column:notes" json:"notes"`
	FileID        string    `gorm:"column:file_id;index" json:"file_id"`
	StoragePath   string    `gorm:"column:document_storage_path" json:"document_storage_path"`
	PublicURL     string    `gorm:"column:document_url" json:"document_url"`
	ProxyURL      string    `gorm:"column:document_proxy_url" json:"document_proxy_url"`
	ContentType   string    `gorm:"column:content_type" json:"content_type"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

func (OperatingCostDocument) TableName() string { return "betriebskosten_daten" }

// CasinoDocument records declared casino losses. Providers is a
// JSON-encoded string list, Amount the normalized loss in euro.
type CasinoDocument struct {
	ID                int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	LeadID            string    `gorm:"column:lead_id;index" json:"lead_id"`
	Providers         string    `gorm:"column:providers" json:"-"`
	Amount            float64   `gorm:"column:amount" json:"amount"`
	Notes             string    `gorm:"column:notes" json:"notes"`
	ConsentPrivacy    bool      `gorm:"column:consent_privacy" json:"consent_privacy"`
	ConsentConditions bool      `gorm:"column:consent_conditions" json:"consent_conditions"`
	FileID            string    `gorm:"column:file_id;index" json:"file_id"`
	StoragePath       string    `gorm:"column:document_storage_path" json:"document_storage_path"`
	PublicURL         string    `gorm:"column:document_url" json:"document_url"`
	ProxyURL          string    `gorm:"column:document_proxy_url" json:"document_proxy_url"`
	ContentType       string    `gorm:"column:content_type" json:"content_type"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
}

func (CasinoDocument) TableName() string { return "casino_verluste_daten" }

// DocumentLink is the display shape a lead listing carries per
// attached document.
type DocumentLink struct {
	ID          string     `json:"id"`
	Provider    string     `json:"provider"`
	Reference   string     `json:"reference,omitempty"`
	URL         string     `json:"url"`
	FallbackURL string     `json:"fallbackUrl,omitempty"`
	CreatedAt   *time.Time `json:"created_at"`
	Notes       string     `json:"notes,omitempty"`
}

// DocumentGroup buckets a lead's documents by vertical.
type DocumentGroup struct {
	Energie        []DocumentLink `json:"energie"`
	Betriebskosten []DocumentLink `json:"betriebskosten"`
	Casino         []DocumentLink `json:"casino"`
}

func EmptyDocumentGroup() DocumentGroup {
	return DocumentGroup{
		Energie:        []DocumentLink{},
		Betriebskosten: []DocumentLink{},
		Casino:         []DocumentLink{},
	}
}
