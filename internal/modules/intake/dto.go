package intake

// Upload carries the validated multipart file of a submission.
type Upload struct {
	Data        []byte
	Filename    string
	ContentType string
}

type EnergySubmission struct {
	Provider       string
	CustomerNumber string
	LeadID         string
	File           Upload
}

type OperatingCostSubmission struct {
	Provider      string
	DurationValue float64
	DurationUnit  string
	Notes         string
	LeadID        string
	File          Upload
}

type CasinoSubmission struct {
	Providers         []string
	Amount            float64
	Notes             string
	ConsentPrivacy    bool
	ConsentConditions bool
	LeadID            string
	File              Upload
}

// SubmitResult reports where the stored document can be fetched.
type SubmitResult struct {
	FileID   string `json:"fileId"`
	ProxyURL string `json:"proxyUrl"`
}
