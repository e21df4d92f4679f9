package funnel

import "errors"

// LeadStep is the screen the lead funnel currently shows. Transitions
// are guarded; an invalid advance returns an error and leaves the flow
// where it was.
type LeadStep string

const (
	StepLeadType         LeadStep = "leadType"
	StepBestandsOverview LeadStep = "bestandsOverview"
	StepLeadForm         LeadStep = "leadForm"
	StepCustomerType     LeadStep = "customerType"
	StepBankSelection    LeadStep = "bankSelection"
	StepLoanAmount       LeadStep = "loanAmount"
	StepBorrowerCount    LeadStep = "borrowerCount"
)

// Category tabs become selectable once the kredit phase produced a
// lead id.
type Category string

const (
	CategoryKredit  Category = "kredit"
	CategoryEnergie Category = "energie"
	CategoryBetrieb Category = "betrieb"
	CategoryCasino  Category = "casino"
)

var Categories = []Category{CategoryKredit, CategoryEnergie, CategoryBetrieb, CategoryCasino}

var (
	ErrLeadFormIncomplete = errors.New("Bitte alle Pflichtfelder ausfüllen.")
	ErrNoBankSelected     = errors.New("Mindestens eine Bank auswählen.")
	ErrNoLoanAmount       = errors.New("Kreditsumme auswählen.")
	ErrNoBorrowerCount    = errors.New("Angabe zur Kreditnehmeranzahl fehlt.")
	ErrConsentsMissing    = errors.New("Bitte alle Pflichtzustimmungen aktivieren.")
	ErrLeadRequired       = errors.New("Bitte zuerst einen Lead speichern.")
	ErrWrongStep          = errors.New("Schritt ist in diesem Zustand nicht erreichbar.")
)

// LeadFlow is the employee-facing intake wizard: the kredit phase
// collects the lead and loan-fee fields, the remaining category tabs
// attach documents to the created lead.
type LeadFlow struct {
	Step     LeadStep
	Category Category

	LeadType     string // "bestands" | "neu"
	CustomerType string // "unternehmen" | "privat"

	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Nationality      string
	BirthDate        string
	EmploymentStatus string

	SelectedBanks     []string
	LoanAmountRange   string
	BorrowerCount     string
	ConsentPrivacy    bool
	ConsentConditions bool

	// LeadID is set after the borrower-count step persisted the lead.
	// Document submissions are blocked until it exists.
	LeadID string
}

func NewLeadFlow() *LeadFlow {
	return &LeadFlow{Step: StepLeadType, Category: CategoryKredit}
}

// ChooseLeadType branches the flow: existing customers go to the
// read-only overview, new leads into the form.
func (f *LeadFlow) ChooseLeadType(leadType string) error {
	if f.Step != StepLeadType {
		return ErrWrongStep
	}
	switch leadType {
	case "bestands":
		f.LeadType = leadType
		f.Step = StepBestandsOverview
	case "neu":
		f.LeadType = leadType
		f.Step = StepLeadForm
	default:
		return ErrWrongStep
	}
	return nil
}

// SubmitLeadForm advances to the customer-type step once the personal
// fields are complete.
func (f *LeadFlow) SubmitLeadForm() error {
	if f.Step != StepLeadForm {
		return ErrWrongStep
	}
	if f.FirstName == "" || f.LastName == "" || f.Email == "" ||
		f.EmploymentStatus == "" || f.LeadType == "" {
		return ErrLeadFormIncomplete
	}
	f.Step = StepCustomerType
	return nil
}

func (f *LeadFlow) ChooseCustomerType(customerType string) error {
	if f.Step != StepCustomerType {
		return ErrWrongStep
	}
	if customerType != "unternehmen" && customerType != "privat" {
		return ErrWrongStep
	}
	f.CustomerType = customerType
	f.Step = StepBankSelection
	return nil
}

func (f *LeadFlow) ToggleBank(bank string) {
	for i, b := range f.SelectedBanks {
		if b == bank {
			f.SelectedBanks = append(f.SelectedBanks[:i], f.SelectedBanks[i+1:]...)
			return
		}
	}
	f.SelectedBanks = append(f.SelectedBanks, bank)
}

func (f *LeadFlow) ConfirmBanks() error {
	if f.Step != StepBankSelection {
		return ErrWrongStep
	}
	if len(f.SelectedBanks) == 0 {
		return ErrNoBankSelected
	}
	f.Step = StepLoanAmount
	return nil
}

func (f *LeadFlow) ConfirmLoanAmount() error {
	if f.Step != StepLoanAmount {
		return ErrWrongStep
	}
	if f.LoanAmountRange == "" {
		return ErrNoLoanAmount
	}
	f.Step = StepBorrowerCount
	return nil
}

// CompleteBorrowerCount is the terminal guard of the kredit phase.
// The caller performs the actual createLead call and reports the new
// id through LeadCreated.
func (f *LeadFlow) CompleteBorrowerCount() error {
	if f.Step != StepBorrowerCount {
		return ErrWrongStep
	}
	if f.BorrowerCount != "single" && f.BorrowerCount != "multiple" {
		return ErrNoBorrowerCount
	}
	if !f.ConsentPrivacy || !f.ConsentConditions {
		return ErrConsentsMissing
	}
	return nil
}

// LeadCreated records the persisted lead id and moves to the first
// document tab.
func (f *LeadFlow) LeadCreated(leadID string) {
	f.LeadID = leadID
	f.AdvanceCategory()
}

// GuardDocumentSubmit enforces the ordering invariant: no document may
// be attached before a lead exists.
func (f *LeadFlow) GuardDocumentSubmit() error {
	if f.Category == CategoryKredit {
		return ErrWrongStep
	}
	if f.LeadID == "" {
		return ErrLeadRequired
	}
	return nil
}

// AdvanceCategory moves to the next tab, clamped at the last one.
func (f *LeadFlow) AdvanceCategory() {
	for i, c := range Categories {
		if c == f.Category {
			if i+1 < len(Categories) {
				f.Category = Categories[i+1]
			}
			return
		}
	}
}

// Back steps one screen backwards inside the kredit phase.
func (f *LeadFlow) Back() {
	switch f.Step {
	case StepBestandsOverview, StepLeadForm:
		f.Step = StepLeadType
	case StepCustomerType:
		f.Step = StepLeadForm
	case StepBankSelection:
		f.Step = StepCustomerType
	case StepLoanAmount:
		f.Step = StepBankSelection
	case StepBorrowerCount:
		f.Step = StepLoanAmount
	}
}

// Reset returns to the first screen. The lead context survives when
// keepLeadContext is set, so further documents can still be attached.
func (f *LeadFlow) Reset(keepLeadContext bool) {
	leadID := f.LeadID
	*f = LeadFlow{Step: StepLeadType, Category: CategoryKredit}
	if keepLeadContext {
		f.LeadID = leadID
	}
}
