package funnel

import (
	"errors"
	"strings"
)

// CampaignStep is the screen of the standalone campaign funnel.
type CampaignStep string

const (
	CampaignStepPersona   CampaignStep = "persona"
	CampaignStepBanks     CampaignStep = "banks"
	CampaignStepAmount    CampaignStep = "amount"
	CampaignStepBorrowers CampaignStep = "borrowers"
	CampaignStepContact   CampaignStep = "contact"
	CampaignStepSummary   CampaignStep = "summary"
)

var ErrContactIncomplete = errors.New("Kontaktinformationen (Name, Telefon, E-Mail) werden benötigt.")

// CampaignFlow is the self-contained marketing variant of the lead
// wizard. There is no document phase; the contact step performs the
// single write.
type CampaignFlow struct {
	Step CampaignStep

	Persona         string // "private" | "business"
	SelectedBanks   []string
	LoanAmountRange string
	BorrowerCount   string

	ContactName    string
	ContactPhone   string
	ContactEmail   string
	ConsentPrivacy bool
	ConsentTerms   bool

	// LeadID arrives from the campaign endpoint after a successful
	// submit; a failed submit keeps the flow on the contact step.
	LeadID string
}

func NewCampaignFlow() *CampaignFlow {
	return &CampaignFlow{Step: CampaignStepPersona}
}

func (f *CampaignFlow) ChoosePersona(persona string) error {
	if f.Step != CampaignStepPersona {
		return ErrWrongStep
	}
	if persona != "private" && persona != "business" {
		return ErrWrongStep
	}
	f.Persona = persona
	f.Step = CampaignStepBanks
	return nil
}

func (f *CampaignFlow) ToggleBank(bank string) {
	for i, b := range f.SelectedBanks {
		if b == bank {
			f.SelectedBanks = append(f.SelectedBanks[:i], f.SelectedBanks[i+1:]...)
			return
		}
	}
	f.SelectedBanks = append(f.SelectedBanks, bank)
}

func (f *CampaignFlow) ConfirmBanks() error {
	if f.Step != CampaignStepBanks {
		return ErrWrongStep
	}
	if f.Persona == "" || len(f.SelectedBanks) == 0 {
		return ErrNoBankSelected
	}
	f.Step = CampaignStepAmount
	return nil
}

func (f *CampaignFlow) ConfirmAmount() error {
	if f.Step != CampaignStepAmount {
		return ErrWrongStep
	}
	if f.LoanAmountRange == "" {
		return ErrNoLoanAmount
	}
	f.Step = CampaignStepBorrowers
	return nil
}

func (f *CampaignFlow) ConfirmBorrowers() error {
	if f.Step != CampaignStepBorrowers {
		return ErrWrongStep
	}
	if f.BorrowerCount != "single" && f.BorrowerCount != "multiple" {
		return ErrNoBorrowerCount
	}
	f.Step = CampaignStepContact
	return nil
}

// GuardContact is the terminal guard before the single write. The
// caller submits to the campaign endpoint and reports the outcome via
// Submitted; on failure the flow stays on contact for a retry.
func (f *CampaignFlow) GuardContact() error {
	if f.Step != CampaignStepContact {
		return ErrWrongStep
	}
	if strings.TrimSpace(f.ContactName) == "" || strings.TrimSpace(f.ContactPhone) == "" || strings.TrimSpace(f.ContactEmail) == "" {
		return ErrContactIncomplete
	}
	if !f.ConsentPrivacy || !f.ConsentTerms {
		return ErrConsentsMissing
	}
	return nil
}

func (f *CampaignFlow) Submitted(leadID string) {
	f.LeadID = leadID
	f.Step = CampaignStepSummary
}

// Back mirrors the forward chain one step at a time.
func (f *CampaignFlow) Back() {
	switch f.Step {
	case CampaignStepBanks:
		f.Step = CampaignStepPersona
	case CampaignStepAmount:
		f.Step = CampaignStepBanks
	case CampaignStepBorrowers:
		f.Step = CampaignStepAmount
	case CampaignStepContact:
		f.Step = CampaignStepBorrowers
	case CampaignStepSummary:
		f.Step = CampaignStepContact
	}
}
