package funnel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaignFlow_HappyPath(t *testing.T) {
	f := NewCampaignFlow()
	assert.Equal(t, CampaignStepPersona, f.Step)

	assert.NoError(t, f.ChoosePersona("private"))
	f.ToggleBank(Banks[0])
	assert.NoError(t, f.ConfirmBanks())
	f.LoanAmountRange = LoanAmountRanges[0]
	assert.NoError(t, f.ConfirmAmount())
	f.BorrowerCount = "multiple"
	assert.NoError(t, f.ConfirmBorrowers())

	f.ContactName = "Maria Bauer"
	f.ContactPhone = "+43 664 987 6543"
	f.ContactEmail = "maria@example.at"
	f.ConsentPrivacy = true
	f.ConsentTerms = true
	assert.NoError(t, f.GuardContact())

	f.Submitted("campaign-1")
	assert.Equal(t, CampaignStepSummary, f.Step)
	assert.Equal(t, "campaign-1", f.LeadID)
}

func TestCampaignFlow_RejectsUnknownPersona(t *testing.T) {
	f := NewCampaignFlow()
	assert.ErrorIs(t, f.ChoosePersona("club"), ErrWrongStep)
	assert.Equal(t, CampaignStepPersona, f.Step)
}

func TestCampaignFlow_BanksRequired(t *testing.T) {
	f := NewCampaignFlow()
	assert.NoError(t, f.ChoosePersona("business"))
	assert.ErrorIs(t, f.ConfirmBanks(), ErrNoBankSelected)

	f.ToggleBank(Banks[2])
	assert.NoError(t, f.ConfirmBanks())
}

func TestCampaignFlow_ContactGuard(t *testing.T) {
	f := NewCampaignFlow()
	assert.NoError(t, f.ChoosePersona("private"))
	f.ToggleBank(Banks[0])
	assert.NoError(t, f.ConfirmBanks())
	f.LoanAmountRange = LoanAmountRanges[2]
	assert.NoError(t, f.ConfirmAmount())
	f.BorrowerCount = "single"
	assert.NoError(t, f.ConfirmBorrowers())

	assert.ErrorIs(t, f.GuardContact(), ErrContactIncomplete)

	f.ContactName = "Maria"
	f.ContactPhone = "  "
	f.ContactEmail = "maria@example.at"
	assert.ErrorIs(t, f.GuardContact(), ErrContactIncomplete)

	f.ContactPhone = "+43 664 1"
	assert.ErrorIs(t, f.GuardContact(), ErrConsentsMissing)

	f.ConsentPrivacy = true
	f.ConsentTerms = true
	assert.NoError(t, f.GuardContact())
}

func TestCampaignFlow_FailedSubmitStaysOnContact(t *testing.T) {
	f := NewCampaignFlow()
	assert.NoError(t, f.ChoosePersona("private"))
	f.ToggleBank(Banks[0])
	assert.NoError(t, f.ConfirmBanks())
	f.LoanAmountRange = LoanAmountRanges[0]
	assert.NoError(t, f.ConfirmAmount())
	f.BorrowerCount = "single"
	assert.NoError(t, f.ConfirmBorrowers())

	// submit failed: no Submitted call, flow stays put for a retry
	assert.Equal(t, CampaignStepContact, f.Step)
	assert.Empty(t, f.LeadID)
}

func TestCampaignFlow_Back(t *testing.T) {
	f := NewCampaignFlow()
	assert.NoError(t, f.ChoosePersona("private"))
	f.ToggleBank(Banks[0])
	assert.NoError(t, f.ConfirmBanks())

	f.Back()
	assert.Equal(t, CampaignStepBanks, f.Step)
	f.Back()
	assert.Equal(t, CampaignStepPersona, f.Step)
	f.Back()
	assert.Equal(t, CampaignStepPersona, f.Step)
}
