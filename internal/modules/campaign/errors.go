package campaign

import "errors"

// Validation errors in declaration order; submission stops at the
// first violated rule. Messages are surfaced verbatim to the funnel.
var (
	ErrMissingAdmin    = errors.New("adminId is missing. Unable to assign campaign lead.")
	ErrInvalidPersona  = errors.New("Persona is invalid.")
	ErrNoBanks         = errors.New("Mindestens eine Bank auswählen.")
	ErrNoBorrowerCount = errors.New("Angabe zur Kreditnehmeranzahl fehlt.")
	ErrNoLoanAmount    = errors.New("Kreditsumme auswählen.")
	ErrNoContact       = errors.New("Kontaktinformationen (Name, Telefon, E-Mail) werden benötigt.")
	ErrConsentsMissing = errors.New("Bitte alle Pflichtzustimmungen aktivieren.")
)

var ErrSubmitFailed = errors.New("Lead konnte nicht gespeichert werden.")
