package intake

import "errors"

var (
	ErrMissingFields  = errors.New("Missing required fields.")
	ErrPayloadInvalid = errors.New("Payload is incomplete.")
	ErrBadDuration    = errors.New("Duration must be a number.")
	ErrFileNotFound   = errors.New("Datei nicht gefunden.")
)

// User-facing 500 messages, one per vertical, matching what the funnel
// surfaces as a toast.
const (
	msgEnergyFailed    = "Energie-Daten konnten nicht gespeichert werden."
	msgOperationFailed = "Betriebskosten konnten nicht gespeichert werden."
	msgCasinoFailed    = "Casino submission failed. Please try again."
	msgDownloadFailed  = "Download fehlgeschlagen."
)
