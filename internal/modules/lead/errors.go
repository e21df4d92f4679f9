package lead

import "errors"

var (
	ErrPayloadIncomplete = errors.New("payload is incomplete")
	ErrSubmitFailed      = errors.New("lead submission failed")
)
