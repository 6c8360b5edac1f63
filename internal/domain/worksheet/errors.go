package worksheet

import "errors"

// Worksheet domain errors
var (
	ErrWorksheetNotFound  = errors.New("worksheet record not found")
	ErrWorksheetExists    = errors.New("a worksheet for this date already exists")
	ErrWorksheetSubmitted = errors.New("worksheet has been submitted and can no longer be modified")
)
