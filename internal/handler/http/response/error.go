package response

import (
	"errors"
	"net/http"

	"github.com/sanketsmane/ems-backend-go/internal/domain/attendance"
	"github.com/sanketsmane/ems-backend-go/internal/domain/shift"
	"github.com/sanketsmane/ems-backend-go/internal/domain/worksheet"
	"github.com/sanketsmane/ems-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Worksheet domain errors
	case errors.Is(err, worksheet.ErrWorksheetNotFound):
		NotFound(w, "Worksheet not found")
	case errors.Is(err, worksheet.ErrWorksheetExists):
		Conflict(w, "A worksheet for this date already exists")
	case errors.Is(err, worksheet.ErrWorksheetSubmitted):
		Conflict(w, "Worksheet has been submitted and can no longer be changed")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "You have not checked in yet", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "You have already checked out")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftConfigNotFound):
		NotFound(w, "Shift configuration not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
