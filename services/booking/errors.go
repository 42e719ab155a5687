package booking

import "azura/models"

// Error codes carried in BookingResult.Error. Only these are user-visible;
// secondary-write failures are logged and never surfaced.
const (
	CodeInsufficientConfidence = "insufficientConfidence"
	CodeNoAvailability         = "noAvailability"
	CodeServiceUnavailable     = "serviceUnavailable"
	CodePersistenceError       = "persistenceError"
	CodeNotFound               = "notFound"
)

// failure builds the uniform failed-result shape. The message is always
// natural language; the code is the machine-readable discriminant.
func failure(code, message string) models.BookingResult {
	return models.BookingResult{
		Success: false,
		Error:   code,
		Message: message,
	}
}
