// File: services/scheduling/errors.go
package scheduling

import "fmt"

const (
	CodeNoInstructorAvailable = "no_instructor_available"
	CodeWeatherUnsuitable     = "weather_unsuitable"
)

// BusinessError is a rule violation with a stable machine-readable code.
type BusinessError struct {
	Code    string
	Message string
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNoInstructorError() error {
	return &BusinessError{
		Code:    CodeNoInstructorAvailable,
		Message: "No instructor is available for the requested time",
	}
}

func NewWeatherUnsuitableError(reason string) error {
	return &BusinessError{
		Code:    CodeWeatherUnsuitable,
		Message: reason,
	}
}
