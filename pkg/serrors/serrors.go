package serrors

import "fmt"

// Base is a coded error carried across module boundaries. Code is stable and
// machine-readable; Message is a developer-facing default; Details is optional
// context appended to the rendered error.
type Base struct {
	Code    string
	Message string
	Details string
}

func NewError(code, message, details string) *Base {
	return &Base{
		Code:    code,
		Message: message,
		Details: details,
	}
}

func (e *Base) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithDetails returns a copy of the error carrying extra context. The original
// is left untouched so package-level sentinels stay comparable with errors.Is.
func (e *Base) WithDetails(details string) *Base {
	return &Base{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

func (e *Base) Is(target error) bool {
	other, ok := target.(*Base)
	if !ok {
		return false
	}
	return other.Code == e.Code
}
