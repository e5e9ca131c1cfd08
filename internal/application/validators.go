package application

import (
	"regexp"
	"strings"

	"github.com/nazeeh4611/Simpolo-backend/internal/domain"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?\d{7,15}$`)
)

// validateEmail checks the basic shape of an email address.
func validateEmail(email string) error {
	if email == "" {
		return domain.NewValidationError("email is required")
	}
	if !emailRegex.MatchString(email) {
		return domain.NewValidationError("email %q is not valid", email)
	}
	return nil
}

// validatePhone accepts 7-15 digits with an optional leading +, ignoring
// spaces, dashes and parentheses. Empty is allowed; phone is optional.
func validatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	if !phoneRegex.MatchString(clean) {
		return domain.NewValidationError("phone %q must have 7 to 15 digits", phone)
	}
	return nil
}
