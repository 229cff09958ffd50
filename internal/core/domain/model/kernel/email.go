package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"orders/internal/pkg/errs"
)

// ErrEmailIsNotConstructed indicates that an Email was not created through NewEmail.
// This error is returned when validating a zero-value Email.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("Email must be created via NewEmail")

// emailPattern mirrors the mailto address shape: local part, "@", domain with
// at least one dot. Deliberately permissive; deliverability is not checked here.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

// Email is a value object representing a validated customer email address.
// The zero value is invalid; construct through NewEmail.
//
// Email is immutable and thread-safe.
type Email struct {
	address string
}

// NewEmail creates an Email after validating the address format.
// The address is trimmed of surrounding whitespace before validation.
// Returns a ValueIsRequiredError for an empty address and a
// ValueIsInvalidError for a malformed one.
func NewEmail(address string) (Email, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Email{}, errs.NewValueIsRequiredError("customerEmail")
	}
	if !emailPattern.MatchString(address) {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(
			"customerEmail",
			fmt.Errorf("%s is not a valid email address", address),
		)
	}
	return Email{address: address}, nil
}

// String returns the validated address.
func (e Email) String() string {
	return e.address
}

// IsEqual compares two emails for equality.
func (e Email) IsEqual(other Email) bool {
	return e.address == other.address
}

// Validate checks if the Email is properly constructed.
// Returns ErrEmailIsNotConstructed for a zero value.
func (e Email) Validate() error {
	if e.address == "" {
		return ErrEmailIsNotConstructed
	}
	return nil
}
