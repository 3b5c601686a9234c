package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

// validate is the shared validator instance backing single-value rules.
var validate = validator.New()

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

var (
	pincodeRe      = regexp.MustCompile(`^[0-9]{6}$`)
	phoneRe        = regexp.MustCompile(`^[0-9]{10}$`)
	registrationRe = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z]{1,2}[0-9]{4}$`)
	aadhaarRe      = regexp.MustCompile(`^[0-9]{12}$`)
	panRe          = regexp.MustCompile(`^[A-Z0-9]{10}$`)
)

// Rule checks a single non-empty field value and returns a problem
// message, or "" when the value is acceptable.
type Rule func(value string) string

// MinLen requires at least n characters.
func MinLen(n int) Rule {
	return func(v string) string {
		if len(v) < n {
			return fmt.Sprintf("must be at least %d characters", n)
		}
		return ""
	}
}

// MaxLen allows at most n characters.
func MaxLen(n int) Rule {
	return func(v string) string {
		if len(v) > n {
			return fmt.Sprintf("must be at most %d characters", n)
		}
		return ""
	}
}

// Pattern requires the value to match re.
func Pattern(re *regexp.Regexp, msg string) Rule {
	return func(v string) string {
		if !re.MatchString(v) {
			return msg
		}
		return ""
	}
}

// OneOf requires membership in an enumerated choice list.
func OneOf(choices ...string) Rule {
	return func(v string) string {
		for _, c := range choices {
			if v == c {
				return ""
			}
		}
		return fmt.Sprintf("must be one of: %s", strings.Join(choices, ", "))
	}
}

// Numeric coerces the value to a number and bounds it to [min, max].
func Numeric(min, max float64) Rule {
	return func(v string) string {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "must be a number"
		}
		if n < min || n > max {
			return fmt.Sprintf("must be between %g and %g", min, max)
		}
		return ""
	}
}

// Boolean requires a parseable boolean.
func Boolean() Rule {
	return func(v string) string {
		if _, err := strconv.ParseBool(v); err != nil {
			return "must be true or false"
		}
		return ""
	}
}

// Email validates the value as an email address.
func Email() Rule {
	return func(v string) string {
		if err := validate.Var(v, "email"); err != nil {
			return "must be a valid email address"
		}
		return ""
	}
}

// URL validates the value as an absolute URL.
func URL() Rule {
	return func(v string) string {
		if err := validate.Var(v, "url"); err != nil {
			return "must be a valid URL"
		}
		return ""
	}
}

// Phone requires a 10-digit Indian mobile number that parses as a
// valid number for the IN region.
func Phone() Rule {
	return func(v string) string {
		if !phoneRe.MatchString(v) {
			return "must be a 10-digit phone number"
		}
		parsed, err := phonenumbers.Parse(v, "IN")
		if err != nil || !phonenumbers.IsValidNumber(parsed) {
			return "must be a valid phone number"
		}
		return ""
	}
}

// Pincode requires a 6-digit Indian postal code.
func Pincode() Rule {
	return Pattern(pincodeRe, "must be a 6-digit pincode")
}

// RegistrationNumber requires a vehicle plate like MH02AB1234.
func RegistrationNumber() Rule {
	return Pattern(registrationRe, "must be a valid registration number (e.g. MH02AB1234)")
}

// FutureDate requires a date that is today or later.
func FutureDate() Rule {
	return func(v string) string {
		d, err := time.Parse(DateLayout, v)
		if err != nil {
			return "must be a date in YYYY-MM-DD format"
		}
		today := time.Now().Truncate(24 * time.Hour)
		if d.Before(today) {
			return "must not be in the past"
		}
		return ""
	}
}

// PastDate requires a date that is today or earlier.
func PastDate() Rule {
	return func(v string) string {
		d, err := time.Parse(DateLayout, v)
		if err != nil {
			return "must be a date in YYYY-MM-DD format"
		}
		if d.After(time.Now()) {
			return "must not be in the future"
		}
		return ""
	}
}
