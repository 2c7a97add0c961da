package teller

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validName(s string) bool {
	return namePattern.MatchString(strings.TrimSpace(s))
}

// validEmail accepts an absent or blank email.
func validEmail(s *string) bool {
	if s == nil || blank(*s) {
		return true
	}
	return emailPattern.MatchString(strings.TrimSpace(*s))
}

// validPhone counts digits only, so separators and a leading + are allowed.
func validPhone(s *string) bool {
	if s == nil || blank(*s) {
		return true
	}
	digits := 0
	for _, r := range *s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}

func hasSubCent(d decimal.Decimal) bool {
	return !d.Equal(d.Round(2))
}
