// Package validation checks request inputs before any storage access.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/keyescrow/internal/server/models"
)

const (
	minPinLen = 4
	maxPinLen = 256
)

var (
	phoneRe = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	codeRe  = regexp.MustCompile(`^\d{6}$`)
	idRe    = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
)

// IsPhone reports whether s is an E.164 phone number.
func IsPhone(s string) bool { return phoneRe.MatchString(s) }

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool { return emailRe.MatchString(s) }

// IsCode reports whether s is a six digit one-time code.
func IsCode(s string) bool { return codeRe.MatchString(s) }

// IsID reports whether s is a lowercase UUID.
func IsID(s string) bool { return idRe.MatchString(s) }

// IsPin reports whether s is an acceptable PIN: 4 to 256 characters on a
// single line. Passwords and passphrases are allowed.
func IsPin(s string) bool {
	if !utf8.ValidString(s) || strings.ContainsAny(s, "\r\n") {
		return false
	}
	n := utf8.RuneCountInString(s)
	return n >= minPinLen && n <= maxPinLen
}

// IsOptionalPin accepts the empty string (no PIN) or a valid PIN.
func IsOptionalPin(s string) bool { return s == "" || IsPin(s) }

// IsOperation reports whether s names a known operation.
func IsOperation(s string) bool { return models.Operation(s).Valid() }

// OwnerType classifies an owner identifier. ok is false when it is neither a
// phone number nor an email address.
func OwnerType(identifier string) (t models.OwnerType, ok bool) {
	switch {
	case IsPhone(identifier):
		return models.OwnerPhone, true
	case IsEmail(identifier):
		return models.OwnerEmail, true
	default:
		return "", false
	}
}
