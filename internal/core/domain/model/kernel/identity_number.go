package kernel

import (
	"errors"
	"strings"
	"unicode"

	"configurator/internal/pkg/errs"
)

// ErrIdentityChecksumMismatch is the cause attached when the check character does not match the body.
var ErrIdentityChecksumMismatch = errors.New("check character does not match")

// IdentityNumber is a national identity number (RUT) whose check character
// has been verified. It stores the normalized form: alphanumerics only, uppercase.
type IdentityNumber struct {
	value string
}

// NewIdentityNumber normalizes s and verifies its checksum.
//
// Example:
//
//	rut, err := kernel.NewIdentityNumber("12.345.678-5")
//	// rut.String() == "12345678-5"
func NewIdentityNumber(s string) (IdentityNumber, error) {
	if strings.TrimSpace(s) == "" {
		return IdentityNumber{}, errs.NewValueIsRequiredError("rut")
	}
	if !IsValidIdentityChecksum(s) {
		return IdentityNumber{}, errs.NewValueIsInvalidErrorWithCause("rut", ErrIdentityChecksumMismatch)
	}
	return IdentityNumber{value: normalizeIdentity(s)}, nil
}

// String formats the number as body-check, e.g. "12345678-K".
func (n IdentityNumber) String() string {
	if len(n.value) < 2 {
		return n.value
	}
	return n.value[:len(n.value)-1] + "-" + n.value[len(n.value)-1:]
}

// Validate rejects the zero value.
func (n IdentityNumber) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("rut")
	}
	return nil
}

// IsValidIdentityChecksum reports whether the last alphanumeric character of s is
// the modulo-11 check character of the preceding digits. Separators are ignored
// and a lowercase k is accepted. Inputs with fewer than two alphanumerics, or
// with a non-digit in the body, are invalid.
func IsValidIdentityChecksum(s string) bool {
	clean := normalizeIdentity(s)
	if len(clean) < 2 {
		return false
	}

	body := clean[:len(clean)-1]
	check := clean[len(clean)-1]

	sum := 0
	weight := 2
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if c < '0' || c > '9' {
			return false
		}
		sum += int(c-'0') * weight
		if weight == 7 {
			weight = 2
		} else {
			weight++
		}
	}

	return check == checkCharacter(sum)
}

func checkCharacter(sum int) byte {
	switch remainder := 11 - sum%11; remainder {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + remainder)
	}
}

func normalizeIdentity(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}
