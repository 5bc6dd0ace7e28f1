package customer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"configurator/internal/core/domain/model/kernel"
)

const (
	minNameLength   = 3
	minPhoneDigits  = 9
	minRUTLength    = 8
	maxRUTLength    = 16
	minRegionLength = 3
	minComunaLength = 3
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form is the contact data as typed by the customer.
type Form struct {
	Name    string
	Email   string
	Phone   string
	RUT     string
	Region  string
	Comuna  string
	Address string
	Note    string
}

// WithRegion returns a copy with the region replaced. The comuna belongs to
// the previous region, so it is cleared.
func (f Form) WithRegion(region string) Form {
	if f.Region == region {
		return f
	}
	f.Region = region
	f.Comuna = ""
	return f
}

// Validate checks every field and returns a *ValidationError naming all failures, or nil.
//
// Rules:
//   - name has at least 3 characters
//   - email looks like local@domain.tld
//   - phone contains at least 9 digits
//   - rut has between 8 and 16 characters and a valid check character
//   - region and comuna have at least 3 characters
//
// Address and note are optional.
func (f Form) Validate() error {
	verr := &ValidationError{}

	if runeLen(f.Name) < minNameLength {
		verr.add(FieldName, "must be at least 3 characters")
	}
	if !emailPattern.MatchString(strings.TrimSpace(f.Email)) {
		verr.add(FieldEmail, "is not a valid email address")
	}
	if countDigits(f.Phone) < minPhoneDigits {
		verr.add(FieldPhone, "must contain at least 9 digits")
	}
	switch {
	case runeLen(f.RUT) < minRUTLength:
		verr.add(FieldRUT, "must be at least 8 characters")
	case runeLen(f.RUT) > maxRUTLength:
		verr.add(FieldRUT, "must be at most 16 characters")
	case !kernel.IsValidIdentityChecksum(f.RUT):
		verr.add(FieldRUT, "check digit does not match")
	}
	if runeLen(f.Region) < minRegionLength {
		verr.add(FieldRegion, "is required")
	}
	if runeLen(f.Comuna) < minComunaLength {
		verr.add(FieldComuna, "must be at least 3 characters")
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// Info is a validated contact snapshot. The RUT is kept as the customer wrote
// it; its normalized form is available through IdentityNumber.
type Info struct {
	name     string
	email    string
	phone    string
	rut      string
	identity kernel.IdentityNumber
	region   string
	comuna   string
	address  string
	note     string
}

// NewInfo validates f and returns the trimmed snapshot.
// The error, when not nil, is a *ValidationError.
func NewInfo(f Form) (Info, error) {
	if err := f.Validate(); err != nil {
		return Info{}, err
	}

	identity, err := kernel.NewIdentityNumber(f.RUT)
	if err != nil {
		return Info{}, &ValidationError{Fields: map[string]string{FieldRUT: err.Error()}}
	}

	return Info{
		name:     strings.TrimSpace(f.Name),
		email:    strings.TrimSpace(f.Email),
		phone:    strings.TrimSpace(f.Phone),
		rut:      strings.TrimSpace(f.RUT),
		identity: identity,
		region:   strings.TrimSpace(f.Region),
		comuna:   strings.TrimSpace(f.Comuna),
		address:  strings.TrimSpace(f.Address),
		note:     strings.TrimSpace(f.Note),
	}, nil
}

// RestoreInfo rebuilds a snapshot read from storage. Stored snapshots were
// validated on the way in, so only the identity number is re-parsed.
func RestoreInfo(f Form) (Info, error) {
	identity, err := kernel.NewIdentityNumber(f.RUT)
	if err != nil {
		return Info{}, err
	}
	return Info{
		name:     f.Name,
		email:    f.Email,
		phone:    f.Phone,
		rut:      f.RUT,
		identity: identity,
		region:   f.Region,
		comuna:   f.Comuna,
		address:  f.Address,
		note:     f.Note,
	}, nil
}

func (i Info) Name() string { return i.name }
func (i Info) Email() string { return i.email }
func (i Info) Phone() string { return i.phone }
func (i Info) RUT() string { return i.rut }
func (i Info) IdentityNumber() kernel.IdentityNumber { return i.identity }
func (i Info) Region() string { return i.region }
func (i Info) Comuna() string { return i.comuna }
func (i Info) Address() string { return i.address }
func (i Info) Note() string { return i.note }

// Form returns the snapshot as raw fields.
func (i Info) Form() Form {
	return Form{
		Name:    i.name,
		Email:   i.email,
		Phone:   i.phone,
		RUT:     i.rut,
		Region:  i.region,
		Comuna:  i.comuna,
		Address: i.address,
		Note:    i.note,
	}
}

// IsZero reports whether the snapshot is empty.
func (i Info) IsZero() bool {
	return i == Info{}
}

func runeLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
