package contact

import (
	"contactbook/errs"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultLimit is the page size used when no limit is requested.
	DefaultLimit = 10

	minNameLength = 2
)

var phonePattern = regexp.MustCompile(`^\([0-9]{2}\) [0-9]{4}-[0-9]{4}$`)

var (
	ErrContactNotFound    = errs.Errorf(errs.ENOTFOUND, "contact not found")
	ErrPhoneAlreadyExists = errs.Errorf(errs.ECONFLICT, "contact: phone already exists")
	ErrInvalidPage        = errs.Errorf(errs.EINVALID, "limit and offset must be non-negative integers")
	ErrInvalidID          = errs.Errorf(errs.EINVALID, "contact id must be a positive integer")
)

// Field error reasons.
const (
	ReasonRequired   = "is required"
	ReasonNameLength = "must have at least 2 characters"
	ReasonPhone      = "must be in format (xx) xxxx-xxxx"
)

type Contact struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Patch holds the fields of a partial update. Nil fields are left untouched.
type Patch struct {
	Name  *string
	Phone *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil
}

// Page selects a window of the alphabetical contact listing.
type Page struct {
	Limit  int
	Offset int
}

func DefaultPage() Page {
	return Page{Limit: DefaultLimit}
}

func (p Page) Validate() error {
	if p.Limit < 0 || p.Offset < 0 {
		return ErrInvalidPage
	}
	return nil
}

// Validate checks a contact for creation: both fields are required.
func (c Contact) Validate() error {
	fields := map[string]string{}
	checkName(fields, c.Name)
	checkPhone(fields, c.Phone)
	if len(fields) > 0 {
		return errs.Invalid(fields)
	}
	return nil
}

// Validate checks only the fields present in the patch.
func (p Patch) Validate() error {
	fields := map[string]string{}
	if p.Name != nil {
		checkName(fields, *p.Name)
	}
	if p.Phone != nil {
		checkPhone(fields, *p.Phone)
	}
	if len(fields) > 0 {
		return errs.Invalid(fields)
	}
	return nil
}

// ValidName reports whether name keeps at least two characters once trimmed.
func ValidName(name string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(name)) >= minNameLength
}

// ValidPhone reports whether phone matches (XX) XXXX-XXXX.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

func checkName(fields map[string]string, name string) {
	switch {
	case name == "":
		fields["name"] = ReasonRequired
	case !ValidName(name):
		fields["name"] = ReasonNameLength
	}
}

func checkPhone(fields map[string]string, phone string) {
	switch {
	case phone == "":
		fields["phone"] = ReasonRequired
	case !ValidPhone(phone):
		fields["phone"] = ReasonPhone
	}
}
